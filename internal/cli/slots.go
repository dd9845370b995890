package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/reservely/reservation-service/internal/domain"
	bookingRepo "github.com/reservely/reservation-service/internal/infra/storage/booking"
	restaurantRepo "github.com/reservely/reservation-service/internal/infra/storage/restaurant"
	tableRepo "github.com/reservely/reservation-service/internal/infra/storage/table"
	getAvailableSlotsUC "github.com/reservely/reservation-service/internal/usecase/get_available_slots"
)

func newSlotsCmd(configPath *string) *cobra.Command {
	var (
		restaurant string
		date       string
		partySize  int
		hours      int
		minutes    int
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List available start times for a restaurant on a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			restaurantID, err := uuid.Parse(restaurant)
			if err != nil {
				return fmt.Errorf("invalid --restaurant: %w", err)
			}

			day, err := time.Parse(domain.DateFormat, date)
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}

			var duration *domain.Duration
			if cmd.Flags().Changed("hours") || cmd.Flags().Changed("minutes") {
				duration = &domain.Duration{Hours: hours, Minutes: minutes}
			}

			cfg, log, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			db, err := openDB(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			useCase := getAvailableSlotsUC.NewUseCase(
				restaurantRepo.NewRepository(db),
				tableRepo.NewRepository(db),
				bookingRepo.NewRepository(db),
				nil,
				log,
			)

			resp, err := useCase.Execute(cmd.Context(), &getAvailableSlotsUC.Request{
				RestaurantID: restaurantID,
				Date:         day,
				PartySize:    partySize,
				Duration:     duration,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s, duration %s, %d slot(s)\n", resp.Date.Format(domain.DateFormat), resp.Duration, len(resp.Slots))
			for _, slot := range resp.Slots {
				fmt.Fprintf(out, "%s-%s\t%d free\n", slot.StartTime, slot.EndTime, slot.FreeTables)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&restaurant, "restaurant", "", "restaurant ID")
	cmd.Flags().StringVar(&date, "date", "", "date, YYYY-MM-DD")
	cmd.Flags().IntVar(&partySize, "party-size", 2, "number of guests")
	cmd.Flags().IntVar(&hours, "hours", 0, "duration hours, restaurant default when omitted")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "duration minutes")
	_ = cmd.MarkFlagRequired("restaurant")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reservely/reservation-service/internal/domain"
	"github.com/reservely/reservation-service/pkg/types"
)

func newEndTimeCmd() *cobra.Command {
	var duration domain.Duration

	cmd := &cobra.Command{
		Use:   "end-time HH:MM",
		Short: "Compute the end time of a reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := types.NewTimeStringFromString(args[0])
			if err != nil {
				return err
			}

			end, err := domain.ComputeEndTime(start, &duration)
			if err != nil {
				return err
			}

			crosses, err := domain.EndCrossesMidnight(start, duration)
			if err != nil {
				return err
			}

			if crosses {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (next day)\n", end)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), end)
			return nil
		},
	}

	cmd.Flags().IntVar(&duration.Hours, "hours", 0, "duration hours")
	cmd.Flags().IntVar(&duration.Minutes, "minutes", 0, "duration minutes")

	return cmd
}

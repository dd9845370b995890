package cli

import (
	"github.com/spf13/cobra"

	"github.com/reservely/reservation-service/internal/migrations"
	"github.com/reservely/reservation-service/pkg/txmanager"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if err := migrations.Up(cmd.Context(), db, txmanager.NewTransactionManager(db), log); err != nil {
				return err
			}

			log.Info("Migrations applied (db=%s)", cfg.Database.DBName)
			return nil
		},
	}
}

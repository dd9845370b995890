package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.toml"

var Version = "dev"

// NewRootCmd собирает корневую команду со всеми подкомандами
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:     "reservely",
		Short:   "Restaurant reservation service: availability checks, slots and bookings",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env необязателен, переменные окружения имеют приоритет
			_ = godotenv.Load()
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to TOML config")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newMigrateCmd(&configPath))
	root.AddCommand(newEndTimeCmd())
	root.AddCommand(newSlotsCmd(&configPath))

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"trade-journal/internal/config"
)

// addConfigCommands registers config management commands.
func addConfigCommands(rootCmd *cobra.Command, app *App) {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented config.toml with the defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			path, err := config.WriteTemplate("")
			if err != nil {
				return err
			}
			if path == "" {
				output.Info("Config file already exists, nothing written")
				return nil
			}
			output.Success("Created %s", path)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			if output.IsJSON() {
				return output.JSON(app.Config)
			}

			output.Bold("Risk defaults")
			output.Printf("  Max position:    %.2f%% of account\n", app.Config.Risk.MaxPositionPercent)
			output.Printf("  Max daily loss:  %.2f%% / %s\n",
				app.Config.Risk.MaxDailyLossPercent, FormatMoney(app.Config.Risk.MaxDailyLossAmount))
			output.Printf("  Alerts enabled:  %v\n", app.Config.Risk.AlertEnabled)
			output.Printf("  Bands:           %.0f%% / %.0f%% / %.0f%% of limit\n",
				app.Config.Risk.BandMedium*100, app.Config.Risk.BandHigh*100, app.Config.Risk.BandCritical*100)
			output.Println()
			output.Bold("Prices")
			output.Printf("  Provider:        %s\n", app.Config.Prices.Provider)
			output.Println()
			output.Bold("Logging")
			output.Printf("  Level:           %s\n", app.Config.Logging.Level)
			output.Printf("  Console / file:  %v / %v\n", app.Config.Logging.Console, app.Config.Logging.File)
			return nil
		},
	}

	configCmd.AddCommand(initCmd, showCmd)
	rootCmd.AddCommand(configCmd)
}

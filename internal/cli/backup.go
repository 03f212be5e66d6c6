// Package cli provides the command-line interface for the journal
// application.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"trade-journal/internal/store"
)

// addBackupCommands adds CSV backup commands.
func addBackupCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and import the trade log as CSV",
	}

	cmd.AddCommand(newBackupExportCmd(app))
	cmd.AddCommand(newBackupImportCmd(app))

	rootCmd.AddCommand(cmd)
}

func newBackupExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export all trades to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating %s: %w", args[0], err)
			}
			defer f.Close()

			n, err := store.ExportTrades(ctx, app.Store, f)
			if err != nil {
				output.Error("Export failed: %v", err)
				return err
			}
			output.Success("Exported %d trade(s) to %s", n, args[0])
			return nil
		},
	}
}

func newBackupImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import trades from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			saved, skipped, err := store.ImportTrades(ctx, app.Store, f)
			if err != nil {
				output.Error("Import failed: %v", err)
				return err
			}

			output.Success("Imported %d trade(s)", saved)
			for _, rowErr := range skipped {
				output.Warning("Skipped row: %v", rowErr)
			}
			return nil
		},
	}
}

// Package cli provides the command-line interface for the journal
// application.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// addPositionsCommand adds the open-positions view.
func addPositionsCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "positions",
		Short: "Show per-symbol summaries and open positions",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			withPrices, _ := cmd.Flags().GetBool("prices")
			openOnly, _ := cmd.Flags().GetBool("open")

			in, err := app.runInput(ctx, withPrices)
			if err != nil {
				output.Error("Failed to load inputs: %v", err)
				return err
			}

			report := app.Engine.Run(in)
			if output.IsJSON() {
				return output.JSON(report.Symbols)
			}

			color.Cyan("📋 Symbols")
			table := NewTable(output, "Symbol", "Qty", "Avg cost", "Realized", "Win rate", "Price", "Value", "Unrealized")
			shown := 0
			for _, s := range report.Symbols {
				if openOnly && s.PositionQuantity == 0 {
					continue
				}
				shown++
				table.AddRow(
					s.Symbol,
					FormatQuantity(s.PositionQuantity),
					FormatMoney(s.AvgCost),
					output.FormatPnL(s.RealizedPnL),
					fmt.Sprintf("%.1f%%", s.WinRate),
					FormatOptional(s.CurrentPrice),
					FormatOptional(s.CurrentValuation),
					formatOptionalPnL(output, s.UnrealizedPnL),
				)
			}
			table.Render()

			if shown == 0 {
				output.Info("No positions to show.")
			}
			return nil
		},
	}

	cmd.Flags().Bool("prices", true, "Fetch current prices for valuation")
	cmd.Flags().Bool("open", false, "Only show symbols with an open position")
	rootCmd.AddCommand(cmd)
}

func formatOptionalPnL(output *Output, v *float64) string {
	if v == nil {
		return Missing
	}
	return output.FormatPnL(*v)
}

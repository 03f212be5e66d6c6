// Package cli provides the command-line interface for the journal
// application.
package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"trade-journal/internal/models"
)

// addRiskCommands adds the risk assessment and settings commands.
func addRiskCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Position concentration and daily-loss risk",
	}

	cmd.AddCommand(newRiskShowCmd(app))
	cmd.AddCommand(newRiskSetCmd(app))
	cmd.AddCommand(newBalanceSetCmd(app))

	rootCmd.AddCommand(cmd)
}

func newRiskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Assess open positions against the configured limits",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			in, err := app.runInput(ctx, true)
			if err != nil {
				output.Error("Failed to load inputs: %v", err)
				return err
			}

			report := app.Engine.Run(in)
			if output.IsJSON() {
				return output.JSON(struct {
					Risks    []models.PositionRisk `json:"risks"`
					HighRisk []models.PositionRisk `json:"high_risk"`
					Alert    *models.RiskAlert     `json:"alert,omitempty"`
				}{report.Risks, report.HighRisk, report.Alert})
			}

			color.Cyan("⚖️  Position Risk")
			if in.Balance.Amount <= 0 {
				output.Warning("No account balance set; percent figures disabled. Use 'journal risk balance <amount>'.")
			}

			table := NewTable(output, "Symbol", "Qty", "Value", "% of account", "Level")
			for _, r := range report.Risks {
				table.AddRow(
					r.Symbol,
					FormatQuantity(r.Quantity),
					FormatOptional(r.PositionValue),
					fmt.Sprintf("%.1f%%", r.PositionPercent),
					riskLevelCell(output, r.Level),
				)
			}
			table.Render()
			output.Println()

			if report.Alert != nil {
				output.Error("ALERT [%s]: %s", report.Alert.Kind, report.Alert.Message)
			} else if in.Risk.AlertEnabled {
				output.Success("No daily-loss alert.")
			}
			return nil
		},
	}
}

func riskLevelCell(output *Output, level models.RiskLevel) string {
	switch level {
	case models.RiskCritical, models.RiskHigh:
		return output.ColoredString(ColorRed, level.String())
	case models.RiskMedium:
		return output.ColoredString(ColorYellow, level.String())
	default:
		return output.ColoredString(ColorGreen, level.String())
	}
}

func newRiskSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update risk limits",
		Example: `  journal risk set --max-position 20 --max-daily-loss-percent 3
  journal risk set --max-daily-loss-amount 50000 --alerts=false`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			in, err := app.runInput(ctx, false)
			if err != nil {
				return err
			}
			settings := in.Risk

			if cmd.Flags().Changed("max-position") {
				settings.MaxPositionPercent, _ = cmd.Flags().GetFloat64("max-position")
			}
			if cmd.Flags().Changed("max-daily-loss-percent") {
				settings.MaxDailyLossPercent, _ = cmd.Flags().GetFloat64("max-daily-loss-percent")
			}
			if cmd.Flags().Changed("max-daily-loss-amount") {
				settings.MaxDailyLossAmount, _ = cmd.Flags().GetFloat64("max-daily-loss-amount")
			}
			if cmd.Flags().Changed("alerts") {
				settings.AlertEnabled, _ = cmd.Flags().GetBool("alerts")
			}

			if err := app.Store.SaveRiskSettings(ctx, settings); err != nil {
				output.Error("Failed to save settings: %v", err)
				return err
			}
			output.Success("Risk settings updated.")
			return nil
		},
	}

	cmd.Flags().Float64("max-position", 0, "Max position size as percent of account")
	cmd.Flags().Float64("max-daily-loss-percent", 0, "Daily loss alert threshold, percent of account")
	cmd.Flags().Float64("max-daily-loss-amount", 0, "Daily loss alert threshold, absolute amount")
	cmd.Flags().Bool("alerts", true, "Enable the daily-loss alert")
	return cmd
}

func newBalanceSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <amount>",
		Short: "Set the account balance used for percent figures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil || amount < 0 {
				return fmt.Errorf("invalid amount %q", args[0])
			}

			if err := app.Store.SaveBalance(ctx, models.AccountBalance{Amount: amount}); err != nil {
				output.Error("Failed to save balance: %v", err)
				return err
			}
			output.Success("Account balance set to %s", FormatMoney(amount))
			return nil
		},
	}
}

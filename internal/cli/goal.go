// Package cli provides the command-line interface for the journal
// application.
package cli

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"trade-journal/internal/models"
)

var monthKeyRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// addGoalCommands adds monthly goal commands.
func addGoalCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Monthly targets and progress",
	}

	cmd.AddCommand(newGoalSetCmd(app))
	cmd.AddCommand(newGoalProgressCmd(app))
	cmd.AddCommand(newGoalDeleteCmd(app))

	rootCmd.AddCommand(cmd)
}

func newGoalSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <month>",
		Short: "Set a monthly goal (month as YYYY-MM)",
		Example: `  journal goal set 2026-08 --pnl 1000000
  journal goal set 2026-09 --pnl 500000 --trades 20 --win-rate 60`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			month := args[0]
			if !monthKeyRe.MatchString(month) {
				return fmt.Errorf("invalid month %q, want YYYY-MM", month)
			}

			goal := models.MonthlyGoal{Month: month}
			goal.TargetPnL, _ = cmd.Flags().GetFloat64("pnl")
			goal.TargetTrades, _ = cmd.Flags().GetInt("trades")
			goal.TargetWinRate, _ = cmd.Flags().GetFloat64("win-rate")

			if err := app.Store.SaveGoal(ctx, goal); err != nil {
				output.Error("Failed to save goal: %v", err)
				return err
			}
			output.Success("Goal saved for %s", month)
			return nil
		},
	}

	cmd.Flags().Float64("pnl", 0, "Target realized PnL")
	cmd.Flags().Int("trades", 0, "Target closing trade count")
	cmd.Flags().Float64("win-rate", 0, "Target win rate percent")
	return cmd
}

func newGoalProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show goal progress for the trailing six months",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			in, err := app.runInput(ctx, false)
			if err != nil {
				output.Error("Failed to load inputs: %v", err)
				return err
			}

			report := app.Engine.Run(in)
			if output.IsJSON() {
				return output.JSON(report.Goals)
			}

			color.Cyan("🎯 Monthly Goals")
			table := NewTable(output, "Month", "Actual PnL", "Target", "Progress", "Trades", "Win rate")
			for _, p := range report.Goals {
				target, progress := Missing, Missing
				if p.Goal != nil {
					target = FormatMoney(p.Goal.TargetPnL)
					progress = fmt.Sprintf("%.1f%%", p.PnLProgress)
				}
				table.AddRow(
					p.Month,
					output.FormatPnL(p.ActualPnL),
					target,
					progress,
					fmt.Sprintf("%d", p.ActualTrades),
					fmt.Sprintf("%.1f%%", p.ActualWinRate),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newGoalDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <month>",
		Short: "Delete a monthly goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			if err := app.Store.DeleteGoal(ctx, args[0]); err != nil {
				output.Error("Failed to delete goal: %v", err)
				return err
			}
			output.Success("Deleted goal for %s", args[0])
			return nil
		},
	}
}

// Package cli provides the command-line interface for the journal
// application.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"trade-journal/internal/analytics"
	"trade-journal/internal/models"
)

// addStatsCommands adds the analytics dashboard commands.
func addStatsCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show journal analytics",
		Long: `Re-derive positions, realized/unrealized PnL, win/loss statistics, equity
curve with drawdown, streaks and behavioral breakdowns from the trade log.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			withPrices, _ := cmd.Flags().GetBool("prices")
			in, err := app.runInput(ctx, withPrices)
			if err != nil {
				output.Error("Failed to load inputs: %v", err)
				return err
			}

			report := app.Engine.Run(in)
			if output.IsJSON() {
				return output.JSON(report)
			}

			renderOverall(output, report)

			if daily, _ := cmd.Flags().GetBool("daily"); daily {
				renderPnLSeries(output, "Daily PnL", report.DailyPnL)
				renderEquity(output, "Daily Equity", report.DailyEquity)
			}
			if monthly, _ := cmd.Flags().GetBool("monthly"); monthly {
				renderPnLSeries(output, "Monthly PnL", report.MonthlyPnL)
				renderEquity(output, "Monthly Equity", report.MonthlyEquity)
			}
			if weekday, _ := cmd.Flags().GetBool("weekday"); weekday {
				renderWeekdays(output, report)
			}
			if holding, _ := cmd.Flags().GetBool("holding"); holding {
				renderHoldingPeriods(output, report)
			}
			if tags, _ := cmd.Flags().GetBool("tags"); tags {
				renderTags(output, report)
			}
			if strategies, _ := cmd.Flags().GetBool("strategies"); strategies {
				renderStrategies(output, report)
			}

			renderInsights(output, report)

			for _, skipped := range report.Ledger.Skipped {
				output.Warning("Skipped: %v", skipped.Err)
			}
			for _, sym := range report.Ledger.Oversold {
				output.Warning("%s: sells exceed held quantity, check the records", sym)
			}
			return nil
		},
	}

	cmd.Flags().Bool("prices", false, "Fetch current prices for unrealized PnL")
	cmd.Flags().Bool("daily", false, "Show daily PnL and equity curve")
	cmd.Flags().Bool("monthly", false, "Show monthly PnL and equity curve")
	cmd.Flags().Bool("weekday", false, "Show weekday performance")
	cmd.Flags().Bool("holding", false, "Show holding-period performance")
	cmd.Flags().Bool("tags", false, "Show tag performance")
	cmd.Flags().Bool("strategies", false, "Show strategy performance")

	rootCmd.AddCommand(cmd)
}

func renderOverall(output *Output, report *analytics.Report) {
	color.Cyan("📊 Overall")
	stats := report.Overall
	output.Printf("  Closing trades: %d  (W %d / L %d / E %d)\n",
		stats.TradeCount, stats.WinCount, stats.LossCount, stats.EvenCount)
	output.Printf("  Win rate:       %.1f%%\n", stats.WinRate)
	output.Printf("  Realized PnL:   %s\n", output.FormatPnL(stats.RealizedPnL))
	output.Printf("  Unrealized PnL: %s\n", output.FormatPnL(stats.UnrealizedPnL))
	output.Printf("  Avg per trade:  %s\n", output.FormatPnL(stats.AvgPnL))
	if stats.ProfitFactor > 0 {
		output.Printf("  Profit factor:  %.2f\n", stats.ProfitFactor)
	}
	output.Println()
}

func renderPnLSeries(output *Output, title string, points []models.PnLPoint) {
	color.Cyan("📈 %s", title)
	if len(points) == 0 {
		output.Dim("  No closed trades yet.")
		output.Println()
		return
	}
	table := NewTable(output, "Bucket", "PnL")
	for _, p := range points {
		table.AddRow(p.Key, output.FormatPnL(p.PnL))
	}
	table.Render()
	output.Println()
}

func renderEquity(output *Output, title string, curve []models.EquityPoint) {
	color.Cyan("📉 %s", title)
	if len(curve) == 0 {
		output.Dim("  No closed trades yet.")
		output.Println()
		return
	}
	table := NewTable(output, "Bucket", "Cumulative", "Peak", "Drawdown", "DD %")
	for _, p := range curve {
		table.AddRow(
			p.Key,
			output.FormatPnL(p.Cumulative),
			FormatMoney(p.Peak),
			output.FormatPnL(p.Drawdown),
			fmt.Sprintf("%.1f%%", p.DrawdownPercent),
		)
	}
	table.Render()
	output.Println()
}

func renderWeekdays(output *Output, report *analytics.Report) {
	color.Cyan("📅 Weekday Performance")
	table := NewTable(output, "Weekday", "Trades", "Win rate", "Total PnL", "Avg PnL")
	for _, w := range report.Weekdays {
		table.AddRow(
			w.Weekday.String(),
			fmt.Sprintf("%d", w.TradeCount),
			fmt.Sprintf("%.1f%%", w.WinRate),
			output.FormatPnL(w.TotalPnL),
			output.FormatPnL(w.AvgPnL),
		)
	}
	table.Render()
	output.Println()
}

func renderHoldingPeriods(output *Output, report *analytics.Report) {
	color.Cyan("⏳ Holding Periods")
	table := NewTable(output, "Bucket", "Trades", "Win rate", "Total PnL", "Avg PnL")
	for _, h := range report.HoldingPeriods {
		table.AddRow(
			string(h.Bucket),
			fmt.Sprintf("%d", h.TradeCount),
			fmt.Sprintf("%.1f%%", h.WinRate),
			output.FormatPnL(h.TotalPnL),
			output.FormatPnL(h.AvgPnL),
		)
	}
	table.Render()
	output.Println()
}

func renderTags(output *Output, report *analytics.Report) {
	color.Cyan("🏷  Tag Performance")
	table := NewTable(output, "Tag", "Trades", "Win rate", "PnL", "Avg PnL")
	for _, t := range report.Tags {
		table.AddRow(
			t.Tag,
			fmt.Sprintf("%d", t.TradeCount),
			fmt.Sprintf("%.1f%%", t.WinRate),
			output.FormatPnL(t.RealizedPnL),
			output.FormatPnL(t.AvgPnL),
		)
	}
	table.Render()
	output.Println()
}

func renderStrategies(output *Output, report *analytics.Report) {
	color.Cyan("🎯 Strategy Performance")
	table := NewTable(output, "Strategy", "Trades", "Win rate", "PnL", "Max win", "Max loss")
	for _, s := range report.Strategies {
		table.AddRow(
			s.Strategy,
			fmt.Sprintf("%d", s.TradeCount),
			fmt.Sprintf("%.1f%%", s.WinRate),
			output.FormatPnL(s.RealizedPnL),
			output.FormatPnL(s.MaxWin),
			output.FormatPnL(s.MaxLoss),
		)
	}
	table.Render()
	output.Println()
}

func renderInsights(output *Output, report *analytics.Report) {
	color.Cyan("💡 Insights")
	insights := report.Insights
	if insights.BestWeekday != nil {
		output.Printf("  Best weekday:  %s (%s)\n",
			insights.BestWeekday.Weekday, output.FormatPnL(insights.BestWeekday.TotalPnL))
	}
	if insights.BestTag != nil {
		output.Printf("  Best tag:      %s (%s)\n",
			insights.BestTag.Tag, output.FormatPnL(insights.BestTag.RealizedPnL))
	}
	output.Printf("  Max win:       %s\n", output.FormatPnL(insights.MaxWin))
	output.Printf("  Max loss:      %s\n", output.FormatPnL(insights.MaxLoss))
	output.Printf("  Max drawdown:  %s (%.1f%%)\n",
		output.FormatPnL(insights.MaxDrawdown), insights.MaxDrawdownPercent)
	if insights.CurrentStreak.Count > 0 {
		output.Printf("  Streak:        %d %s in a row (best win %d, worst loss %d)\n",
			insights.CurrentStreak.Count, insights.CurrentStreak.Type,
			insights.MaxWinStreak, insights.MaxLossStreak)
	}
	output.Println()
}

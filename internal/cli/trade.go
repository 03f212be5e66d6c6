// Package cli provides the command-line interface for the journal
// application.
package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"trade-journal/internal/ledger"
	"trade-journal/internal/models"
	"trade-journal/internal/store"
)

// addTradeCommands adds trade record commands.
func addTradeCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Manage journal trade records",
		Long:  "Add, list and delete the raw buy/sell records the analytics are derived from.",
	}

	cmd.AddCommand(newTradeAddCmd(app))
	cmd.AddCommand(newTradeListCmd(app))
	cmd.AddCommand(newTradeDeleteCmd(app))

	rootCmd.AddCommand(cmd)
}

func newTradeAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <symbol> <buy|sell> <quantity> <price>",
		Short: "Record a trade",
		Example: `  journal trade add AAPL buy 10 187.20
  journal trade add AAPL sell 5 195.00 --date 2025-08-12 --tags swing,earnings
  journal trade add TSLA buy 3 240.10 --strategy breakout --memo "gap and go"`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			side := models.TradeSide(strings.ToUpper(args[1]))
			var quantity, price float64
			if _, err := fmt.Sscanf(args[2], "%g", &quantity); err != nil {
				return fmt.Errorf("invalid quantity %q", args[2])
			}
			if _, err := fmt.Sscanf(args[3], "%g", &price); err != nil {
				return fmt.Errorf("invalid price %q", args[3])
			}

			dateStr, _ := cmd.Flags().GetString("date")
			date := time.Now().UTC()
			if dateStr != "" {
				parsed, err := time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("invalid date %q, want YYYY-MM-DD", dateStr)
				}
				date = parsed
			}

			tagsStr, _ := cmd.Flags().GetString("tags")
			var tags []string
			if tagsStr != "" {
				for _, tag := range strings.Split(tagsStr, ",") {
					if tag = strings.TrimSpace(tag); tag != "" {
						tags = append(tags, tag)
					}
				}
			}

			name, _ := cmd.Flags().GetString("name")
			strategy, _ := cmd.Flags().GetString("strategy")
			emotion, _ := cmd.Flags().GetString("emotion")
			memo, _ := cmd.Flags().GetString("memo")

			trade := models.Trade{
				Date:     date,
				Symbol:   strings.ToUpper(args[0]),
				Name:     name,
				Side:     side,
				Price:    price,
				Quantity: quantity,
				Tags:     tags,
				Strategy: strategy,
				Emotion:  emotion,
				Memo:     memo,
			}

			// Same checks the ledger applies; reject bad records at entry.
			if err := ledger.Validate(trade); err != nil {
				return err
			}

			if err := app.Store.SaveTrade(ctx, &trade); err != nil {
				output.Error("Failed to save trade: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(trade)
			}
			output.Success("Recorded %s %s %s @ %s (id %s)",
				trade.Side, FormatQuantity(trade.Quantity), trade.Symbol,
				FormatMoney(trade.Price), trade.ID)
			return nil
		},
	}

	cmd.Flags().String("date", "", "Trade date (YYYY-MM-DD, default today)")
	cmd.Flags().String("name", "", "Display name for the symbol")
	cmd.Flags().String("tags", "", "Comma-separated tags")
	cmd.Flags().String("strategy", "", "Strategy name")
	cmd.Flags().String("emotion", "", "Emotion tag")
	cmd.Flags().String("memo", "", "Free-form memo")
	return cmd
}

func newTradeListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded trades",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			filter := store.TradeFilter{}
			filter.Symbol, _ = cmd.Flags().GetString("symbol")
			filter.Side, _ = cmd.Flags().GetString("side")
			filter.Tag, _ = cmd.Flags().GetString("tag")
			filter.Strategy, _ = cmd.Flags().GetString("strategy")
			filter.Limit, _ = cmd.Flags().GetInt("limit")
			filter.Side = strings.ToUpper(filter.Side)

			trades, err := app.Store.GetTrades(ctx, filter)
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(trades)
			}

			if len(trades) == 0 {
				output.Info("No trades recorded.")
				return nil
			}

			table := NewTable(output, "Date", "Symbol", "Side", "Qty", "Price", "Tags", "Strategy", "ID")
			for _, t := range trades {
				table.AddRow(
					FormatDate(t.Day()),
					t.Symbol,
					string(t.Side),
					FormatQuantity(t.Quantity),
					FormatMoney(t.Price),
					TruncateString(strings.Join(t.Tags, ","), 20),
					TruncateString(t.Strategy, 15),
					t.ID,
				)
			}
			table.Render()
			output.Println()
			output.Printf("  %d trade(s)\n", len(trades))
			return nil
		},
	}

	cmd.Flags().String("symbol", "", "Filter by symbol")
	cmd.Flags().String("side", "", "Filter by side (buy/sell)")
	cmd.Flags().String("tag", "", "Filter by tag")
	cmd.Flags().String("strategy", "", "Filter by strategy")
	cmd.Flags().Int("limit", 0, "Limit number of rows")
	return cmd
}

func newTradeDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a trade by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			if err := app.Store.DeleteTrade(ctx, args[0]); err != nil {
				output.Error("Failed to delete trade: %v", err)
				return err
			}
			output.Success("Deleted trade %s", args[0])
			return nil
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"
)

// addHelpCommands adds documentation commands.
func addHelpCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newExamplesCmd(app))
	rootCmd.AddCommand(newQuickstartCmd(app))
}

func newExamplesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show usage examples",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			sections := []struct {
				name     string
				examples []struct {
					cmd  string
					desc string
				}
			}{
				{
					name: "Recording trades",
					examples: []struct {
						cmd  string
						desc string
					}{
						{"journal trade add INFY buy 10 1500", "Record a buy of 10 @ 1500"},
						{"journal trade add INFY sell 10 1580 --date 2026-05-06", "Record a dated sell"},
						{"journal trade add TCS buy 5 3500 --tags swing,earnings --strategy breakout", "Tag and classify"},
						{"journal trade list --symbol INFY", "List one symbol's trades"},
					},
				},
				{
					name: "Analytics",
					examples: []struct {
						cmd  string
						desc string
					}{
						{"journal stats", "Overall PnL, win rate and insights"},
						{"journal stats --monthly --tags", "Monthly PnL plus tag performance"},
						{"journal stats --daily", "Daily PnL and equity curve"},
						{"journal positions", "Open positions with live valuations"},
					},
				},
				{
					name: "Risk and goals",
					examples: []struct {
						cmd  string
						desc string
					}{
						{"journal risk balance 1000000", "Set the account balance"},
						{"journal risk set --max-position 20 --max-daily-loss-percent 3", "Set limits"},
						{"journal risk show", "Concentration and daily-loss status"},
						{"journal goal set 2026-09 --pnl 100000 --trades 20", "Set a monthly goal"},
						{"journal goal progress", "Trailing six months vs goals"},
					},
				},
				{
					name: "Backups",
					examples: []struct {
						cmd  string
						desc string
					}{
						{"journal backup export trades.csv", "Export the journal to CSV"},
						{"journal backup import trades.csv", "Import trades from CSV"},
					},
				},
			}

			for _, section := range sections {
				output.Bold(section.name)
				for _, ex := range section.examples {
					output.Printf("  %-64s %s\n", output.ColoredString(ColorCyan, ex.cmd), ex.desc)
				}
				output.Println()
			}
			return nil
		},
	}
}

func newQuickstartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "quickstart",
		Short: "Getting started guide",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			output.Bold("Quickstart")
			output.Println()
			output.Println("1. Initialize the config (optional, defaults work out of the box):")
			output.Info("   journal config init")
			output.Println()
			output.Println("2. Set your account balance so percent figures mean something:")
			output.Info("   journal risk balance 1000000")
			output.Println()
			output.Println("3. Record trades as you make them:")
			output.Info("   journal trade add INFY buy 10 1500 --tags swing")
			output.Info("   journal trade add INFY sell 10 1580")
			output.Println()
			output.Println("4. Review the numbers:")
			output.Info("   journal stats")
			output.Info("   journal positions")
			output.Info("   journal risk show")
			output.Println()
			output.Println("Every figure is rebuilt from the raw trade log on each run; there")
			output.Println("is no derived state to get stale. Use --json anywhere for scripts.")
			return nil
		},
	}
}

// Package cli provides the command-line interface for the journal
// application.
package cli

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"trade-journal/internal/analytics"
	"trade-journal/internal/config"
	apperrors "trade-journal/internal/errors"
	"trade-journal/internal/logging"
	"trade-journal/internal/models"
	"trade-journal/internal/prices"
	"trade-journal/internal/risk"
	"trade-journal/internal/store"
)

// Version information
const Version = "0.1.0"

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  store.DataStore
	Prices prices.Provider
	Engine *analytics.Engine
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
		Engine: analytics.NewEngine(logger),
	}

	dataStore, err := store.NewSQLiteStore(config.DefaultDBPath())
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize store, some features may be unavailable")
	} else {
		app.Store = dataStore
		logger.Debug().Msg("SQLite store initialized")
	}

	switch cfg.Prices.Provider {
	case "yahoo":
		app.Prices = prices.NewYahooProvider(logger)
	default:
		app.Prices = prices.NewStaticProvider(nil)
	}

	rootCmd := &cobra.Command{
		Use:   "journal",
		Short: "Trade journal with position and PnL analytics",
		Long: `A personal trade journal that rebuilds positions, realized and unrealized
PnL, equity curve with drawdown, streaks, tag/strategy performance and risk
signals from the raw trade log on every run.

Use 'journal help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Store != nil {
				app.Store.Close()
			}
		},
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.Version = Version

	addTradeCommands(rootCmd, app)
	addStatsCommands(rootCmd, app)
	addPositionsCommand(rootCmd, app)
	addRiskCommands(rootCmd, app)
	addGoalCommands(rootCmd, app)
	addBackupCommands(rootCmd, app)
	addConfigCommands(rootCmd, app)
	addHelpCommands(rootCmd, app)

	return rootCmd
}

// runInput assembles one engine input from the store and price provider.
// Settings or balance that were never saved fall back to config defaults.
func (app *App) runInput(ctx context.Context, fetchPrices bool) (analytics.Input, error) {
	in := analytics.Input{Today: time.Now().UTC()}

	trades, err := app.Store.GetTrades(ctx, store.TradeFilter{})
	if err != nil {
		return in, err
	}
	in.Trades = trades

	settings, err := app.Store.GetRiskSettings(ctx)
	if errors.Is(err, apperrors.ErrSettingsNotFound) {
		settings = models.RiskSettings{
			MaxPositionPercent:  app.Config.Risk.MaxPositionPercent,
			MaxDailyLossPercent: app.Config.Risk.MaxDailyLossPercent,
			MaxDailyLossAmount:  app.Config.Risk.MaxDailyLossAmount,
			AlertEnabled:        app.Config.Risk.AlertEnabled,
		}
	} else if err != nil {
		return in, err
	}
	in.Risk = settings

	balance, err := app.Store.GetBalance(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrSettingsNotFound) {
		return in, err
	}
	in.Balance = balance

	goals, err := app.Store.GetGoals(ctx)
	if err != nil {
		return in, err
	}
	in.Goals = goals

	in.RiskBands = &risk.Bands{
		Medium:   app.Config.Risk.BandMedium,
		High:     app.Config.Risk.BandHigh,
		Critical: app.Config.Risk.BandCritical,
	}

	if fetchPrices && app.Prices != nil {
		symbols := heldSymbols(trades)
		priceMap, err := app.Prices.Quote(ctx, symbols)
		if err != nil {
			app.Logger.Warn().Err(err).Msg("Price fetch failed, valuations will be partial")
		}
		in.Prices = priceMap
	}

	return in, nil
}

// heldSymbols lists every distinct symbol in the journal, sorted order not
// required here; the provider resolves what it can.
func heldSymbols(trades []models.Trade) []string {
	seen := make(map[string]bool)
	var symbols []string
	for _, t := range trades {
		if !seen[t.Symbol] {
			seen[t.Symbol] = true
			symbols = append(symbols, t.Symbol)
		}
	}
	return symbols
}

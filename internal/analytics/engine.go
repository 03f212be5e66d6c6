package analytics

import (
	"time"

	"github.com/rs/zerolog"

	"trade-journal/internal/goals"
	"trade-journal/internal/ledger"
	"trade-journal/internal/models"
	"trade-journal/internal/risk"
)

// Input is everything one analytics run reads. The engine never fetches or
// persists anything itself; prices, balance, settings and goals all arrive
// from the caller. Today anchors "today's PnL" and the goal window so runs
// stay reproducible.
type Input struct {
	Trades    []models.Trade
	Prices    map[string]float64
	Balance   models.AccountBalance
	Risk      models.RiskSettings
	Goals     []models.MonthlyGoal
	Today     time.Time
	RiskBands *risk.Bands // nil for the default policy
}

// Report is the full read model of one run. Consumers render it and throw it
// away; the next change to any input triggers a fresh run.
type Report struct {
	Ledger         *ledger.Result
	Symbols        []models.SymbolSummary
	Tags           []models.TagPerf
	Strategies     []models.StrategyPerf
	Overall        models.OverallStats
	DailyPnL       []models.PnLPoint
	MonthlyPnL     []models.PnLPoint
	DailyEquity    []models.EquityPoint
	MonthlyEquity  []models.EquityPoint
	Weekdays       []models.WeekdayStats
	HoldingPeriods []models.HoldingPeriodStats
	Insights       models.InsightData
	Risks          []models.PositionRisk
	HighRisk       []models.PositionRisk
	Alert          *models.RiskAlert
	Goals          []models.MonthlyProgress
}

// Engine runs the analytics pipeline. It holds no state between runs; the
// logger is the only dependency.
type Engine struct {
	log zerolog.Logger
}

// NewEngine creates an engine logging through the given logger.
func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{log: log.With().Str("component", "analytics").Logger()}
}

// Run replays the trade list and derives every read model in one pass.
// Identical inputs yield identical reports.
func (e *Engine) Run(in Input) *Report {
	started := time.Now()

	res := ledger.Replay(in.Trades)
	for _, skipped := range res.Skipped {
		e.log.Warn().
			Str("trade_id", skipped.Trade.ID).
			Str("symbol", skipped.Trade.Symbol).
			Err(skipped.Err).
			Msg("Trade skipped")
	}
	for _, sym := range res.Oversold {
		e.log.Warn().Str("symbol", sym).Msg("Sell exceeded held quantity")
	}

	names := displayNames(in.Trades)

	report := &Report{Ledger: res}
	report.Symbols = SymbolSummaries(res, in.Prices, names)
	report.Tags = TagPerformance(res.Closings)
	report.Strategies = StrategyPerformance(res.Closings)
	report.Overall = Overall(res.Closings, report.Symbols)
	report.DailyPnL = DailyPnL(res.Closings)
	report.MonthlyPnL = MonthlyPnL(res.Closings)
	report.DailyEquity = EquityCurve(report.DailyPnL)
	report.MonthlyEquity = EquityCurve(report.MonthlyPnL)
	report.Weekdays = WeekdayPerformance(res.Closings)
	report.HoldingPeriods = HoldingPeriods(res.Closings)
	report.Insights = Insights(res.Closings, report.Weekdays, report.Tags, report.DailyEquity)

	evaluator := risk.NewEvaluator(in.Risk, in.Balance)
	if in.RiskBands != nil {
		evaluator = evaluator.WithBands(*in.RiskBands)
	}
	report.Risks = evaluator.EvaluatePositions(res.OpenPositions(), in.Prices)
	report.HighRisk = risk.HighRisk(report.Risks)
	report.Alert = evaluator.DailyLossAlert(e.todayPnL(report, in.Today))

	report.Goals = goals.Progress(res.Closings, in.Goals, in.Today)

	e.log.Debug().
		Int("trades", len(in.Trades)).
		Int("skipped", len(res.Skipped)).
		Int("closings", len(res.Closings)).
		Dur("elapsed", time.Since(started)).
		Msg("Analytics run complete")

	return report
}

// todayPnL is the day's realized PnL plus the unrealized PnL of priced open
// positions. Without yesterday's prices an exact unrealized delta for the day
// is not derivable, so the open-position total stands in for it.
func (e *Engine) todayPnL(report *Report, today time.Time) float64 {
	if today.IsZero() {
		return 0
	}
	key := today.UTC().Format("2006-01-02")

	var pnl float64
	for _, c := range report.Ledger.Closings {
		if c.Date.Format("2006-01-02") == key {
			pnl += c.RealizedPnL
		}
	}
	return pnl + report.Overall.UnrealizedPnL
}

// displayNames keeps the last non-empty display name seen per symbol.
func displayNames(trades []models.Trade) map[string]string {
	names := make(map[string]string)
	for _, t := range trades {
		if t.Name != "" {
			names[t.Symbol] = t.Name
		}
	}
	return names
}

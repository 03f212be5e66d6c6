package models

import "time"

// SymbolSummary aggregates one symbol across the whole journal. The valuation
// fields are pointers: nil means "no current price supplied", which callers
// must be able to tell apart from a zero value.
type SymbolSummary struct {
	Symbol           string
	Name             string
	BoughtQuantity   float64
	BoughtAmount     float64
	SoldQuantity     float64
	SoldAmount       float64
	PositionQuantity float64
	AvgCost          float64
	RealizedPnL      float64
	TradeCount       int
	WinCount         int
	LossCount        int
	EvenCount        int
	WinRate          float64 // percent, 0 when TradeCount is 0
	CurrentPrice     *float64
	UnrealizedPnL    *float64
	CurrentValuation *float64
}

// TagPerf aggregates closing events per tag. A trade carrying several tags
// contributes to each of them, so tag totals do not sum to the overall total.
type TagPerf struct {
	Tag         string
	TradeCount  int
	WinCount    int
	LossCount   int
	EvenCount   int
	WinRate     float64
	RealizedPnL float64
	AvgPnL      float64
}

// StrategyPerf aggregates closing events per strategy.
type StrategyPerf struct {
	Strategy    string
	TradeCount  int
	WinCount    int
	LossCount   int
	EvenCount   int
	WinRate     float64
	RealizedPnL float64
	AvgPnL      float64
	MaxWin      float64
	MaxLoss     float64
}

// OverallStats is the headline aggregate across every closing event.
type OverallStats struct {
	TradeCount    int
	WinCount      int
	LossCount     int
	EvenCount     int
	WinRate       float64
	RealizedPnL   float64
	AvgPnL        float64
	MaxWin        float64
	MaxLoss       float64
	ProfitSum     float64 // sum of winning events only
	LossSum       float64 // sum of losing events only, negative
	ProfitFactor  float64 // ProfitSum / |LossSum|, 0 when no losses
	UnrealizedPnL float64 // only symbols with a supplied price contribute
}

// PnLPoint is one realized-PnL bucket, keyed either by day (YYYY-MM-DD) or
// by month (YYYY-MM). Only buckets with at least one closing event exist.
type PnLPoint struct {
	Key   string
	Label string
	PnL   float64
}

// EquityPoint is one point of the cumulative equity curve with drawdown
// against the running peak. Drawdown is always <= 0.
type EquityPoint struct {
	Date            time.Time
	Key             string
	Cumulative      float64
	Peak            float64
	Drawdown        float64
	DrawdownPercent float64
}

// WeekdayStats aggregates closing events by the weekday of the trade date.
// Weekday follows time.Weekday numbering: 0=Sunday .. 6=Saturday. Labels and
// localization are the presentation layer's job.
type WeekdayStats struct {
	Weekday    time.Weekday
	TradeCount int
	WinCount   int
	LossCount  int
	EvenCount  int
	WinRate    float64
	TotalPnL   float64
	AvgPnL     float64
}

// HoldingBucket identifies a holding-period range.
type HoldingBucket string

const (
	HoldSameDay  HoldingBucket = "same_day"
	HoldShort    HoldingBucket = "1-3d"
	HoldWeek     HoldingBucket = "4-7d"
	HoldTwoWeeks HoldingBucket = "1-2w"
	HoldMonth    HoldingBucket = "2w-1mo"
	HoldLong     HoldingBucket = "1mo+"
)

// HoldingPeriodStats aggregates closing events by approximate holding time.
// Average-cost accounting has no per-lot dates, so holding time is measured
// from the date the position was last opened from flat; the figure is an
// approximation and is documented as such.
type HoldingPeriodStats struct {
	Bucket     HoldingBucket
	TradeCount int
	WinCount   int
	LossCount  int
	EvenCount  int
	WinRate    float64
	TotalPnL   float64
	AvgPnL     float64
}

// StreakInfo describes a run of same-classification closing events.
type StreakInfo struct {
	Type  Classification // ResultWin, ResultLoss or ResultNone
	Count int
}

// InsightData is the small set of superlatives shown on the dashboard.
type InsightData struct {
	BestWeekday        *WeekdayStats
	BestTag            *TagPerf
	LongWinRate        float64
	ShortWinRate       float64
	MaxWin             float64
	MaxLoss            float64
	MaxDrawdown        float64
	MaxDrawdownPercent float64
	CurrentStreak      StreakInfo
	MaxWinStreak       int
	MaxLossStreak      int
}

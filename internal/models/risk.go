package models

// RiskLevel classifies position concentration against the configured limit.
// Ordering matters: levels only ever escalate as concentration grows.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
	RiskCritical
)

func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	case RiskCritical:
		return "critical"
	}
	return "unknown"
}

// RiskSettings are the user-edited risk limits. Persisted externally; the
// engine only reads them.
type RiskSettings struct {
	MaxPositionPercent  float64
	MaxDailyLossPercent float64
	MaxDailyLossAmount  float64
	AlertEnabled        bool
}

// AccountBalance is the user-entered account size used for percent figures.
type AccountBalance struct {
	Amount float64
}

// PositionRisk is the concentration assessment of one open position.
// PositionValue is nil when no current price was supplied for the symbol.
type PositionRisk struct {
	Symbol          string
	Quantity        float64
	CurrentPrice    *float64
	PositionValue   *float64
	PositionPercent float64
	Level           RiskLevel
}

// AlertKind names which daily-loss threshold fired.
type AlertKind string

const (
	AlertPercent AlertKind = "percent"
	AlertAmount  AlertKind = "amount"
)

// RiskAlert is the single optional daily-loss alert. The percent threshold is
// evaluated before the amount threshold; Kind records which one fired.
type RiskAlert struct {
	Kind      AlertKind
	DailyPnL  float64
	Threshold float64
	Message   string
}

// Package risk classifies position concentration against user limits and
// evaluates the daily-loss alert. It only needs realized/unrealized totals
// from the rest of the pipeline; everything else comes from user settings.
package risk

import (
	"fmt"
	"sort"

	"trade-journal/internal/models"
)

// Bands are the concentration thresholds, expressed as fractions of the
// configured MaxPositionPercent. A position below Medium of the limit is low
// risk, below High is medium, below Critical is high, and at or past the
// limit is critical. The banding is a deliberate policy, kept configurable
// rather than buried as magic numbers.
type Bands struct {
	Medium   float64
	High     float64
	Critical float64
}

// DefaultBands returns the stock banding policy: 50% / 80% / 100% of limit.
func DefaultBands() Bands {
	return Bands{Medium: 0.5, High: 0.8, Critical: 1.0}
}

// Evaluator applies risk settings to open positions and daily PnL.
type Evaluator struct {
	settings models.RiskSettings
	balance  models.AccountBalance
	bands    Bands
}

// NewEvaluator creates an evaluator with the default banding policy.
func NewEvaluator(settings models.RiskSettings, balance models.AccountBalance) *Evaluator {
	return &Evaluator{settings: settings, balance: balance, bands: DefaultBands()}
}

// WithBands overrides the banding policy, typically from config.
func (e *Evaluator) WithBands(b Bands) *Evaluator {
	e.bands = b
	return e
}

// EvaluatePositions assesses every open position. Symbols without a supplied
// price keep nil valuation fields and stay at low risk: "not priced" must be
// distinguishable from "worth zero". A non-positive account balance yields a
// zero position percent rather than a division error.
func (e *Evaluator) EvaluatePositions(positions []models.PositionState, prices map[string]float64) []models.PositionRisk {
	risks := make([]models.PositionRisk, 0, len(positions))
	for _, pos := range positions {
		if pos.Flat() {
			continue
		}

		r := models.PositionRisk{
			Symbol:   pos.Symbol,
			Quantity: pos.Quantity,
			Level:    models.RiskLow,
		}

		if price, ok := prices[pos.Symbol]; ok {
			p := price
			r.CurrentPrice = &p
			value := pos.Quantity * price
			r.PositionValue = &value

			if e.balance.Amount > 0 {
				r.PositionPercent = value / e.balance.Amount * 100
			}
			r.Level = e.Classify(r.PositionPercent)
		}

		risks = append(risks, r)
	}

	sort.Slice(risks, func(i, j int) bool { return risks[i].Symbol < risks[j].Symbol })
	return risks
}

// Classify bands a position percent against the configured limit. With no
// positive limit configured the banding is disabled and everything is low.
func (e *Evaluator) Classify(positionPercent float64) models.RiskLevel {
	limit := e.settings.MaxPositionPercent
	if limit <= 0 {
		return models.RiskLow
	}

	ratio := positionPercent / limit
	switch {
	case ratio < e.bands.Medium:
		return models.RiskLow
	case ratio < e.bands.High:
		return models.RiskMedium
	case ratio < e.bands.Critical:
		return models.RiskHigh
	default:
		return models.RiskCritical
	}
}

// HighRisk filters to the positions at high or critical level.
func HighRisk(risks []models.PositionRisk) []models.PositionRisk {
	var out []models.PositionRisk
	for _, r := range risks {
		if r.Level >= models.RiskHigh {
			out = append(out, r)
		}
	}
	return out
}

// DailyLossAlert returns at most one alert for the day's PnL. The percent
// threshold is evaluated before the amount threshold; the alert records
// whichever fired. Profitable or flat days never alert.
func (e *Evaluator) DailyLossAlert(dailyPnL float64) *models.RiskAlert {
	if !e.settings.AlertEnabled || dailyPnL >= 0 {
		return nil
	}

	loss := -dailyPnL

	if e.settings.MaxDailyLossPercent > 0 && e.balance.Amount > 0 {
		lossPercent := loss / e.balance.Amount * 100
		if lossPercent >= e.settings.MaxDailyLossPercent {
			return &models.RiskAlert{
				Kind:      models.AlertPercent,
				DailyPnL:  dailyPnL,
				Threshold: e.settings.MaxDailyLossPercent,
				Message: fmt.Sprintf("daily loss %.2f is %.2f%% of account, over the %.2f%% limit",
					loss, lossPercent, e.settings.MaxDailyLossPercent),
			}
		}
	}

	if e.settings.MaxDailyLossAmount > 0 && loss >= e.settings.MaxDailyLossAmount {
		return &models.RiskAlert{
			Kind:      models.AlertAmount,
			DailyPnL:  dailyPnL,
			Threshold: e.settings.MaxDailyLossAmount,
			Message: fmt.Sprintf("daily loss %.2f is over the %.2f limit",
				loss, e.settings.MaxDailyLossAmount),
		}
	}

	return nil
}

package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-journal/internal/models"
)

func evaluator(maxPosition, maxLossPercent, maxLossAmount float64, alerts bool, balance float64) *Evaluator {
	return NewEvaluator(
		models.RiskSettings{
			MaxPositionPercent:  maxPosition,
			MaxDailyLossPercent: maxLossPercent,
			MaxDailyLossAmount:  maxLossAmount,
			AlertEnabled:        alerts,
		},
		models.AccountBalance{Amount: balance},
	)
}

func openPosition(symbol string, qty, avgCost float64) models.PositionState {
	return models.PositionState{Symbol: symbol, Quantity: qty, AvgCost: avgCost}
}

func TestConcentrationOverLimitIsCritical(t *testing.T) {
	// 250,000 position on a 1,000,000 account with a 20% cap: the position
	// sits at 25% of the account, 125% of the limit.
	e := evaluator(20, 0, 0, false, 1_000_000)

	risks := e.EvaluatePositions(
		[]models.PositionState{openPosition("RELIANCE", 100, 2400)},
		map[string]float64{"RELIANCE": 2500},
	)

	require.Len(t, risks, 1)
	r := risks[0]
	require.NotNil(t, r.PositionValue)
	assert.InDelta(t, 250_000, *r.PositionValue, 1e-9)
	assert.InDelta(t, 25.0, r.PositionPercent, 1e-9)
	assert.Equal(t, models.RiskCritical, r.Level)
}

func TestConcentrationBands(t *testing.T) {
	e := evaluator(20, 0, 0, false, 1_000_000)

	tests := []struct {
		name    string
		percent float64
		want    models.RiskLevel
	}{
		{"well under limit", 5, models.RiskLow},
		{"just under half of limit", 9.99, models.RiskLow},
		{"half of limit", 10, models.RiskMedium},
		{"just under 80% of limit", 15.99, models.RiskMedium},
		{"80% of limit", 16, models.RiskHigh},
		{"just under limit", 19.99, models.RiskHigh},
		{"at limit", 20, models.RiskCritical},
		{"over limit", 40, models.RiskCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Classify(tt.percent))
		})
	}
}

func TestCustomBands(t *testing.T) {
	e := evaluator(20, 0, 0, false, 1_000_000).
		WithBands(Bands{Medium: 0.25, High: 0.5, Critical: 0.75})

	assert.Equal(t, models.RiskLow, e.Classify(4))       // 20% of limit
	assert.Equal(t, models.RiskMedium, e.Classify(6))    // 30% of limit
	assert.Equal(t, models.RiskHigh, e.Classify(12))     // 60% of limit
	assert.Equal(t, models.RiskCritical, e.Classify(16)) // 80% of limit
}

func TestUnpricedPositionStaysLowWithNilValuation(t *testing.T) {
	e := evaluator(20, 0, 0, false, 1_000_000)

	risks := e.EvaluatePositions(
		[]models.PositionState{openPosition("UNLISTED", 50, 300)},
		map[string]float64{},
	)

	require.Len(t, risks, 1)
	assert.Nil(t, risks[0].CurrentPrice)
	assert.Nil(t, risks[0].PositionValue)
	assert.Zero(t, risks[0].PositionPercent)
	assert.Equal(t, models.RiskLow, risks[0].Level)
}

func TestZeroBalanceYieldsZeroPercent(t *testing.T) {
	e := evaluator(20, 0, 0, false, 0)

	risks := e.EvaluatePositions(
		[]models.PositionState{openPosition("TCS", 10, 3500)},
		map[string]float64{"TCS": 3600},
	)

	require.Len(t, risks, 1)
	assert.Zero(t, risks[0].PositionPercent)
	assert.Equal(t, models.RiskLow, risks[0].Level)
}

func TestNoLimitDisablesBanding(t *testing.T) {
	e := evaluator(0, 0, 0, false, 1_000_000)
	assert.Equal(t, models.RiskLow, e.Classify(99))
}

func TestFlatPositionsSkippedAndOutputSorted(t *testing.T) {
	e := evaluator(20, 0, 0, false, 1_000_000)

	risks := e.EvaluatePositions(
		[]models.PositionState{
			openPosition("ZEE", 10, 250),
			{Symbol: "FLAT", Quantity: 0},
			openPosition("ACC", 5, 1800),
		},
		map[string]float64{"ZEE": 260, "ACC": 1850},
	)

	require.Len(t, risks, 2)
	assert.Equal(t, "ACC", risks[0].Symbol)
	assert.Equal(t, "ZEE", risks[1].Symbol)
}

func TestHighRiskFilter(t *testing.T) {
	risks := []models.PositionRisk{
		{Symbol: "A", Level: models.RiskLow},
		{Symbol: "B", Level: models.RiskHigh},
		{Symbol: "C", Level: models.RiskMedium},
		{Symbol: "D", Level: models.RiskCritical},
	}

	high := HighRisk(risks)
	require.Len(t, high, 2)
	assert.Equal(t, "B", high[0].Symbol)
	assert.Equal(t, "D", high[1].Symbol)
}

func TestDailyLossAlertPercent(t *testing.T) {
	// A 40,000 loss on a 1,000,000 account is 4%, over the 3% threshold.
	e := evaluator(20, 3, 0, true, 1_000_000)

	alert := e.DailyLossAlert(-40_000)
	require.NotNil(t, alert)
	assert.Equal(t, models.AlertPercent, alert.Kind)
	assert.InDelta(t, -40_000, alert.DailyPnL, 1e-9)
	assert.InDelta(t, 3.0, alert.Threshold, 1e-9)
	assert.NotEmpty(t, alert.Message)
}

func TestDailyLossAlertAmount(t *testing.T) {
	e := evaluator(20, 0, 25_000, true, 1_000_000)

	alert := e.DailyLossAlert(-30_000)
	require.NotNil(t, alert)
	assert.Equal(t, models.AlertAmount, alert.Kind)
	assert.InDelta(t, 25_000, alert.Threshold, 1e-9)
}

func TestDailyLossAlertPercentWinsOverAmount(t *testing.T) {
	// Both thresholds are breached; the percent check runs first.
	e := evaluator(20, 3, 10_000, true, 1_000_000)

	alert := e.DailyLossAlert(-40_000)
	require.NotNil(t, alert)
	assert.Equal(t, models.AlertPercent, alert.Kind)
}

func TestDailyLossAlertSuppressed(t *testing.T) {
	tests := []struct {
		name     string
		eval     *Evaluator
		dailyPnL float64
	}{
		{"alerts disabled", evaluator(20, 3, 10_000, false, 1_000_000), -40_000},
		{"profitable day", evaluator(20, 3, 10_000, true, 1_000_000), 40_000},
		{"flat day", evaluator(20, 3, 10_000, true, 1_000_000), 0},
		{"loss under both thresholds", evaluator(20, 3, 50_000, true, 1_000_000), -20_000},
		{"no thresholds configured", evaluator(20, 0, 0, true, 1_000_000), -40_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, tt.eval.DailyLossAlert(tt.dailyPnL))
		})
	}
}

func TestPercentThresholdNeedsBalance(t *testing.T) {
	// Without a balance the percent threshold cannot be computed; the amount
	// threshold still applies.
	e := evaluator(20, 3, 25_000, true, 0)

	alert := e.DailyLossAlert(-30_000)
	require.NotNil(t, alert)
	assert.Equal(t, models.AlertAmount, alert.Kind)
}

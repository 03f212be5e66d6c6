package goals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-journal/internal/models"
)

func closingOn(date time.Time, pnl float64) models.ClosingEvent {
	result := models.ResultEven
	switch {
	case pnl > 0:
		result = models.ResultWin
	case pnl < 0:
		result = models.ResultLoss
	}
	return models.ClosingEvent{Symbol: "X", Date: date, RealizedPnL: pnl, Result: result}
}

func TestProgressAgainstGoal(t *testing.T) {
	today := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	closings := []models.ClosingEvent{
		closingOn(time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), 500_000),
		closingOn(time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), 250_000),
		closingOn(time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC), 0),
	}
	goalList := []models.MonthlyGoal{
		{Month: "2026-08", TargetPnL: 1_000_000, TargetTrades: 10, TargetWinRate: 60},
	}

	progress := Progress(closings, goalList, today)
	require.Len(t, progress, TrailingMonths)

	current := progress[TrailingMonths-1]
	assert.Equal(t, "2026-08", current.Month)
	require.NotNil(t, current.Goal)
	assert.InDelta(t, 750_000, current.ActualPnL, 1e-9)
	assert.InDelta(t, 75.0, current.PnLProgress, 1e-9)
	assert.Equal(t, 3, current.ActualTrades)
	assert.InDelta(t, 30.0, current.TradesProgress, 1e-9)
	// 2 wins out of 3, against a 60% target.
	assert.InDelta(t, 100.0/1.5, current.ActualWinRate, 1e-6)
	assert.InDelta(t, current.ActualWinRate/60*100, current.WinRateProgress, 1e-6)
}

func TestProgressTrailingWindow(t *testing.T) {
	today := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	progress := Progress(nil, nil, today)
	require.Len(t, progress, TrailingMonths)

	want := []string{"2026-03", "2026-04", "2026-05", "2026-06", "2026-07", "2026-08"}
	for i, p := range progress {
		assert.Equal(t, want[i], p.Month)
		assert.Nil(t, p.Goal)
		assert.Zero(t, p.ActualPnL)
	}
}

func TestProgressWindowCrossesYearBoundary(t *testing.T) {
	today := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	progress := Progress(nil, nil, today)
	require.Len(t, progress, TrailingMonths)
	assert.Equal(t, "2025-09", progress[0].Month)
	assert.Equal(t, "2026-02", progress[TrailingMonths-1].Month)
}

func TestActualsOutsideWindowIgnored(t *testing.T) {
	today := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	closings := []models.ClosingEvent{
		closingOn(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), 9999),
		closingOn(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), 100),
	}

	progress := Progress(closings, nil, today)
	require.Len(t, progress, TrailingMonths)

	var total float64
	for _, p := range progress {
		total += p.ActualPnL
	}
	assert.InDelta(t, 100, total, 1e-9)
}

func TestMonthWithActualsButNoGoal(t *testing.T) {
	today := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	closings := []models.ClosingEvent{
		closingOn(time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), 1200),
	}

	progress := Progress(closings, nil, today)
	current := progress[TrailingMonths-1]
	assert.Nil(t, current.Goal)
	assert.InDelta(t, 1200, current.ActualPnL, 1e-9)
	assert.Zero(t, current.PnLProgress)
}

func TestZeroTargetsYieldZeroProgress(t *testing.T) {
	today := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	closings := []models.ClosingEvent{
		closingOn(time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), 1200),
	}
	goalList := []models.MonthlyGoal{{Month: "2026-08"}}

	progress := Progress(closings, goalList, today)
	current := progress[TrailingMonths-1]
	require.NotNil(t, current.Goal)
	assert.Zero(t, current.PnLProgress)
	assert.Zero(t, current.TradesProgress)
	assert.Zero(t, current.WinRateProgress)
}

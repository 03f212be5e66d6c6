package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-journal/internal/models"
)

func TestWeekdayPerformanceFixedShape(t *testing.T) {
	// 2026-03-01 is a Sunday.
	stats := WeekdayPerformance([]models.ClosingEvent{
		closing(1, "X", 100, nil, ""), // Sunday
		closing(2, "X", -20, nil, ""), // Monday
		closing(9, "X", 60, nil, ""),  // Monday
	})

	require.Len(t, stats, 7)
	assert.Equal(t, time.Sunday, stats[0].Weekday)

	sunday := stats[0]
	assert.Equal(t, 1, sunday.TradeCount)
	assert.InDelta(t, 100.0, sunday.TotalPnL, 1e-9)

	monday := stats[1]
	assert.Equal(t, 2, monday.TradeCount)
	assert.InDelta(t, 40.0, monday.TotalPnL, 1e-9)
	assert.InDelta(t, 50.0, monday.WinRate, 1e-9)

	// Untraded weekdays stay zero with no NaN win rate.
	saturday := stats[6]
	assert.Zero(t, saturday.TradeCount)
	assert.Zero(t, saturday.WinRate)
}

func TestHoldingPeriodsBucketing(t *testing.T) {
	events := []models.ClosingEvent{
		{Date: day(1), RealizedPnL: 10, Result: models.ResultWin, HoldingDays: 0},
		{Date: day(2), RealizedPnL: 10, Result: models.ResultWin, HoldingDays: 2},
		{Date: day(3), RealizedPnL: -10, Result: models.ResultLoss, HoldingDays: 6},
		{Date: day(4), RealizedPnL: 10, Result: models.ResultWin, HoldingDays: 10},
		{Date: day(5), RealizedPnL: 10, Result: models.ResultWin, HoldingDays: 21},
		{Date: day(6), RealizedPnL: 10, Result: models.ResultWin, HoldingDays: 90},
	}

	stats := HoldingPeriods(events)
	require.Len(t, stats, 6)

	byBucket := map[models.HoldingBucket]models.HoldingPeriodStats{}
	for _, s := range stats {
		byBucket[s.Bucket] = s
	}

	assert.Equal(t, 1, byBucket[models.HoldSameDay].TradeCount)
	assert.Equal(t, 1, byBucket[models.HoldShort].TradeCount)
	assert.Equal(t, 1, byBucket[models.HoldWeek].TradeCount)
	assert.Equal(t, 1, byBucket[models.HoldTwoWeeks].TradeCount)
	assert.Equal(t, 1, byBucket[models.HoldMonth].TradeCount)
	assert.Equal(t, 1, byBucket[models.HoldLong].TradeCount)
}

func TestStreaks(t *testing.T) {
	win := models.ResultWin
	loss := models.ResultLoss
	even := models.ResultEven

	mk := func(results ...models.Classification) []models.ClosingEvent {
		events := make([]models.ClosingEvent, len(results))
		for i, r := range results {
			events[i] = models.ClosingEvent{Date: day(i + 1), Result: r}
		}
		return events
	}

	tests := []struct {
		name        string
		events      []models.ClosingEvent
		wantType    models.Classification
		wantCount   int
		wantMaxWin  int
		wantMaxLoss int
	}{
		{"empty", nil, models.ResultNone, 0, 0, 0},
		{"all wins", mk(win, win, win), win, 3, 3, 0},
		{"trailing losses", mk(win, win, loss, loss, loss), loss, 3, 2, 3},
		{"even breaks streak", mk(win, win, even), models.ResultNone, 0, 2, 0},
		{"restart after even", mk(win, even, loss, loss), loss, 2, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, maxWin, maxLoss := Streaks(tt.events)
			assert.Equal(t, tt.wantType, current.Type)
			assert.Equal(t, tt.wantCount, current.Count)
			assert.Equal(t, tt.wantMaxWin, maxWin)
			assert.Equal(t, tt.wantMaxLoss, maxLoss)
		})
	}
}

func TestInsightsSuperlatives(t *testing.T) {
	closings := []models.ClosingEvent{
		closing(1, "X", 500, []string{"swing"}, ""),  // Sunday
		closing(2, "X", -200, []string{"scalp"}, ""), // Monday
		closing(8, "X", 100, []string{"swing"}, ""),  // Sunday
	}

	weekdays := WeekdayPerformance(closings)
	tags := TagPerformance(closings)
	equity := EquityCurve(DailyPnL(closings))

	insights := Insights(closings, weekdays, tags, equity)

	require.NotNil(t, insights.BestWeekday)
	assert.Equal(t, time.Sunday, insights.BestWeekday.Weekday)
	require.NotNil(t, insights.BestTag)
	assert.Equal(t, "swing", insights.BestTag.Tag)
	assert.InDelta(t, 500.0, insights.MaxWin, 1e-9)
	assert.InDelta(t, -200.0, insights.MaxLoss, 1e-9)
	assert.InDelta(t, -200.0, insights.MaxDrawdown, 1e-9)
	assert.InDelta(t, 200.0/3.0, insights.LongWinRate, 1e-6)
	assert.Zero(t, insights.ShortWinRate)
}

func TestInsightsEmpty(t *testing.T) {
	insights := Insights(nil, WeekdayPerformance(nil), nil, nil)
	assert.Nil(t, insights.BestWeekday)
	assert.Nil(t, insights.BestTag)
	assert.Equal(t, models.ResultNone, insights.CurrentStreak.Type)
	assert.Zero(t, insights.MaxDrawdown)
}

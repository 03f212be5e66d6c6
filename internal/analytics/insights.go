package analytics

import "trade-journal/internal/models"

// Insights assembles the dashboard superlatives from already-computed
// aggregates. The journal models long trades only (buy to open, sell to
// close), so the long win rate is the overall closing win rate and the short
// win rate is reported as 0.
func Insights(
	closings []models.ClosingEvent,
	weekdays []models.WeekdayStats,
	tags []models.TagPerf,
	dailyEquity []models.EquityPoint,
) models.InsightData {
	insights := models.InsightData{
		CurrentStreak: models.StreakInfo{Type: models.ResultNone},
	}

	var wins, total int
	for _, c := range closings {
		total++
		switch c.Result {
		case models.ResultWin:
			wins++
		}
		if c.RealizedPnL > insights.MaxWin {
			insights.MaxWin = c.RealizedPnL
		}
		if c.RealizedPnL < insights.MaxLoss {
			insights.MaxLoss = c.RealizedPnL
		}
	}
	insights.LongWinRate = winRate(wins, total)
	insights.ShortWinRate = 0

	for i := range weekdays {
		w := weekdays[i]
		if w.TradeCount == 0 {
			continue
		}
		if insights.BestWeekday == nil || w.TotalPnL > insights.BestWeekday.TotalPnL {
			best := w
			insights.BestWeekday = &best
		}
	}

	for i := range tags {
		t := tags[i]
		if insights.BestTag == nil || t.RealizedPnL > insights.BestTag.RealizedPnL {
			best := t
			insights.BestTag = &best
		}
	}

	insights.MaxDrawdown, insights.MaxDrawdownPercent = MaxDrawdown(dailyEquity)
	insights.CurrentStreak, insights.MaxWinStreak, insights.MaxLossStreak = Streaks(closings)

	return insights
}

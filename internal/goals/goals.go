// Package goals projects monthly targets against realized results. Pure
// projection: no side effects, goals themselves are persisted elsewhere.
package goals

import (
	"time"

	"trade-journal/internal/models"
)

// TrailingMonths is how many calendar months Progress reports, the current
// month included.
const TrailingMonths = 6

// monthActuals is the per-month fold of closing events.
type monthActuals struct {
	pnl    float64
	trades int
	wins   int
}

// Progress joins each of the trailing months' goals against that month's
// actuals, oldest first. Months without a goal still appear so the dashboard
// can show the actuals; their progress figures stay 0. A zero target also
// yields 0 progress rather than a division error.
func Progress(closings []models.ClosingEvent, goalList []models.MonthlyGoal, today time.Time) []models.MonthlyProgress {
	byMonth := make(map[string]*monthActuals)
	for _, c := range closings {
		key := c.Date.Format("2006-01")
		a, ok := byMonth[key]
		if !ok {
			a = &monthActuals{}
			byMonth[key] = a
		}
		a.pnl += c.RealizedPnL
		a.trades++
		if c.Result == models.ResultWin {
			a.wins++
		}
	}

	goalsByMonth := make(map[string]models.MonthlyGoal, len(goalList))
	for _, g := range goalList {
		goalsByMonth[g.Month] = g
	}

	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	progress := make([]models.MonthlyProgress, 0, TrailingMonths)
	for i := TrailingMonths - 1; i >= 0; i-- {
		month := first.AddDate(0, -i, 0)
		key := month.Format("2006-01")

		p := models.MonthlyProgress{Month: key}
		if a, ok := byMonth[key]; ok {
			p.ActualPnL = a.pnl
			p.ActualTrades = a.trades
			if a.trades > 0 {
				p.ActualWinRate = float64(a.wins) / float64(a.trades) * 100
			}
		}

		if g, ok := goalsByMonth[key]; ok {
			goal := g
			p.Goal = &goal
			p.PnLProgress = ratioPercent(p.ActualPnL, g.TargetPnL)
			p.TradesProgress = ratioPercent(float64(p.ActualTrades), float64(g.TargetTrades))
			p.WinRateProgress = ratioPercent(p.ActualWinRate, g.TargetWinRate)
		}

		progress = append(progress, p)
	}
	return progress
}

func ratioPercent(actual, target float64) float64 {
	if target == 0 {
		return 0
	}
	return actual / target * 100
}

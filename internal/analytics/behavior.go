package analytics

import (
	"time"

	"trade-journal/internal/models"
)

// holdingBuckets in display order.
var holdingBuckets = []models.HoldingBucket{
	models.HoldSameDay,
	models.HoldShort,
	models.HoldWeek,
	models.HoldTwoWeeks,
	models.HoldMonth,
	models.HoldLong,
}

// WeekdayPerformance groups closing events by the weekday of the trade date.
// All seven weekdays are present, Sunday first, so consumers get a fixed-shape
// series; empty weekdays carry zero counts and a zero win rate.
func WeekdayPerformance(closings []models.ClosingEvent) []models.WeekdayStats {
	stats := make([]models.WeekdayStats, 7)
	for i := range stats {
		stats[i].Weekday = time.Weekday(i)
	}

	for _, c := range closings {
		s := &stats[int(c.Date.Weekday())]
		s.TradeCount++
		s.TotalPnL += c.RealizedPnL
		switch c.Result {
		case models.ResultWin:
			s.WinCount++
		case models.ResultLoss:
			s.LossCount++
		default:
			s.EvenCount++
		}
	}

	for i := range stats {
		stats[i].WinRate = winRate(stats[i].WinCount, stats[i].TradeCount)
		stats[i].AvgPnL = avg(stats[i].TotalPnL, stats[i].TradeCount)
	}
	return stats
}

// HoldingPeriods groups closing events by approximate holding duration.
// The duration comes from the ledger's opened-from-flat approximation.
func HoldingPeriods(closings []models.ClosingEvent) []models.HoldingPeriodStats {
	byBucket := make(map[models.HoldingBucket]*models.HoldingPeriodStats)
	for _, b := range holdingBuckets {
		byBucket[b] = &models.HoldingPeriodStats{Bucket: b}
	}

	for _, c := range closings {
		s := byBucket[holdingBucket(c.HoldingDays)]
		s.TradeCount++
		s.TotalPnL += c.RealizedPnL
		switch c.Result {
		case models.ResultWin:
			s.WinCount++
		case models.ResultLoss:
			s.LossCount++
		default:
			s.EvenCount++
		}
	}

	stats := make([]models.HoldingPeriodStats, 0, len(holdingBuckets))
	for _, b := range holdingBuckets {
		s := byBucket[b]
		s.WinRate = winRate(s.WinCount, s.TradeCount)
		s.AvgPnL = avg(s.TotalPnL, s.TradeCount)
		stats = append(stats, *s)
	}
	return stats
}

func holdingBucket(days int) models.HoldingBucket {
	switch {
	case days <= 0:
		return models.HoldSameDay
	case days <= 3:
		return models.HoldShort
	case days <= 7:
		return models.HoldWeek
	case days <= 14:
		return models.HoldTwoWeeks
	case days <= 30:
		return models.HoldMonth
	default:
		return models.HoldLong
	}
}

// Streaks walks the closing events in order and reports the trailing streak
// plus the longest win and loss runs. An even result breaks whatever run was
// going without starting one of its own.
func Streaks(closings []models.ClosingEvent) (current models.StreakInfo, maxWin, maxLoss int) {
	current = models.StreakInfo{Type: models.ResultNone}

	var run int
	var runType models.Classification = models.ResultNone

	for _, c := range closings {
		switch c.Result {
		case models.ResultWin, models.ResultLoss:
			if c.Result == runType {
				run++
			} else {
				runType = c.Result
				run = 1
			}
		default:
			runType = models.ResultNone
			run = 0
		}

		if runType == models.ResultWin && run > maxWin {
			maxWin = run
		}
		if runType == models.ResultLoss && run > maxLoss {
			maxLoss = run
		}
	}

	if run > 0 {
		current = models.StreakInfo{Type: runType, Count: run}
	}
	return current, maxWin, maxLoss
}

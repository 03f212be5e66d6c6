package analytics

import (
	"sort"
	"time"

	"trade-journal/internal/models"
)

const (
	dayKeyLayout   = "2006-01-02"
	monthKeyLayout = "2006-01"
)

// DailyPnL buckets realized PnL by calendar day. Only days with at least one
// closing event produce a point; points come back key-sorted ascending.
func DailyPnL(closings []models.ClosingEvent) []models.PnLPoint {
	return bucketPnL(closings, dayKeyLayout, "1/2")
}

// MonthlyPnL buckets realized PnL by calendar month, independently of the
// daily series rather than by resampling it.
func MonthlyPnL(closings []models.ClosingEvent) []models.PnLPoint {
	return bucketPnL(closings, monthKeyLayout, "Jan 2006")
}

func bucketPnL(closings []models.ClosingEvent, keyLayout, labelLayout string) []models.PnLPoint {
	buckets := make(map[string]float64)
	for _, c := range closings {
		buckets[c.Date.Format(keyLayout)] += c.RealizedPnL
	}

	points := make([]models.PnLPoint, 0, len(buckets))
	for key, pnl := range buckets {
		day, _ := time.Parse(keyLayout, key)
		points = append(points, models.PnLPoint{
			Key:   key,
			Label: day.Format(labelLayout),
			PnL:   pnl,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Key < points[j].Key })
	return points
}

// EquityCurve derives the cumulative curve from an already key-sorted PnL
// series: running sum, running peak, and drawdown against that peak. Drawdown
// is cumulative minus peak and therefore never positive; its percentage is 0
// until the first profit has been banked (peak <= 0 means no divisor).
func EquityCurve(points []models.PnLPoint) []models.EquityPoint {
	curve := make([]models.EquityPoint, 0, len(points))

	var cumulative, peak float64
	for _, p := range points {
		cumulative += p.PnL
		if cumulative > peak {
			peak = cumulative
		}
		drawdown := cumulative - peak

		var drawdownPct float64
		if peak > 0 {
			drawdownPct = drawdown / peak * 100
		}

		curve = append(curve, models.EquityPoint{
			Date:            parseBucketKey(p.Key),
			Key:             p.Key,
			Cumulative:      cumulative,
			Peak:            peak,
			Drawdown:        drawdown,
			DrawdownPercent: drawdownPct,
		})
	}
	return curve
}

// MaxDrawdown returns the most negative drawdown on the curve, with its
// percentage. Both are 0 for an empty or never-declining curve.
func MaxDrawdown(curve []models.EquityPoint) (amount, percent float64) {
	for _, p := range curve {
		if p.Drawdown < amount {
			amount = p.Drawdown
		}
		if p.DrawdownPercent < percent {
			percent = p.DrawdownPercent
		}
	}
	return amount, percent
}

// parseBucketKey accepts either a day key or a month key; month keys map to
// the first of the month.
func parseBucketKey(key string) time.Time {
	if len(key) == len(monthKeyLayout) {
		t, _ := time.Parse(monthKeyLayout, key)
		return t
	}
	t, _ := time.Parse(dayKeyLayout, key)
	return t
}

// Package analytics folds ledger output into the read models the dashboard
// renders: per-symbol/tag/strategy aggregates, PnL time series with drawdown,
// weekday and holding-period behavior, and headline insights. Everything here
// is a pure function of its inputs with deterministic output ordering.
package analytics

import (
	"sort"
	"strings"

	"trade-journal/internal/ledger"
	"trade-journal/internal/models"
)

// SymbolSummaries builds one summary per traded symbol. Valuation fields stay
// nil for symbols missing from prices so callers can render them as unpriced
// rather than worthless.
func SymbolSummaries(res *ledger.Result, prices map[string]float64, names map[string]string) []models.SymbolSummary {
	byClosings := make(map[string][]models.ClosingEvent)
	for _, c := range res.Closings {
		byClosings[c.Symbol] = append(byClosings[c.Symbol], c)
	}

	summaries := make([]models.SymbolSummary, 0, len(res.States))
	for sym, st := range res.States {
		s := models.SymbolSummary{
			Symbol:           sym,
			Name:             names[sym],
			BoughtQuantity:   st.BoughtQuantity,
			BoughtAmount:     st.BoughtAmount,
			SoldQuantity:     st.SoldQuantity,
			SoldAmount:       st.SoldAmount,
			PositionQuantity: st.Quantity,
			AvgCost:          st.AvgCost,
			RealizedPnL:      st.RealizedPnL,
		}

		for _, c := range byClosings[sym] {
			s.TradeCount++
			switch c.Result {
			case models.ResultWin:
				s.WinCount++
			case models.ResultLoss:
				s.LossCount++
			default:
				s.EvenCount++
			}
		}
		s.WinRate = winRate(s.WinCount, s.TradeCount)

		if price, ok := prices[sym]; ok {
			p := price
			s.CurrentPrice = &p
			valuation := st.Quantity * price
			s.CurrentValuation = &valuation
			unrealized := st.Quantity * (price - st.AvgCost)
			s.UnrealizedPnL = &unrealized
		}

		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Symbol < summaries[j].Symbol })
	return summaries
}

// TagPerformance aggregates closing events per tag. An event with several
// tags counts toward each of them, so tag totals are not expected to sum to
// the overall total.
func TagPerformance(closings []models.ClosingEvent) []models.TagPerf {
	byTag := make(map[string]*models.TagPerf)
	for _, c := range closings {
		for _, raw := range c.Tags {
			tag := strings.TrimSpace(raw)
			if tag == "" {
				continue
			}
			perf, ok := byTag[tag]
			if !ok {
				perf = &models.TagPerf{Tag: tag}
				byTag[tag] = perf
			}
			perf.TradeCount++
			perf.RealizedPnL += c.RealizedPnL
			switch c.Result {
			case models.ResultWin:
				perf.WinCount++
			case models.ResultLoss:
				perf.LossCount++
			default:
				perf.EvenCount++
			}
		}
	}

	perfs := make([]models.TagPerf, 0, len(byTag))
	for _, perf := range byTag {
		perf.WinRate = winRate(perf.WinCount, perf.TradeCount)
		perf.AvgPnL = avg(perf.RealizedPnL, perf.TradeCount)
		perfs = append(perfs, *perf)
	}
	sort.Slice(perfs, func(i, j int) bool { return perfs[i].Tag < perfs[j].Tag })
	return perfs
}

// StrategyPerformance aggregates closing events per strategy id.
func StrategyPerformance(closings []models.ClosingEvent) []models.StrategyPerf {
	byStrategy := make(map[string]*models.StrategyPerf)
	for _, c := range closings {
		strategy := strings.TrimSpace(c.Strategy)
		if strategy == "" {
			continue
		}
		perf, ok := byStrategy[strategy]
		if !ok {
			perf = &models.StrategyPerf{Strategy: strategy}
			byStrategy[strategy] = perf
		}
		perf.TradeCount++
		perf.RealizedPnL += c.RealizedPnL
		switch c.Result {
		case models.ResultWin:
			perf.WinCount++
		case models.ResultLoss:
			perf.LossCount++
		default:
			perf.EvenCount++
		}
		if c.RealizedPnL > perf.MaxWin {
			perf.MaxWin = c.RealizedPnL
		}
		if c.RealizedPnL < perf.MaxLoss {
			perf.MaxLoss = c.RealizedPnL
		}
	}

	perfs := make([]models.StrategyPerf, 0, len(byStrategy))
	for _, perf := range byStrategy {
		perf.WinRate = winRate(perf.WinCount, perf.TradeCount)
		perf.AvgPnL = avg(perf.RealizedPnL, perf.TradeCount)
		perfs = append(perfs, *perf)
	}
	sort.Slice(perfs, func(i, j int) bool { return perfs[i].Strategy < perfs[j].Strategy })
	return perfs
}

// Overall computes the headline aggregate across all closing events. The
// unrealized total only counts symbols that carry a supplied price.
func Overall(closings []models.ClosingEvent, summaries []models.SymbolSummary) models.OverallStats {
	var stats models.OverallStats
	for _, c := range closings {
		stats.TradeCount++
		stats.RealizedPnL += c.RealizedPnL
		switch c.Result {
		case models.ResultWin:
			stats.WinCount++
			stats.ProfitSum += c.RealizedPnL
		case models.ResultLoss:
			stats.LossCount++
			stats.LossSum += c.RealizedPnL
		default:
			stats.EvenCount++
		}
		if c.RealizedPnL > stats.MaxWin {
			stats.MaxWin = c.RealizedPnL
		}
		if c.RealizedPnL < stats.MaxLoss {
			stats.MaxLoss = c.RealizedPnL
		}
	}

	stats.WinRate = winRate(stats.WinCount, stats.TradeCount)
	stats.AvgPnL = avg(stats.RealizedPnL, stats.TradeCount)
	if stats.LossSum < 0 {
		stats.ProfitFactor = stats.ProfitSum / -stats.LossSum
	}

	for _, s := range summaries {
		if s.UnrealizedPnL != nil {
			stats.UnrealizedPnL += *s.UnrealizedPnL
		}
	}
	return stats
}

// winRate returns wins/total as a percentage, 0 when there are no trades.
func winRate(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total) * 100
}

func avg(total float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// Package ledger reconstructs per-symbol position state from the flat trade
// log. Every analytics run replays the full list from scratch under a single
// weighted-average-cost convention; nothing is persisted between runs, which
// keeps the output a pure function of the input list.
package ledger

import (
	"math"
	"sort"
	"time"

	"trade-journal/internal/errors"
	"trade-journal/internal/models"
)

// Step is the outcome of applying one trade: the position state immediately
// after the trade, and for SELL trades the closing event it realized.
type Step struct {
	Trade   models.Trade
	State   models.PositionState
	Closing *models.ClosingEvent
}

// SkippedTrade pairs a rejected trade with the reason it was rejected.
type SkippedTrade struct {
	Trade models.Trade
	Err   error
}

// Result is the full replay output. Closings are in replay order across all
// symbols; States holds the terminal position per symbol.
type Result struct {
	Steps    []Step
	Closings []models.ClosingEvent
	States   map[string]models.PositionState
	Skipped  []SkippedTrade
	// Oversold lists symbols where a sell exceeded the held quantity at any
	// point. A data-quality signal for the caller, never a failure.
	Oversold []string
}

// RealizedPnL sums realized PnL across all closing events.
func (r *Result) RealizedPnL() float64 {
	var total float64
	for _, c := range r.Closings {
		total += c.RealizedPnL
	}
	return total
}

// OpenPositions returns the terminal states that still hold quantity,
// sorted by symbol for deterministic output.
func (r *Result) OpenPositions() []models.PositionState {
	var open []models.PositionState
	for _, st := range r.States {
		if !st.Flat() {
			open = append(open, st)
		}
	}
	sort.Slice(open, func(i, j int) bool { return open[i].Symbol < open[j].Symbol })
	return open
}

// Replay validates and replays the whole trade list. Trades are processed per
// symbol in date-ascending order; trades sharing a date keep their input-slice
// order. The trade list has no canonical intra-day order, so same-day mixed
// buy/sell results depend on input order — callers that care must order their
// input, and the tie-break is pinned by tests rather than left implicit.
//
// Malformed trades are collected in Skipped and do not abort the run.
func Replay(trades []models.Trade) *Result {
	res := &Result{States: make(map[string]models.PositionState)}

	valid := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if err := Validate(t); err != nil {
			res.Skipped = append(res.Skipped, SkippedTrade{Trade: t, Err: err})
			continue
		}
		valid = append(valid, t)
	}

	bySymbol := groupBySymbol(valid)

	symbols := make([]string, 0, len(bySymbol))
	for sym := range bySymbol {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	oversold := make(map[string]bool)
	for _, sym := range symbols {
		steps := replaySymbol(sym, bySymbol[sym])
		for _, step := range steps {
			res.Steps = append(res.Steps, step)
			if step.Closing != nil {
				res.Closings = append(res.Closings, *step.Closing)
			}
			if step.State.Oversold {
				oversold[sym] = true
			}
		}
		if len(steps) > 0 {
			res.States[sym] = steps[len(steps)-1].State
		}
	}

	for sym := range oversold {
		res.Oversold = append(res.Oversold, sym)
	}
	sort.Strings(res.Oversold)

	// Closings across symbols in chronological order; same-day events keep
	// symbol order, which is itself deterministic.
	sort.SliceStable(res.Closings, func(i, j int) bool {
		return res.Closings[i].Date.Before(res.Closings[j].Date)
	})

	return res
}

// Validate rejects trades the ledger cannot account for: non-positive
// quantity, non-finite or negative price, or a missing date.
func Validate(t models.Trade) error {
	if t.Quantity <= 0 || math.IsNaN(t.Quantity) || math.IsInf(t.Quantity, 0) {
		return errors.NewTradeError(t.ID, t.Symbol, "quantity must be positive")
	}
	if math.IsNaN(t.Price) || math.IsInf(t.Price, 0) {
		return errors.NewTradeError(t.ID, t.Symbol, "price must be finite")
	}
	if t.Price < 0 {
		return errors.NewTradeError(t.ID, t.Symbol, "price must not be negative")
	}
	if t.Date.IsZero() {
		return errors.NewTradeError(t.ID, t.Symbol, "date missing")
	}
	if t.Side != models.SideBuy && t.Side != models.SideSell {
		return errors.NewTradeError(t.ID, t.Symbol, "side must be BUY or SELL")
	}
	return nil
}

// replaySymbol applies one symbol's trades in order and emits a step per
// trade. Average cost changes only on buys; a sell leaves it untouched.
func replaySymbol(symbol string, trades []models.Trade) []Step {
	sorted := make([]models.Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Day().Before(sorted[j].Day())
	})

	state := models.PositionState{Symbol: symbol}
	steps := make([]Step, 0, len(sorted))

	for _, t := range sorted {
		var closing *models.ClosingEvent

		switch t.Side {
		case models.SideBuy:
			applyBuy(&state, t)
		case models.SideSell:
			c := applySell(&state, t)
			closing = &c
		}

		steps = append(steps, Step{Trade: t, State: state, Closing: closing})
	}

	return steps
}

func applyBuy(state *models.PositionState, t models.Trade) {
	amount := t.Quantity * t.Price

	// A buy into a flat or short position starts a fresh basis; the blended
	// average only applies while adding to an existing long.
	if state.Quantity <= 0 {
		state.AvgCost = t.Price
		state.OpenedAt = t.Day()
	} else {
		total := state.Quantity + t.Quantity
		state.AvgCost = (state.Quantity*state.AvgCost + amount) / total
	}

	state.Quantity += t.Quantity
	state.BoughtQuantity += t.Quantity
	state.BoughtAmount += amount
}

func applySell(state *models.PositionState, t models.Trade) models.ClosingEvent {
	basis := state.AvgCost
	realized := t.Quantity * (t.Price - basis)

	state.Quantity -= t.Quantity
	state.SoldQuantity += t.Quantity
	state.SoldAmount += t.Quantity * t.Price
	state.RealizedPnL += realized

	if state.Quantity < 0 {
		state.Oversold = true
	}
	if state.Quantity == 0 {
		state.AvgCost = 0
	}

	return models.ClosingEvent{
		TradeID:     t.ID,
		Symbol:      t.Symbol,
		Date:        t.Day(),
		Quantity:    t.Quantity,
		SellPrice:   t.Price,
		CostBasis:   basis,
		RealizedPnL: realized,
		Result:      Classify(realized),
		HoldingDays: holdingDays(state.OpenedAt, t.Day()),
		Tags:        t.Tags,
		Strategy:    t.Strategy,
	}
}

// Classify maps a realized amount to its win/loss/even classification.
func Classify(realized float64) models.Classification {
	switch {
	case realized > 0:
		return models.ResultWin
	case realized < 0:
		return models.ResultLoss
	default:
		return models.ResultEven
	}
}

// holdingDays approximates how long the closed quantity was held. Average cost
// accounting discards per-lot entry dates, so the span runs from the date the
// position was last opened from flat.
func holdingDays(openedAt, soldAt time.Time) int {
	if openedAt.IsZero() || soldAt.Before(openedAt) {
		return 0
	}
	return int(soldAt.Sub(openedAt).Hours() / 24)
}

func groupBySymbol(trades []models.Trade) map[string][]models.Trade {
	grouped := make(map[string][]models.Trade)
	for _, t := range trades {
		grouped[t.Symbol] = append(grouped[t.Symbol], t)
	}
	return grouped
}

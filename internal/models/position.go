package models

import "time"

// PositionState is the running state of one symbol at a point in the replay.
// Quantity is signed; a sell larger than the held quantity drives it negative
// and sets Oversold instead of failing the run.
type PositionState struct {
	Symbol         string
	Quantity       float64
	AvgCost        float64 // zero when Quantity is zero
	BoughtQuantity float64
	BoughtAmount   float64
	SoldQuantity   float64
	SoldAmount     float64
	RealizedPnL    float64
	OpenedAt       time.Time // date the position was last opened from flat
	Oversold       bool
}

// Flat reports whether the position holds no quantity.
func (p PositionState) Flat() bool {
	return p.Quantity == 0
}

// ClosingEvent is the realization produced by a single SELL trade: the PnL of
// that sell against the average cost basis immediately before it, and its
// win/loss/even classification. Closing events are the unit that feeds win
// counts, streaks, weekday stats and the equity curve.
type ClosingEvent struct {
	TradeID     string
	Symbol      string
	Date        time.Time
	Quantity    float64
	SellPrice   float64
	CostBasis   float64
	RealizedPnL float64
	Result      Classification
	HoldingDays int
	Tags        []string
	Strategy    string
}

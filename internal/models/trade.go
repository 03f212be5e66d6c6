package models

import "time"

// TradeSide is the direction of a trade.
type TradeSide string

const (
	SideBuy  TradeSide = "BUY"
	SideSell TradeSide = "SELL"
)

// Classification is the win/loss outcome of a closing trade.
type Classification string

const (
	ResultWin  Classification = "WIN"
	ResultLoss Classification = "LOSS"
	ResultEven Classification = "EVEN"
	ResultNone Classification = "NONE"
)

// Trade is a single immutable journal record. The engine never mutates a
// Trade; every analytics run re-derives its output from the full trade list.
type Trade struct {
	ID       string
	Date     time.Time // calendar day, time component ignored
	Symbol   string
	Name     string // optional display name
	Side     TradeSide
	Price    float64
	Quantity float64
	Tags     []string
	Strategy string
	Emotion  string
	Memo     string
}

// Day returns the trade date truncated to midnight UTC. All bucketing keys
// are derived from this so that wall-clock time never leaks into results.
func (t Trade) Day() time.Time {
	return time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey returns the YYYY-MM-DD bucket key for the trade.
func (t Trade) DayKey() string {
	return t.Day().Format("2006-01-02")
}

// MonthKey returns the YYYY-MM bucket key for the trade.
func (t Trade) MonthKey() string {
	return t.Day().Format("2006-01")
}

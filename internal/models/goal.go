package models

// MonthlyGoal is a user-authored target for one calendar month.
// Month is a YYYY-MM key.
type MonthlyGoal struct {
	Month         string
	TargetPnL     float64
	TargetTrades  int
	TargetWinRate float64
}

// MonthlyProgress joins a month's goal against its actuals. Progress values
// are percentages; a zero or absent target yields 0, never a division error.
type MonthlyProgress struct {
	Month           string
	Goal            *MonthlyGoal
	ActualPnL       float64
	ActualTrades    int
	ActualWinRate   float64
	PnLProgress     float64
	TradesProgress  float64
	WinRateProgress float64
}

// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"trade-journal/internal/models"
)

// DataStore is the single load/save capability the rest of the application
// depends on. The analytics engine never touches it; it only sees the values
// loaded from here.
type DataStore interface {
	// Trades
	SaveTrade(ctx context.Context, trade *models.Trade) error
	GetTrades(ctx context.Context, filter TradeFilter) ([]models.Trade, error)
	DeleteTrade(ctx context.Context, id string) error

	// User-editable settings
	SaveRiskSettings(ctx context.Context, settings models.RiskSettings) error
	GetRiskSettings(ctx context.Context) (models.RiskSettings, error)
	SaveBalance(ctx context.Context, balance models.AccountBalance) error
	GetBalance(ctx context.Context) (models.AccountBalance, error)

	// Monthly goals
	SaveGoal(ctx context.Context, goal models.MonthlyGoal) error
	GetGoals(ctx context.Context) ([]models.MonthlyGoal, error)
	DeleteGoal(ctx context.Context, month string) error

	// Lifecycle
	Close() error
}

// TradeFilter represents filters for querying trades.
type TradeFilter struct {
	Symbol    string
	StartDate time.Time
	EndDate   time.Time
	Side      string
	Tag       string
	Strategy  string
	Limit     int
}

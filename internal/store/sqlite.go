// Package store provides data persistence implementations.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"trade-journal/internal/errors"
	"trade-journal/internal/models"
)

// SQLiteStore implements DataStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based data store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Raw journal trades; the engine's single source of truth
	CREATE TABLE IF NOT EXISTS trades (
		id TEXT PRIMARY KEY,
		trade_date DATETIME NOT NULL,
		symbol TEXT NOT NULL,
		name TEXT,
		side TEXT NOT NULL,
		price REAL NOT NULL,
		quantity REAL NOT NULL,
		tags TEXT,
		strategy TEXT,
		emotion TEXT,
		memo TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_trades_symbol ON trades(symbol);
	CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(trade_date);

	-- Single-row user settings
	CREATE TABLE IF NOT EXISTS risk_settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		max_position_percent REAL NOT NULL,
		max_daily_loss_percent REAL NOT NULL,
		max_daily_loss_amount REAL NOT NULL,
		alert_enabled INTEGER NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS account_balance (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		amount REAL NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Monthly goals keyed by YYYY-MM
	CREATE TABLE IF NOT EXISTS monthly_goals (
		month TEXT PRIMARY KEY,
		target_pnl REAL NOT NULL,
		target_trades INTEGER NOT NULL,
		target_win_rate REAL NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveTrade inserts or replaces a trade. A missing ID gets a fresh UUID.
func (s *SQLiteStore) SaveTrade(ctx context.Context, trade *models.Trade) error {
	if trade.ID == "" {
		trade.ID = uuid.NewString()
	}

	tags, err := json.Marshal(trade.Tags)
	if err != nil {
		return errors.NewStoreError("save_trade", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO trades
		(id, trade_date, symbol, name, side, price, quantity, tags, strategy, emotion, memo)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		trade.ID, trade.Day(), trade.Symbol, trade.Name, string(trade.Side),
		trade.Price, trade.Quantity, string(tags), trade.Strategy, trade.Emotion, trade.Memo,
	)
	if err != nil {
		return errors.NewStoreError("save_trade", err)
	}
	return nil
}

// GetTrades returns trades matching the filter, oldest first. Insertion order
// within a day is preserved via rowid, which is what the ledger's intra-day
// tie-break relies on.
func (s *SQLiteStore) GetTrades(ctx context.Context, filter TradeFilter) ([]models.Trade, error) {
	query := `SELECT id, trade_date, symbol, name, side, price, quantity, tags, strategy, emotion, memo
		FROM trades WHERE 1=1`
	var args []interface{}

	if filter.Symbol != "" {
		query += " AND symbol = ?"
		args = append(args, filter.Symbol)
	}
	if filter.Side != "" {
		query += " AND side = ?"
		args = append(args, filter.Side)
	}
	if filter.Strategy != "" {
		query += " AND strategy = ?"
		args = append(args, filter.Strategy)
	}
	if !filter.StartDate.IsZero() {
		query += " AND trade_date >= ?"
		args = append(args, filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		query += " AND trade_date < ?"
		args = append(args, filter.EndDate)
	}

	query += " ORDER BY trade_date ASC, rowid ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewStoreError("get_trades", err)
	}
	defer rows.Close()

	var trades []models.Trade
	for rows.Next() {
		var t models.Trade
		var side, tags string
		var name, strategy, emotion, memo sql.NullString
		if err := rows.Scan(&t.ID, &t.Date, &t.Symbol, &name, &side, &t.Price,
			&t.Quantity, &tags, &strategy, &emotion, &memo); err != nil {
			return nil, errors.NewStoreError("get_trades", err)
		}
		t.Side = models.TradeSide(side)
		t.Name = name.String
		t.Strategy = strategy.String
		t.Emotion = emotion.String
		t.Memo = memo.String
		if tags != "" {
			if err := json.Unmarshal([]byte(tags), &t.Tags); err != nil {
				return nil, errors.NewStoreError("get_trades", err)
			}
		}

		// Tag filtering happens here; tags live in a JSON column.
		if filter.Tag != "" && !hasTag(t.Tags, filter.Tag) {
			continue
		}
		trades = append(trades, t)
	}
	return trades, rows.Err()
}

// DeleteTrade removes a trade by id.
func (s *SQLiteStore) DeleteTrade(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM trades WHERE id = ?", id)
	if err != nil {
		return errors.NewStoreError("delete_trade", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return errors.ErrTradeNotFound
	}
	return nil
}

// SaveRiskSettings upserts the single settings row.
func (s *SQLiteStore) SaveRiskSettings(ctx context.Context, settings models.RiskSettings) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO risk_settings
		(id, max_position_percent, max_daily_loss_percent, max_daily_loss_amount, alert_enabled, updated_at)
		VALUES (1, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		settings.MaxPositionPercent, settings.MaxDailyLossPercent,
		settings.MaxDailyLossAmount, boolToInt(settings.AlertEnabled),
	)
	if err != nil {
		return errors.NewStoreError("save_risk_settings", err)
	}
	return nil
}

// GetRiskSettings loads the settings row; ErrSettingsNotFound when unset.
func (s *SQLiteStore) GetRiskSettings(ctx context.Context) (models.RiskSettings, error) {
	var settings models.RiskSettings
	var alertEnabled int
	err := s.db.QueryRowContext(ctx, `
		SELECT max_position_percent, max_daily_loss_percent, max_daily_loss_amount, alert_enabled
		FROM risk_settings WHERE id = 1`).
		Scan(&settings.MaxPositionPercent, &settings.MaxDailyLossPercent,
			&settings.MaxDailyLossAmount, &alertEnabled)
	if err == sql.ErrNoRows {
		return settings, errors.ErrSettingsNotFound
	}
	if err != nil {
		return settings, errors.NewStoreError("get_risk_settings", err)
	}
	settings.AlertEnabled = alertEnabled != 0
	return settings, nil
}

// SaveBalance upserts the account balance row.
func (s *SQLiteStore) SaveBalance(ctx context.Context, balance models.AccountBalance) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO account_balance (id, amount, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)`, balance.Amount)
	if err != nil {
		return errors.NewStoreError("save_balance", err)
	}
	return nil
}

// GetBalance loads the account balance; ErrSettingsNotFound when unset.
func (s *SQLiteStore) GetBalance(ctx context.Context) (models.AccountBalance, error) {
	var balance models.AccountBalance
	err := s.db.QueryRowContext(ctx,
		"SELECT amount FROM account_balance WHERE id = 1").Scan(&balance.Amount)
	if err == sql.ErrNoRows {
		return balance, errors.ErrSettingsNotFound
	}
	if err != nil {
		return balance, errors.NewStoreError("get_balance", err)
	}
	return balance, nil
}

// SaveGoal upserts one month's goal.
func (s *SQLiteStore) SaveGoal(ctx context.Context, goal models.MonthlyGoal) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO monthly_goals
		(month, target_pnl, target_trades, target_win_rate, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		goal.Month, goal.TargetPnL, goal.TargetTrades, goal.TargetWinRate,
	)
	if err != nil {
		return errors.NewStoreError("save_goal", err)
	}
	return nil
}

// GetGoals lists all goals, oldest month first.
func (s *SQLiteStore) GetGoals(ctx context.Context) ([]models.MonthlyGoal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT month, target_pnl, target_trades, target_win_rate
		FROM monthly_goals ORDER BY month ASC`)
	if err != nil {
		return nil, errors.NewStoreError("get_goals", err)
	}
	defer rows.Close()

	var goals []models.MonthlyGoal
	for rows.Next() {
		var g models.MonthlyGoal
		if err := rows.Scan(&g.Month, &g.TargetPnL, &g.TargetTrades, &g.TargetWinRate); err != nil {
			return nil, errors.NewStoreError("get_goals", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// DeleteGoal removes one month's goal.
func (s *SQLiteStore) DeleteGoal(ctx context.Context, month string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM monthly_goals WHERE month = ?", month)
	if err != nil {
		return errors.NewStoreError("delete_goal", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return errors.ErrGoalNotFound
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(strings.TrimSpace(t), strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

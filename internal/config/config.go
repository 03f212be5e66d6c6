// Package config provides configuration management for the journal
// application.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Risk    RiskConfig    `mapstructure:"risk"`
	Prices  PricesConfig  `mapstructure:"prices"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// RiskConfig holds default risk limits and the concentration banding policy.
// The band fractions are relative to max_position_percent; they are a
// product policy, kept here so they can change without a rebuild.
type RiskConfig struct {
	MaxPositionPercent  float64 `mapstructure:"max_position_percent"`
	MaxDailyLossPercent float64 `mapstructure:"max_daily_loss_percent"`
	MaxDailyLossAmount  float64 `mapstructure:"max_daily_loss_amount"`
	AlertEnabled        bool    `mapstructure:"alert_enabled"`
	BandMedium          float64 `mapstructure:"band_medium"`
	BandHigh            float64 `mapstructure:"band_high"`
	BandCritical        float64 `mapstructure:"band_critical"`
}

// PricesConfig holds market-data configuration.
type PricesConfig struct {
	Provider string `mapstructure:"provider"` // "yahoo", "none"
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/trade-journal"
	}
	return filepath.Join(home, ".config", "trade-journal")
}

// DefaultDBPath returns the default SQLite database path.
func DefaultDBPath() string {
	return filepath.Join(DefaultConfigDir(), "journal.db")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetDefault("risk.max_position_percent", 20.0)
	v.SetDefault("risk.max_daily_loss_percent", 3.0)
	v.SetDefault("risk.max_daily_loss_amount", 0.0)
	v.SetDefault("risk.alert_enabled", true)
	v.SetDefault("risk.band_medium", 0.5)
	v.SetDefault("risk.band_high", 0.8)
	v.SetDefault("risk.band_critical", 1.0)
	v.SetDefault("prices.provider", "yahoo")
	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.date_format", "2006-01-02")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
		// Missing file is fine; defaults apply.
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Risk.MaxPositionPercent < 0 {
		return fmt.Errorf("risk.max_position_percent must not be negative")
	}
	if c.Risk.MaxDailyLossPercent < 0 {
		return fmt.Errorf("risk.max_daily_loss_percent must not be negative")
	}
	if c.Risk.MaxDailyLossAmount < 0 {
		return fmt.Errorf("risk.max_daily_loss_amount must not be negative")
	}
	if !(c.Risk.BandMedium < c.Risk.BandHigh && c.Risk.BandHigh < c.Risk.BandCritical) {
		return fmt.Errorf("risk bands must be strictly increasing")
	}
	return nil
}

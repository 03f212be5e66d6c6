package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Trade Journal Configuration

[risk]
# Default maximum position size as percentage of account, used until
# settings are saved with "journal risk set"
max_position_percent = 20.0
# Daily loss alert threshold as percentage of account (0 disables)
max_daily_loss_percent = 3.0
# Daily loss alert threshold as an absolute amount (0 disables)
max_daily_loss_amount = 0.0
# Enable the daily loss alert
alert_enabled = true
# Concentration banding, as fractions of max_position_percent
band_medium = 0.5
band_high = 0.8
band_critical = 1.0

[prices]
# Market data provider: "yahoo" or "none"
provider = "yahoo"

[ui]
# Enable colored output
color_enabled = true
# Date format
date_format = "2006-01-02"

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log to stderr
console = true
# Log to the rotating file under the config directory
file = true
`

// WriteTemplate writes a commented config.toml into configDir unless one
// already exists. Returns the path it wrote, or "" when the file was already
// there.
func WriteTemplate(configDir string) (string, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return "", nil
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return "", fmt.Errorf("writing config template: %w", err)
	}
	return path, nil
}

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds runtime configuration for the board.
type Config struct {
	// DBPath is the SQLite file backing the order sheet.
	DBPath string
	// PollInterval is the synchronizer refresh period.
	PollInterval time.Duration
	// LogUseCases enables structured logging of service operations.
	LogUseCases bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		PollInterval: 3 * time.Second,
		LogUseCases:  false,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset values. The default DB path is
// ~/.orderboard/orders.db.
func Load() (Config, error) {
	cfg := DefaultConfig()

	cfg.DBPath = os.Getenv("ORDERBOARD_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, err
		}
		cfg.DBPath = filepath.Join(home, ".orderboard", "orders.db")
	}

	if v := os.Getenv("ORDERBOARD_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.PollInterval = d
		}
	}
	if v := os.Getenv("ORDERBOARD_LOG_USECASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	return cfg, nil
}

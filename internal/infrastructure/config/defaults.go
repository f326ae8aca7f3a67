package config

import (
	"os"
	"path/filepath"
	"time"
)

// Game defaults
const (
	DefaultSalaryCap   int64 = 136_000_000
	DefaultBudgetLimit int64 = 150_000_000
	DefaultPlayoffWins       = 46
	DefaultTotalRounds       = 4
	DefaultSaveSlot          = "nba_tax_game_save"
)

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = filepath.Join(dataDir(), "taxgame.db")
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "taxgame"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "taxgame"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 5
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 2
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Game defaults
	if cfg.Game.SalaryCap == 0 {
		cfg.Game.SalaryCap = DefaultSalaryCap
	}
	if cfg.Game.BudgetLimit == 0 {
		cfg.Game.BudgetLimit = DefaultBudgetLimit
	}
	if cfg.Game.PlayoffWins == 0 {
		cfg.Game.PlayoffWins = DefaultPlayoffWins
	}
	if cfg.Game.TotalRounds == 0 {
		cfg.Game.TotalRounds = DefaultTotalRounds
	}
	if cfg.Game.SaveSlot == "" {
		cfg.Game.SaveSlot = DefaultSaveSlot
	}
	if cfg.Game.LockFile == "" {
		cfg.Game.LockFile = filepath.Join(dataDir(), "taxgame.lock")
	}
}

// dataDir is ~/.taxgame, or the working directory when there is no home
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".taxgame")
}

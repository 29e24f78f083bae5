// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the application configuration from environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DataDir        string `env:"ONEFOURTY_DATA_DIR" envDefault:"./data"`
	StorageBackend string `env:"ONEFOURTY_STORAGE_BACKEND" envDefault:"file"` // "file" or "memory"
	Env            string `env:"ONEFOURTY_ENV" envDefault:"development"`
	LogLevel       string `env:"ONEFOURTY_LOG_LEVEL" envDefault:"info"`

	// Seeding configuration. DoSeed loads the demo fixtures on startup;
	// SeedOnce restricts that to collections that are still empty, so
	// admin edits survive restarts.
	DoSeed   bool `env:"ONEFOURTY_DO_SEED" envDefault:"true"`
	SeedOnce bool `env:"ONEFOURTY_SEED_ONCE" envDefault:"false"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	switch cfg.StorageBackend {
	case "file", "memory":
	default:
		return nil, fmt.Errorf("ONEFOURTY_STORAGE_BACKEND must be \"file\" or \"memory\", got %q",
			cfg.StorageBackend)
	}

	return cfg, nil
}

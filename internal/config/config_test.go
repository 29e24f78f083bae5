// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"os"
	"testing"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set %s: %v", key, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DataDir != "./data" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "./data")
	}
	if cfg.StorageBackend != "file" {
		t.Errorf("StorageBackend = %q, want %q", cfg.StorageBackend, "file")
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if !cfg.DoSeed {
		t.Error("DoSeed = false, want true")
	}
	if cfg.SeedOnce {
		t.Error("SeedOnce = true, want false")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	setEnv(t, "ONEFOURTY_DATA_DIR", "/custom/data")
	setEnv(t, "ONEFOURTY_STORAGE_BACKEND", "memory")
	setEnv(t, "ONEFOURTY_ENV", "production")
	setEnv(t, "ONEFOURTY_LOG_LEVEL", "debug")
	setEnv(t, "ONEFOURTY_DO_SEED", "false")
	setEnv(t, "ONEFOURTY_SEED_ONCE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DataDir != "/custom/data" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "/custom/data")
	}
	if cfg.StorageBackend != "memory" {
		t.Errorf("StorageBackend = %q, want %q", cfg.StorageBackend, "memory")
	}
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true in production")
	}
	if cfg.DoSeed {
		t.Error("DoSeed = true, want false")
	}
	if !cfg.SeedOnce {
		t.Error("SeedOnce = false, want true")
	}
}

func TestLoad_InvalidBackend(t *testing.T) {
	os.Clearenv()
	setEnv(t, "ONEFOURTY_STORAGE_BACKEND", "redis")

	if _, err := Load(); err == nil {
		t.Error("Load() accepted an unknown storage backend")
	}
}

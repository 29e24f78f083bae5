// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import "fmt"

// Backend type names accepted by the factory.
const (
	TypeFile   = "file"
	TypeMemory = "memory"
)

// Config holds configuration for backend creation.
type Config struct {
	// Type is the backend type: "file" or "memory".
	Type string

	// DataDir is the directory holding record files (file type only).
	DataDir string
}

// DefaultConfig returns the default backend configuration.
func DefaultConfig() Config {
	return Config{
		Type:    TypeFile,
		DataDir: "./data",
	}
}

// New creates a backend based on the provided configuration.
func New(cfg Config) (Backend, error) {
	switch cfg.Type {
	case TypeMemory:
		return NewMemoryBackend(), nil
	case TypeFile, "":
		dir := cfg.DataDir
		if dir == "" {
			dir = DefaultConfig().DataDir
		}
		return NewFileBackend(dir)
	default:
		return nil, fmt.Errorf("unknown storage backend type %q", cfg.Type)
	}
}

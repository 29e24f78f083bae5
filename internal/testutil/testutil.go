// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared test helpers.
package testutil

import (
	"log/slog"
	"os"
	"testing"

	"github.com/onefourty/site-go/internal/storage"
	"github.com/onefourty/site-go/internal/store"
)

// TestLogger creates a silent test logger that only outputs warnings and errors.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// TestStore creates a store over an in-memory backend.
func TestStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	return store.New(storage.NewMemoryBackend(), opts...)
}

// TestFileStore creates a store over a file backend in a temp directory and
// returns the store with its data directory.
func TestFileStore(t *testing.T, opts ...store.Option) (*store.Store, string) {
	t.Helper()

	dir := t.TempDir()
	backend, err := storage.NewFileBackend(dir)
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	t.Cleanup(func() { _ = backend.Close() })

	return store.New(backend, opts...), dir
}

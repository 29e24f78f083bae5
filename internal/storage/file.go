// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
)

// FileBackend stores each record as a JSON file in a data directory.
// Writes go through a temp file and rename so a crash mid-write never
// leaves a truncated record behind.
type FileBackend struct {
	dir    string
	mu     sync.Mutex
	closed atomic.Bool
}

// NewFileBackend creates a file backend rooted at dir, creating the
// directory if needed.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

// path maps a record name to its file path.
func (f *FileBackend) path(name string) string {
	return filepath.Join(f.dir, name+".json")
}

// Get retrieves a record.
func (f *FileBackend) Get(name string) ([]byte, error) {
	if f.closed.Load() {
		return nil, ErrClosed
	}

	data, err := os.ReadFile(f.path(name))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading record %q: %w", name, err)
	}
	return data, nil
}

// Set writes a record atomically.
func (f *FileBackend) Set(name string, data []byte) error {
	if f.closed.Load() {
		return ErrClosed
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := os.CreateTemp(f.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp record: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing record %q: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing record %q: %w", name, err)
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("setting record mode: %w", err)
	}
	if err := os.Rename(tmpPath, f.path(name)); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("committing record %q: %w", name, err)
	}
	return nil
}

// Delete removes a record. Missing records are ignored.
func (f *FileBackend) Delete(name string) error {
	if f.closed.Load() {
		return ErrClosed
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting record %q: %w", name, err)
	}
	return nil
}

// Close marks the backend as closed. Further operations return ErrClosed.
func (f *FileBackend) Close() error {
	f.closed.Store(true)
	return nil
}

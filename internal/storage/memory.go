// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import (
	"sync"
	"sync/atomic"
)

// MemoryBackend is a thread-safe in-memory Backend implementation. Records
// do not survive process restart; it is used in tests and for ephemeral
// runs where no data directory is configured.
type MemoryBackend struct {
	mu      sync.RWMutex
	records map[string][]byte
	closed  atomic.Bool
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{records: make(map[string][]byte)}
}

// Get retrieves a record.
func (m *MemoryBackend) Get(name string) ([]byte, error) {
	if m.closed.Load() {
		return nil, ErrClosed
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.records[name]
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy to prevent mutation
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Set stores a record, replacing any previous payload.
func (m *MemoryBackend) Set(name string, data []byte) error {
	if m.closed.Load() {
		return ErrClosed
	}

	stored := make([]byte, len(data))
	copy(stored, data)

	m.mu.Lock()
	m.records[name] = stored
	m.mu.Unlock()
	return nil
}

// Delete removes a record. Missing records are ignored.
func (m *MemoryBackend) Delete(name string) error {
	if m.closed.Load() {
		return ErrClosed
	}

	m.mu.Lock()
	delete(m.records, name)
	m.mu.Unlock()
	return nil
}

// Close marks the backend as closed. Further operations return ErrClosed.
func (m *MemoryBackend) Close() error {
	m.closed.Store(true)
	return nil
}

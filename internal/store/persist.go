// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/onefourty/site-go/internal/storage"
)

const (
	// RecordName is the name of the persisted state record.
	RecordName = "repair-shop-storage"

	// SchemaVersion tags the persisted payload. A stored record with a
	// different version is discarded and the store starts from defaults.
	SchemaVersion = 1
)

// envelope is the wire layout of the persisted record: the snapshot
// wrapped with its schema version.
type envelope struct {
	State   Snapshot `json:"state"`
	Version int      `json:"version"`
}

// save writes the snapshot to the backend under RecordName.
func (s *Store) save(snap Snapshot) error {
	if s.backend == nil {
		return nil
	}

	data, err := json.Marshal(envelope{State: snap, Version: SchemaVersion})
	if err != nil {
		return fmt.Errorf("encoding state record: %w", err)
	}
	if err := s.backend.Set(RecordName, data); err != nil {
		return fmt.Errorf("writing state record: %w", err)
	}
	return nil
}

// load rehydrates the store from the backend. Missing records, decode
// failures and version mismatches all fall back to the defaults already
// in place; none of them is fatal.
func (s *Store) load() {
	if s.backend == nil {
		return
	}

	data, err := s.backend.Get(RecordName)
	if err == storage.ErrNotFound {
		return
	}
	if err != nil {
		slog.Warn("reading persisted state, starting from defaults", "error", err)
		return
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		slog.Warn("decoding persisted state, starting from defaults", "error", err)
		return
	}
	if env.Version != SchemaVersion {
		slog.Warn("persisted state schema mismatch, starting from defaults",
			"stored", env.Version, "expected", SchemaVersion)
		return
	}

	s.mu.Lock()
	s.state = env.State
	s.mu.Unlock()
}

// Reset deletes the persisted record and restores the built-in defaults.
func (s *Store) Reset() error {
	s.mu.Lock()
	s.state = defaultState()
	s.mu.Unlock()

	if s.backend == nil {
		return nil
	}
	if err := s.backend.Delete(RecordName); err != nil {
		return fmt.Errorf("deleting state record: %w", err)
	}
	return nil
}

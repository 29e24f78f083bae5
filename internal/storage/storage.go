// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package storage provides the durable key-value backends the store
// persists its state record into. It plays the role browser local storage
// plays for the original site: named records of opaque bytes, no schema,
// no transactions.
package storage

// Backend defines the interface for durable key-value backends.
// Records are addressed by name and hold a single opaque byte payload.
type Backend interface {
	// Get retrieves the record with the given name.
	// Returns ErrNotFound if no such record exists.
	Get(name string) ([]byte, error)

	// Set writes the record wholesale, replacing any previous payload.
	Set(name string, data []byte) error

	// Delete removes the record. Deleting a missing record is not an error.
	Delete(name string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Error represents an error type for storage operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrNotFound indicates the named record does not exist.
	ErrNotFound Error = "record not found"

	// ErrClosed indicates the backend has been closed.
	ErrClosed Error = "storage closed"
)

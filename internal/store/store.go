// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store implements the site state store: the single source of truth
// for site configuration, content collections, authentication state, the
// business-hours schedule and dashboard statistics. All reads and writes go
// through it; every mutation commits a new snapshot, persists it to the
// storage backend and notifies subscribers synchronously.
package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/onefourty/site-go/internal/model"
	"github.com/onefourty/site-go/internal/storage"
)

// Back-office credentials. A single hardcoded pair; there is no account
// management or password hashing in this application.
const (
	AdminUsername = "admin"
	AdminPassword = "1234"
)

// Snapshot is a fully-formed copy of the store state. It is what
// subscribers receive and what gets persisted to the storage backend.
type Snapshot struct {
	SiteConfig          model.SiteConfig          `json:"siteConfig"`
	Products            []model.Product           `json:"products"`
	Blogs               []model.BlogPost          `json:"blogs"`
	Services            []model.Service           `json:"services"`
	Contacts            []model.ContactSubmission `json:"contacts"`
	User                *model.User               `json:"user"`
	IsAuthenticated     bool                      `json:"isAuthenticated"`
	BusinessHours       []model.BusinessHours     `json:"businessHours"`
	EmergencyContacts   []model.EmergencyContact  `json:"emergencyContacts"`
	ForceBusinessStatus model.ForceStatus         `json:"forceBusinessStatus"`
	Stats               model.Stats               `json:"stats"`
	Location            model.Location            `json:"location"`
}

// Store is the site state container. It is safe for concurrent use, though
// the application drives it from a single logical thread of control.
type Store struct {
	mu      sync.RWMutex
	state   Snapshot
	backend storage.Backend
	now     func() time.Time

	subs    map[int]func(Snapshot)
	nextSub int
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock used by the open/closed computation.
// Tests use it to pin the current day and time.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a store backed by the given storage backend. If a persisted
// record with a matching schema version exists it is rehydrated; otherwise
// the store starts from the built-in defaults.
func New(backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		state:   defaultState(),
		backend: backend,
		now:     time.Now,
		subs:    make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

// Subscribe registers fn to be called synchronously after every mutation
// commits. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// mutate runs fn on the state, persists the resulting snapshot and
// notifies subscribers. Persistence failures are logged, not surfaced:
// store mutations are total functions over their inputs.
func (s *Store) mutate(fn func(*Snapshot)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.snapshotLocked()
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	if err := s.save(snap); err != nil {
		slog.Error("persisting state", "error", err)
	}
	for _, sub := range subs {
		sub(snap)
	}
}

// snapshotLocked copies the state so callers can never mutate store
// internals through a snapshot. Caller must hold mu.
func (s *Store) snapshotLocked() Snapshot {
	snap := s.state
	snap.Products = append([]model.Product(nil), s.state.Products...)
	snap.Blogs = append([]model.BlogPost(nil), s.state.Blogs...)
	snap.Services = append([]model.Service(nil), s.state.Services...)
	snap.Contacts = append([]model.ContactSubmission(nil), s.state.Contacts...)
	snap.BusinessHours = append([]model.BusinessHours(nil), s.state.BusinessHours...)
	snap.EmergencyContacts = append([]model.EmergencyContact(nil), s.state.EmergencyContacts...)
	if s.state.User != nil {
		u := *s.state.User
		snap.User = &u
	}
	return snap
}

// Snapshot returns a copy of the full current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// SiteConfig returns the site configuration singleton.
func (s *Store) SiteConfig() model.SiteConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SiteConfig
}

// Products returns a copy of the product collection.
func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Product(nil), s.state.Products...)
}

// Blogs returns a copy of the blog post collection.
func (s *Store) Blogs() []model.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.BlogPost(nil), s.state.Blogs...)
}

// Services returns a copy of the service collection.
func (s *Store) Services() []model.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Service(nil), s.state.Services...)
}

// Contacts returns a copy of the contact submission collection.
func (s *Store) Contacts() []model.ContactSubmission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ContactSubmission(nil), s.state.Contacts...)
}

// BusinessHours returns a copy of the weekly schedule.
func (s *Store) BusinessHours() []model.BusinessHours {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.BusinessHours(nil), s.state.BusinessHours...)
}

// EmergencyContacts returns a copy of the emergency contact list.
func (s *Store) EmergencyContacts() []model.EmergencyContact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.EmergencyContact(nil), s.state.EmergencyContacts...)
}

// ForceBusinessStatus returns the current admin override.
func (s *Store) ForceBusinessStatus() model.ForceStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ForceBusinessStatus
}

// Stats returns the dashboard statistics.
func (s *Store) Stats() model.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Stats
}

// Location returns the shop location.
func (s *Store) Location() model.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Location
}

// IsAuthenticated reports whether the back-office user is logged in.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsAuthenticated
}

// User returns the logged-in user, if any.
func (s *Store) User() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return model.User{}, false
	}
	return *s.state.User, true
}

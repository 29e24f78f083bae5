// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onefourty/site-go/internal/model"
	"github.com/onefourty/site-go/internal/storage"
)

func TestPersistence_RoundTrip(t *testing.T) {
	backend := storage.NewMemoryBackend()

	s := New(backend)
	s.AddProduct(model.Product{ID: "1", Name: "Charger", Price: 24.99})
	s.AddService(model.Service{ID: "1", Name: "Screen Repair", Icon: "Smartphone"})
	s.SetForceBusinessStatus(model.ForceOpen)
	require.True(t, s.Login("admin", "1234"))

	// A second store over the same backend sees the committed snapshot.
	reloaded := New(backend)

	assert.Equal(t, s.Snapshot(), reloaded.Snapshot())
	assert.Equal(t, 1, reloaded.Stats().TotalProducts)
	assert.Equal(t, model.ForceOpen, reloaded.ForceBusinessStatus())
	assert.True(t, reloaded.IsAuthenticated())
	u, ok := reloaded.User()
	require.True(t, ok)
	assert.Equal(t, "admin", u.Username)
}

func TestPersistence_RecordLayout(t *testing.T) {
	backend := storage.NewMemoryBackend()
	s := New(backend)
	s.AddProduct(model.Product{ID: "1"})

	data, err := backend.Get(RecordName)
	require.NoError(t, err)

	var raw struct {
		State   map[string]json.RawMessage `json:"state"`
		Version int                        `json:"version"`
	}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, SchemaVersion, raw.Version)

	// The persisted payload is exactly the allow-listed fields.
	want := []string{
		"products", "blogs", "services", "contacts",
		"isAuthenticated", "user", "siteConfig", "stats",
		"businessHours", "emergencyContacts", "location",
		"forceBusinessStatus",
	}
	assert.Len(t, raw.State, len(want))
	for _, field := range want {
		assert.Contains(t, raw.State, field)
	}
}

func TestPersistence_VersionMismatchFallsBackToDefaults(t *testing.T) {
	backend := storage.NewMemoryBackend()

	s := New(backend)
	s.SetSiteConfig(model.SiteConfig{Name: "Edited"})

	// Rewrite the stored record with a future schema version.
	data, err := backend.Get(RecordName)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(data, &env))
	env.Version = SchemaVersion + 1
	bumped, err := json.Marshal(env)
	require.NoError(t, err)
	require.NoError(t, backend.Set(RecordName, bumped))

	reloaded := New(backend)
	assert.Equal(t, "OneFourty", reloaded.SiteConfig().Name,
		"version mismatch discards the record")
}

func TestPersistence_CorruptRecordFallsBackToDefaults(t *testing.T) {
	backend := storage.NewMemoryBackend()
	require.NoError(t, backend.Set(RecordName, []byte("{not json")))

	s := New(backend)
	assert.Equal(t, "OneFourty", s.SiteConfig().Name)
	assert.Len(t, s.BusinessHours(), 7)
}

func TestPersistence_MissingRecordUsesDefaults(t *testing.T) {
	s := New(storage.NewMemoryBackend())

	assert.Equal(t, "OneFourty", s.SiteConfig().Name)
	assert.Len(t, s.BusinessHours(), 7)
	assert.Len(t, s.EmergencyContacts(), 2)
	assert.Equal(t, model.ForceDefault, s.ForceBusinessStatus())
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, 573, s.Stats().ActiveUsers)
}

func TestPersistence_FileBackendAcrossRestart(t *testing.T) {
	dir := t.TempDir()

	backend, err := storage.NewFileBackend(dir)
	require.NoError(t, err)
	s := New(backend)
	s.AddBlog(model.BlogPost{ID: "1", Title: "First Post"})
	require.NoError(t, backend.Close())

	backend2, err := storage.NewFileBackend(dir)
	require.NoError(t, err)
	defer func() { _ = backend2.Close() }()

	reloaded := New(backend2)
	blogs := reloaded.Blogs()
	require.Len(t, blogs, 1)
	assert.Equal(t, "First Post", blogs[0].Title)
}

func TestReset_RestoresDefaultsAndDeletesRecord(t *testing.T) {
	backend := storage.NewMemoryBackend()
	s := New(backend)
	s.AddProduct(model.Product{ID: "1"})

	require.NoError(t, s.Reset())

	assert.Empty(t, s.Products())
	assert.Equal(t, 0, s.Stats().TotalProducts)
	_, err := backend.Get(RecordName)
	assert.Equal(t, storage.ErrNotFound, err)
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seed loads the demo fixture data into the site state store.
package seed

import (
	"log/slog"

	"github.com/onefourty/site-go/internal/store"
)

// Apply overwrites the four content collections with the fixture data,
// discarding whatever was there before. This is the historical startup
// behavior: the site reseeds on every load, so admin edits to these
// collections do not survive a restart. Use ApplyIfEmpty for one-time
// seeding instead.
func Apply(st *store.Store) {
	st.SetProducts(nil)
	st.SetBlogs(nil)
	st.SetServices(nil)
	st.SetContacts(nil)

	st.SetProducts(Products())
	st.SetBlogs(Blogs())
	st.SetServices(Services())
	st.SetContacts(Contacts())

	slog.Info("demo data seeded",
		"products", len(Products()),
		"blogs", len(Blogs()),
		"services", len(Services()),
		"contacts", len(Contacts()),
	)
}

// ApplyIfEmpty seeds only the collections that are currently empty, so
// content that survived a restart is kept.
func ApplyIfEmpty(st *store.Store) {
	if len(st.Products()) == 0 {
		st.SetProducts(Products())
	}
	if len(st.Blogs()) == 0 {
		st.SetBlogs(Blogs())
	}
	if len(st.Services()) == 0 {
		st.SetServices(Services())
	}
	if len(st.Contacts()) == 0 {
		st.SetContacts(Contacts())
	}
	slog.Info("demo data seeded where empty")
}

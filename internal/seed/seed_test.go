// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seed

import (
	"log/slog"
	"testing"

	"github.com/onefourty/site-go/internal/icon"
	"github.com/onefourty/site-go/internal/model"
	"github.com/onefourty/site-go/internal/testutil"
)

func TestMain(m *testing.M) {
	// Keep seeding log output out of test runs.
	slog.SetDefault(testutil.TestLogger())
	m.Run()
}

func TestApply_OverwritesExistingContent(t *testing.T) {
	st := testutil.TestStore(t)
	st.AddProduct(model.Product{ID: "custom", Name: "Admin Added"})
	st.AddBlog(model.BlogPost{ID: "custom", Title: "Admin Post"})

	Apply(st)

	products := st.Products()
	if len(products) != 8 {
		t.Fatalf("products = %d, want 8", len(products))
	}
	for _, p := range products {
		if p.ID == "custom" {
			t.Error("pre-existing product survived the reseed")
		}
	}
	if len(st.Blogs()) != 5 {
		t.Errorf("blogs = %d, want 5", len(st.Blogs()))
	}
	if len(st.Services()) != 6 {
		t.Errorf("services = %d, want 6", len(st.Services()))
	}
	if len(st.Contacts()) != 5 {
		t.Errorf("contacts = %d, want 5", len(st.Contacts()))
	}
}

func TestApplyIfEmpty_KeepsExistingContent(t *testing.T) {
	st := testutil.TestStore(t)
	st.AddProduct(model.Product{ID: "custom", Name: "Admin Added"})

	ApplyIfEmpty(st)

	products := st.Products()
	if len(products) != 1 || products[0].ID != "custom" {
		t.Errorf("non-empty collection was reseeded: %d products", len(products))
	}

	// Empty collections still get fixtures.
	if len(st.Services()) != 6 {
		t.Errorf("services = %d, want 6", len(st.Services()))
	}
}

func TestFixtures_UniqueIDs(t *testing.T) {
	check := func(name string, ids []string) {
		t.Helper()
		seen := map[string]bool{}
		for _, id := range ids {
			if seen[id] {
				t.Errorf("%s: duplicate id %q", name, id)
			}
			seen[id] = true
		}
	}

	var ids []string
	for _, p := range Products() {
		ids = append(ids, p.ID)
	}
	check("products", ids)

	ids = nil
	for _, b := range Blogs() {
		ids = append(ids, b.ID)
	}
	check("blogs", ids)

	ids = nil
	for _, s := range Services() {
		ids = append(ids, s.ID)
	}
	check("services", ids)
}

func TestFixtures_ServiceIconsAreKnown(t *testing.T) {
	for _, s := range Services() {
		if _, ok := icon.Lookup(s.Icon); !ok {
			t.Errorf("service %q uses unknown icon key %q", s.Name, s.Icon)
		}
	}
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package icon

import "testing"

func TestLookup_KnownKeys(t *testing.T) {
	for _, key := range Keys() {
		ic, ok := Lookup(key)
		if !ok {
			t.Errorf("Lookup(%q) not found", key)
		}
		if ic.Key != key {
			t.Errorf("Lookup(%q).Key = %q", key, ic.Key)
		}
		if ic.Label == "" {
			t.Errorf("Lookup(%q) has empty label", key)
		}
	}
}

func TestLookup_UnknownKey(t *testing.T) {
	if _, ok := Lookup("Sparkles"); ok {
		t.Error("Lookup of unknown key succeeded")
	}
	if _, ok := Lookup(""); ok {
		t.Error("Lookup of empty key succeeded")
	}
}

func TestLookupOrDefault(t *testing.T) {
	if got := LookupOrDefault("Sparkles"); got != Default {
		t.Errorf("LookupOrDefault(unknown) = %+v, want Default", got)
	}
	if got := LookupOrDefault(KeyBattery); got.Key != KeyBattery {
		t.Errorf("LookupOrDefault(Battery).Key = %q", got.Key)
	}
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "testing"

func TestStatsPatch_Merge(t *testing.T) {
	base := Stats{
		TotalProducts:   8,
		TotalServices:   6,
		TotalInquiries:  5,
		ActiveUsers:     573,
		Revenue:         Trend{Current: 25000, Previous: 21000},
		ServiceRequests: Trend{Current: 89, Previous: 76},
	}

	n := 12
	rev := Trend{Current: 30000, Previous: 25000}
	got := StatsPatch{TotalProducts: &n, Revenue: &rev}.Merge(base)

	if got.TotalProducts != 12 {
		t.Errorf("TotalProducts = %d, want 12", got.TotalProducts)
	}
	if got.Revenue != rev {
		t.Errorf("Revenue = %+v, want %+v", got.Revenue, rev)
	}

	// Untouched fields carry over.
	if got.TotalServices != 6 || got.TotalInquiries != 5 || got.ActiveUsers != 573 {
		t.Errorf("unpatched counters changed: %+v", got)
	}
	if got.ServiceRequests != base.ServiceRequests {
		t.Errorf("ServiceRequests = %+v, want %+v", got.ServiceRequests, base.ServiceRequests)
	}
}

func TestStatsPatch_MergeEmpty(t *testing.T) {
	base := Stats{TotalProducts: 3, ActiveUsers: 10}
	got := StatsPatch{}.Merge(base)
	if got != base {
		t.Errorf("empty patch changed stats: got %+v, want %+v", got, base)
	}
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Trend is a current/previous value pair, used by the admin dashboard to
// display period-over-period deltas.
type Trend struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
}

// Stats holds the aggregate counters shown on the admin dashboard.
// TotalProducts, TotalServices and TotalInquiries are derived from the
// collection lengths and recomputed by the store on add/delete; the
// remaining fields are display-only.
type Stats struct {
	TotalProducts   int   `json:"totalProducts"`
	TotalServices   int   `json:"totalServices"`
	TotalInquiries  int   `json:"totalInquiries"`
	ActiveUsers     int   `json:"activeUsers"`
	Revenue         Trend `json:"revenue"`
	ServiceRequests Trend `json:"serviceRequests"`
}

// StatsPatch is a partial Stats update. Nil fields are left unchanged by
// the merge.
type StatsPatch struct {
	TotalProducts   *int   `json:"totalProducts,omitempty"`
	TotalServices   *int   `json:"totalServices,omitempty"`
	TotalInquiries  *int   `json:"totalInquiries,omitempty"`
	ActiveUsers     *int   `json:"activeUsers,omitempty"`
	Revenue         *Trend `json:"revenue,omitempty"`
	ServiceRequests *Trend `json:"serviceRequests,omitempty"`
}

// Merge applies the non-nil fields of p on top of s and returns the result.
func (p StatsPatch) Merge(s Stats) Stats {
	if p.TotalProducts != nil {
		s.TotalProducts = *p.TotalProducts
	}
	if p.TotalServices != nil {
		s.TotalServices = *p.TotalServices
	}
	if p.TotalInquiries != nil {
		s.TotalInquiries = *p.TotalInquiries
	}
	if p.ActiveUsers != nil {
		s.ActiveUsers = *p.ActiveUsers
	}
	if p.Revenue != nil {
		s.Revenue = *p.Revenue
	}
	if p.ServiceRequests != nil {
		s.ServiceRequests = *p.ServiceRequests
	}
	return s
}

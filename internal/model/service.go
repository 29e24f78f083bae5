// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Service represents a repair service offered by the shop.
// Icon is a symbolic icon key, resolved through the icon registry;
// Category is optional ("phone", "laptop", or empty).
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Icon        string  `json:"icon"`
	Category    string  `json:"category,omitempty"`
}

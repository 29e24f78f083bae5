// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// ContactInfo holds the shop's public contact details.
type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SocialLinks holds the shop's social media profile URLs.
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
}

// SiteConfig is the singleton site configuration record. It is replaced
// wholesale on save, never patched field by field.
type SiteConfig struct {
	Name        string      `json:"name"`
	Logo        string      `json:"logo"`
	Description string      `json:"description"`
	Contact     ContactInfo `json:"contact"`
	Social      SocialLinks `json:"social"`
}

// Location is the shop's physical location, used by the contact page map.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	Country string  `json:"country"`
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model contains domain models and constants for the application
// including Product, Service, BlogPost, ContactSubmission, BusinessHours
// and site configuration structures.
package model

// Dimensions holds optional display dimensions for an image reference.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Product represents an item sold in the shop.
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Price       float64     `json:"price"`
	Description string      `json:"description"`
	ImageURL    string      `json:"imageUrl"`
	Category    string      `json:"category"`
	Dimensions  *Dimensions `json:"dimensions,omitempty"`
}

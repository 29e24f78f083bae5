// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "github.com/onefourty/site-go/internal/util"

// BlogPost represents a published blog article.
// Content is Markdown source; rendering happens in the presentation layer.
// CreatedAt is an ISO 8601 timestamp string.
type BlogPost struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Excerpt    string      `json:"excerpt"`
	Content    string      `json:"content"`
	ImageURL   string      `json:"imageUrl"`
	Category   string      `json:"category"`
	CreatedAt  string      `json:"createdAt"`
	Dimensions *Dimensions `json:"dimensions,omitempty"`
}

// Slug returns a URL-friendly slug derived from the post title.
func (b BlogPost) Slug() string {
	return util.Slugify(b.Title)
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render converts stored content into safe HTML for the
// presentation layer.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// htmlSanitizer allows the safe subset of HTML for user-visible content
// while stripping scripts, event handlers and the like.
var htmlSanitizer = bluemonday.UGCPolicy()

// textSanitizer strips all markup, leaving plain text. Used for contact
// form messages, which are never meant to carry HTML.
var textSanitizer = bluemonday.StrictPolicy()

// Markdown converts Markdown source to sanitized HTML.
func Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(htmlSanitizer.SanitizeBytes(buf.Bytes())), nil //nolint:gosec // sanitized above
}

// SanitizeText strips any markup from s, returning plain text.
func SanitizeText(s string) string {
	return textSanitizer.Sanitize(s)
}

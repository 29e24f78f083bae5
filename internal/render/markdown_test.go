// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"strings"
	"testing"
)

func TestMarkdown_BasicFormatting(t *testing.T) {
	html, err := Markdown("# Repair Guide\n\nSome **bold** advice.")
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}

	out := string(html)
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "Repair Guide") {
		t.Errorf("missing heading in output: %s", out)
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("missing bold text in output: %s", out)
	}
}

func TestMarkdown_StripsScripts(t *testing.T) {
	html, err := Markdown("Hello <script>alert('xss')</script> world")
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}

	out := string(html)
	if strings.Contains(out, "<script") || strings.Contains(out, "alert(") {
		t.Errorf("script survived sanitization: %s", out)
	}
	if !strings.Contains(out, "Hello") || !strings.Contains(out, "world") {
		t.Errorf("legitimate text lost: %s", out)
	}
}

func TestSanitizeText(t *testing.T) {
	got := SanitizeText(`Need help <img src=x onerror=alert(1)> with my <b>laptop</b>`)
	if strings.Contains(got, "<") {
		t.Errorf("markup survived: %q", got)
	}
	if !strings.Contains(got, "Need help") || !strings.Contains(got, "laptop") {
		t.Errorf("legitimate text lost: %q", got)
	}
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission represents a message left through the public contact form.
// Submissions are append-only: they are created and deleted, never edited.
type ContactSubmission struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// NewContactSubmission builds a submission with a fresh ID and a UTC
// ISO 8601 creation timestamp.
func NewContactSubmission(name, email, message string) ContactSubmission {
	return ContactSubmission{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// EmergencyContact is an out-of-hours support contact. Contacts are kept in
// an ordered list; the first one flagged available is the active contact.
type EmergencyContact struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Available bool   `json:"available"`
	Hours     string `json:"hours"`
}

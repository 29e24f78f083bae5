// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// User is the single back-office account. The credential check is a plain
// string comparison against a hardcoded pair; there is no password hashing
// or account management in this application.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

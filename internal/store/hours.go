// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "github.com/onefourty/site-go/internal/model"

// timeLayout formats a wall-clock time as a zero-padded "HH:MM" string so
// it can be compared lexicographically against the schedule.
const timeLayout = "15:04"

// IsBusinessOpen reports whether the shop is currently open. The admin
// override wins outright; otherwise today's schedule record decides.
//
// The range check is inclusive on both ends. A schedule with
// openTime > closeTime (overnight hours) always evaluates to closed for
// times before midnight; that matches the shipped behavior and is left
// as is.
func (s *Store) IsBusinessOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.ForceBusinessStatus != model.ForceDefault {
		return s.state.ForceBusinessStatus == model.ForceOpen
	}

	now := s.now()
	today := now.Weekday().String()
	current := now.Format(timeLayout)

	for _, h := range s.state.BusinessHours {
		if h.Day != today {
			continue
		}
		if !h.IsOpen {
			return false
		}
		return h.OpenTime <= current && current <= h.CloseTime
	}

	// No schedule record for today.
	return false
}

// ActiveEmergencyContact returns the first emergency contact flagged
// available, in list order. The boolean is false when none is available.
func (s *Store) ActiveEmergencyContact() (model.EmergencyContact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.state.EmergencyContacts {
		if c.Available {
			return c, true
		}
	}
	return model.EmergencyContact{}, false
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Canonical weekday names, matching time.Weekday.String().
const (
	DayMonday    = "Monday"
	DayTuesday   = "Tuesday"
	DayWednesday = "Wednesday"
	DayThursday  = "Thursday"
	DayFriday    = "Friday"
	DaySaturday  = "Saturday"
	DaySunday    = "Sunday"
)

// Weekdays returns the seven canonical day names in schedule order,
// Monday first.
func Weekdays() []string {
	return []string{
		DayMonday,
		DayTuesday,
		DayWednesday,
		DayThursday,
		DayFriday,
		DaySaturday,
		DaySunday,
	}
}

// BusinessHours is the opening schedule for a single weekday.
// OpenTime and CloseTime are zero-padded "HH:MM" 24-hour strings, so
// lexicographic comparison is equivalent to numeric comparison.
type BusinessHours struct {
	Day       string `json:"day"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	IsOpen    bool   `json:"isOpen"`
}

// HoursPatch is a partial BusinessHours update for a single day. Nil
// fields are left unchanged.
type HoursPatch struct {
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
	IsOpen    *bool   `json:"isOpen,omitempty"`
}

// Merge applies the non-nil fields of p on top of h and returns the result.
// The day name itself is the natural key and cannot be patched.
func (p HoursPatch) Merge(h BusinessHours) BusinessHours {
	if p.OpenTime != nil {
		h.OpenTime = *p.OpenTime
	}
	if p.CloseTime != nil {
		h.CloseTime = *p.CloseTime
	}
	if p.IsOpen != nil {
		h.IsOpen = *p.IsOpen
	}
	return h
}

// ForceStatus is the admin override for the schedule-based open/closed
// computation. Anything other than ForceDefault bypasses the schedule
// entirely.
type ForceStatus string

// Force status values
const (
	ForceDefault ForceStatus = "default"
	ForceOpen    ForceStatus = "open"
	ForceClosed  ForceStatus = "closed"
)

// Valid reports whether s is one of the three known override values.
func (s ForceStatus) Valid() bool {
	switch s {
	case ForceDefault, ForceOpen, ForceClosed:
		return true
	}
	return false
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "github.com/onefourty/site-go/internal/model"

// defaultState returns the built-in state the store falls back to when no
// persisted record exists or the schema version does not match.
func defaultState() Snapshot {
	return Snapshot{
		SiteConfig: model.SiteConfig{
			Name:        "OneFourty",
			Logo:        "Wrench",
			Description: "Expert Device Repair",
			Contact: model.ContactInfo{
				Email:   "support@onefourty.com",
				Phone:   "+1 (234) 567-8900",
				Address: "123 Repair Street, NY 10001",
			},
			Social: model.SocialLinks{
				Facebook:  "https://facebook.com/onefourty",
				Twitter:   "https://twitter.com/onefourty",
				Instagram: "https://instagram.com/onefourty",
				YouTube:   "https://youtube.com/onefourty",
			},
		},
		Products: []model.Product{},
		Blogs:    []model.BlogPost{},
		Services: []model.Service{},
		Contacts: []model.ContactSubmission{},
		BusinessHours: []model.BusinessHours{
			{Day: model.DayMonday, OpenTime: "09:00", CloseTime: "18:00", IsOpen: true},
			{Day: model.DayTuesday, OpenTime: "09:00", CloseTime: "18:00", IsOpen: true},
			{Day: model.DayWednesday, OpenTime: "09:00", CloseTime: "18:00", IsOpen: true},
			{Day: model.DayThursday, OpenTime: "09:00", CloseTime: "18:00", IsOpen: true},
			{Day: model.DayFriday, OpenTime: "09:00", CloseTime: "18:00", IsOpen: true},
			{Day: model.DaySaturday, OpenTime: "10:00", CloseTime: "16:00", IsOpen: true},
			{Day: model.DaySunday, OpenTime: "00:00", CloseTime: "00:00", IsOpen: false},
		},
		EmergencyContacts: []model.EmergencyContact{
			{
				Name:      "Emergency Tech Support",
				Phone:     "+1 (234) 567-8900",
				Available: true,
				Hours:     "24/7",
			},
			{
				Name:      "After Hours Support",
				Phone:     "+1 (234) 567-8901",
				Available: true,
				Hours:     "18:00 - 09:00",
			},
		},
		ForceBusinessStatus: model.ForceDefault,
		Stats: model.Stats{
			ActiveUsers:     573,
			Revenue:         model.Trend{Current: 25000, Previous: 21000},
			ServiceRequests: model.Trend{Current: 89, Previous: 76},
		},
		Location: model.Location{
			Lat:     27.695144369983282,
			Lng:     85.37248781038323,
			Address: "123 Repair Street",
			City:    "New York",
			Country: "United States",
		},
	}
}

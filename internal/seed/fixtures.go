// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seed

import "github.com/onefourty/site-go/internal/model"

// Products returns the demo product catalog.
func Products() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "Universal Laptop Charger",
			Price:       24.99,
			Description: "Compatible with most laptop brands. Includes multiple connectors.",
			ImageURL:    "https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?auto=format&fit=crop&w=800&q=80",
			Category:    "Accessories",
		},
		{
			ID:          "2",
			Name:        "Premium Screen Protector",
			Price:       9.99,
			Description: "9H hardness tempered glass for maximum protection",
			ImageURL:    "https://images.unsplash.com/photo-1544866092-1935c5ef2a8f?auto=format&fit=crop&w=800&q=80",
			Category:    "Protection",
		},
		{
			ID:          "3",
			Name:        "Laptop Battery Pack",
			Price:       49.99,
			Description: "High-capacity replacement battery for extended use",
			ImageURL:    "https://images.unsplash.com/photo-1585338107529-13afc5f02586?auto=format&fit=crop&w=800&q=80",
			Category:    "Parts",
		},
		{
			ID:          "4",
			Name:        "USB-C Hub",
			Price:       29.99,
			Description: "Multi-port adapter with HDMI, USB, and card reader",
			ImageURL:    "https://images.unsplash.com/photo-1678911820864-e7a624ea15bc?auto=format&fit=crop&w=800&q=80",
			Category:    "Accessories",
		},
		{
			ID:          "5",
			Name:        "Phone Case",
			Price:       19.99,
			Description: "Durable protection with sleek design",
			ImageURL:    "https://images.unsplash.com/photo-1541877590-a229a2c77d1d?auto=format&fit=crop&w=800&q=80",
			Category:    "Protection",
		},
		{
			ID:          "6",
			Name:        "Laptop RAM Module",
			Price:       39.99,
			Description: "8GB DDR4 memory for improved performance",
			ImageURL:    "https://images.unsplash.com/photo-1591799264318-7e6ef8ddb7ea?auto=format&fit=crop&w=800&q=80",
			Category:    "Parts",
		},
		{
			ID:          "7",
			Name:        "Wireless Mouse",
			Price:       29.99,
			Description: "Ergonomic design with precision tracking",
			ImageURL:    "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?auto=format&fit=crop&w=800&q=80",
			Category:    "Accessories",
		},
		{
			ID:          "8",
			Name:        "SSD Drive 500GB",
			Price:       89.99,
			Description: "High-speed solid state drive for faster performance",
			ImageURL:    "https://images.unsplash.com/photo-1597872200969-2b65d56bd16b?auto=format&fit=crop&w=800&q=80",
			Category:    "Parts",
		},
	}
}

// Blogs returns the demo blog posts.
func Blogs() []model.BlogPost {
	return []model.BlogPost{
		{
			ID:        "1",
			Title:     "How to Speed Up Your Slow Laptop",
			Excerpt:   "Learn the essential steps to boost your laptop performance and get it running like new again.",
			Content:   "Full article content about speeding up laptops with detailed steps and recommendations...",
			ImageURL:  "https://images.unsplash.com/photo-1516387938699-a93567ec168e",
			Category:  "Tips",
			CreatedAt: "2024-02-15T08:00:00.000Z",
		},
		{
			ID:        "2",
			Title:     "Extend Your Phone Battery Life",
			Excerpt:   "Discover proven techniques to maximize your phone battery life.",
			Content:   "Comprehensive guide about battery optimization and maintenance...",
			ImageURL:  "https://images.unsplash.com/photo-1585338107529-13afc5f02586",
			Category:  "Mobile",
			CreatedAt: "2024-02-10T10:30:00.000Z",
		},
		{
			ID:        "3",
			Title:     "Common Laptop Screen Issues and Solutions",
			Excerpt:   "Troubleshoot common laptop display problems with our comprehensive guide.",
			Content:   "Detailed troubleshooting steps for various screen issues...",
			ImageURL:  "https://images.unsplash.com/photo-1588702547923-7093a6c3ba33",
			Category:  "Laptop",
			CreatedAt: "2024-02-05T15:45:00.000Z",
		},
		{
			ID:        "4",
			Title:     "The Ultimate Guide to Phone Protection",
			Excerpt:   "Everything you need to know about keeping your phone safe and secure.",
			Content:   "Complete guide covering physical protection and digital security...",
			ImageURL:  "https://images.unsplash.com/photo-1546054454-aa26e2b734c7",
			Category:  "Mobile",
			CreatedAt: "2024-02-01T09:15:00.000Z",
		},
		{
			ID:        "5",
			Title:     "Choosing the Right Laptop for Your Needs",
			Excerpt:   "A comprehensive guide to selecting the perfect laptop for work, gaming, or casual use.",
			Content:   "Detailed comparison of different laptop types and recommendations...",
			ImageURL:  "https://images.unsplash.com/photo-1496181133206-80ce9b88a853",
			Category:  "Laptop",
			CreatedAt: "2024-01-28T14:20:00.000Z",
		},
	}
}

// Services returns the demo service catalog.
func Services() []model.Service {
	return []model.Service{
		{
			ID:          "1",
			Name:        "Screen Repair",
			Description: "Professional screen replacement for phones and tablets.",
			Price:       49.99,
			Icon:        "Smartphone",
			Category:    "phone",
		},
		{
			ID:          "2",
			Name:        "Battery Replacement",
			Description: "Restore your device battery life with our premium battery replacement service.",
			Price:       39.99,
			Icon:        "Battery",
			Category:    "phone",
		},
		{
			ID:          "3",
			Name:        "Data Recovery",
			Description: "Lost important files? Our experts can help recover your valuable data.",
			Price:       79.99,
			Icon:        "HardDrive",
			Category:    "laptop",
		},
		{
			ID:          "4",
			Name:        "Virus Removal",
			Description: "Complete system scan and malware removal service.",
			Price:       59.99,
			Icon:        "Shield",
			Category:    "laptop",
		},
		{
			ID:          "5",
			Name:        "Water Damage Repair",
			Description: "Specialized treatment for water-damaged devices.",
			Price:       89.99,
			Icon:        "Droplets",
			Category:    "phone",
		},
		{
			ID:          "6",
			Name:        "Hardware Upgrade",
			Description: "Boost your device performance with hardware upgrades.",
			Price:       99.99,
			Icon:        "Cpu",
			Category:    "laptop",
		},
	}
}

// Contacts returns the demo contact submissions.
func Contacts() []model.ContactSubmission {
	return []model.ContactSubmission{
		{
			ID:        "1",
			Name:      "John Smith",
			Email:     "john.smith@example.com",
			Message:   "Need help with my laptop screen repair.",
			CreatedAt: "2024-03-10T09:30:00.000Z",
		},
		{
			ID:        "2",
			Name:      "Sarah Johnson",
			Email:     "sarah.j@example.com",
			Message:   "Interested in phone battery replacement service.",
			CreatedAt: "2024-03-09T15:45:00.000Z",
		},
		{
			ID:        "3",
			Name:      "Mike Wilson",
			Email:     "mike.wilson@example.com",
			Message:   "Looking for a quote on data recovery service.",
			CreatedAt: "2024-03-08T11:20:00.000Z",
		},
		{
			ID:        "4",
			Name:      "Emily Brown",
			Email:     "emily.b@example.com",
			Message:   "Need assistance with virus removal from my laptop.",
			CreatedAt: "2024-03-07T14:15:00.000Z",
		},
		{
			ID:        "5",
			Name:      "David Lee",
			Email:     "david.lee@example.com",
			Message:   "Inquiry about hardware upgrade options for my laptop.",
			CreatedAt: "2024-03-06T10:00:00.000Z",
		},
	}
}

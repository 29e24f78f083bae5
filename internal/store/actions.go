// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "github.com/onefourty/site-go/internal/model"

// SetSiteConfig replaces the site configuration singleton wholesale.
func (s *Store) SetSiteConfig(cfg model.SiteConfig) {
	s.mutate(func(st *Snapshot) {
		st.SiteConfig = cfg
	})
}

// SetProducts replaces the product collection. Unlike AddProduct and
// DeleteProduct it does not touch the derived stats.
func (s *Store) SetProducts(products []model.Product) {
	s.mutate(func(st *Snapshot) {
		st.Products = append([]model.Product(nil), products...)
	})
}

// AddProduct appends a product and recomputes the total-products stat.
func (s *Store) AddProduct(p model.Product) {
	s.mutate(func(st *Snapshot) {
		st.Products = append(st.Products, p)
		st.Stats.TotalProducts = len(st.Products)
	})
}

// UpdateProduct replaces the product with the given id. A missing id is a
// no-op; the returned boolean reports whether the update applied.
func (s *Store) UpdateProduct(id string, p model.Product) bool {
	applied := false
	s.mutate(func(st *Snapshot) {
		for i := range st.Products {
			if st.Products[i].ID == id {
				st.Products[i] = p
				applied = true
				return
			}
		}
	})
	return applied
}

// DeleteProduct removes the product with the given id, if present, and
// recomputes the total-products stat.
func (s *Store) DeleteProduct(id string) {
	s.mutate(func(st *Snapshot) {
		kept := st.Products[:0]
		for _, p := range st.Products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		st.Products = kept
		st.Stats.TotalProducts = len(st.Products)
	})
}

// SetBlogs replaces the blog post collection.
func (s *Store) SetBlogs(blogs []model.BlogPost) {
	s.mutate(func(st *Snapshot) {
		st.Blogs = append([]model.BlogPost(nil), blogs...)
	})
}

// AddBlog appends a blog post. Blog posts carry no derived stat.
func (s *Store) AddBlog(b model.BlogPost) {
	s.mutate(func(st *Snapshot) {
		st.Blogs = append(st.Blogs, b)
	})
}

// UpdateBlog replaces the blog post with the given id. A missing id is a
// no-op; the returned boolean reports whether the update applied.
func (s *Store) UpdateBlog(id string, b model.BlogPost) bool {
	applied := false
	s.mutate(func(st *Snapshot) {
		for i := range st.Blogs {
			if st.Blogs[i].ID == id {
				st.Blogs[i] = b
				applied = true
				return
			}
		}
	})
	return applied
}

// DeleteBlog removes the blog post with the given id, if present.
func (s *Store) DeleteBlog(id string) {
	s.mutate(func(st *Snapshot) {
		kept := st.Blogs[:0]
		for _, b := range st.Blogs {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		st.Blogs = kept
	})
}

// SetServices replaces the service collection.
func (s *Store) SetServices(services []model.Service) {
	s.mutate(func(st *Snapshot) {
		st.Services = append([]model.Service(nil), services...)
	})
}

// AddService appends a service and recomputes the total-services stat.
func (s *Store) AddService(svc model.Service) {
	s.mutate(func(st *Snapshot) {
		st.Services = append(st.Services, svc)
		st.Stats.TotalServices = len(st.Services)
	})
}

// UpdateService replaces the service with the given id. A missing id is a
// no-op; the returned boolean reports whether the update applied.
func (s *Store) UpdateService(id string, svc model.Service) bool {
	applied := false
	s.mutate(func(st *Snapshot) {
		for i := range st.Services {
			if st.Services[i].ID == id {
				st.Services[i] = svc
				applied = true
				return
			}
		}
	})
	return applied
}

// DeleteService removes the service with the given id, if present, and
// recomputes the total-services stat.
func (s *Store) DeleteService(id string) {
	s.mutate(func(st *Snapshot) {
		kept := st.Services[:0]
		for _, svc := range st.Services {
			if svc.ID != id {
				kept = append(kept, svc)
			}
		}
		st.Services = kept
		st.Stats.TotalServices = len(st.Services)
	})
}

// AddContact appends a contact submission and recomputes the
// total-inquiries stat.
func (s *Store) AddContact(c model.ContactSubmission) {
	s.mutate(func(st *Snapshot) {
		st.Contacts = append(st.Contacts, c)
		st.Stats.TotalInquiries = len(st.Contacts)
	})
}

// SetContacts replaces the contact submission collection.
func (s *Store) SetContacts(contacts []model.ContactSubmission) {
	s.mutate(func(st *Snapshot) {
		st.Contacts = append([]model.ContactSubmission(nil), contacts...)
	})
}

// DeleteContact removes the submission with the given id, if present, and
// recomputes the total-inquiries stat.
func (s *Store) DeleteContact(id string) {
	s.mutate(func(st *Snapshot) {
		kept := st.Contacts[:0]
		for _, c := range st.Contacts {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		st.Contacts = kept
		st.Stats.TotalInquiries = len(st.Contacts)
	})
}

// UpdateStats shallow-merges the non-nil fields of patch into the stats.
func (s *Store) UpdateStats(patch model.StatsPatch) {
	s.mutate(func(st *Snapshot) {
		st.Stats = patch.Merge(st.Stats)
	})
}

// SetBusinessHours replaces the weekly schedule wholesale.
func (s *Store) SetBusinessHours(hours []model.BusinessHours) {
	s.mutate(func(st *Snapshot) {
		st.BusinessHours = append([]model.BusinessHours(nil), hours...)
	})
}

// UpdateBusinessHours merges patch into the record for the given day.
// An unmatched day is a no-op; the returned boolean reports whether the
// update applied.
func (s *Store) UpdateBusinessHours(day string, patch model.HoursPatch) bool {
	applied := false
	s.mutate(func(st *Snapshot) {
		for i := range st.BusinessHours {
			if st.BusinessHours[i].Day == day {
				st.BusinessHours[i] = patch.Merge(st.BusinessHours[i])
				applied = true
				return
			}
		}
	})
	return applied
}

// SetEmergencyContacts replaces the emergency contact list wholesale.
func (s *Store) SetEmergencyContacts(contacts []model.EmergencyContact) {
	s.mutate(func(st *Snapshot) {
		st.EmergencyContacts = append([]model.EmergencyContact(nil), contacts...)
	})
}

// UpdateEmergencyContact replaces the contact at the given position.
// An out-of-range index is a no-op; the returned boolean reports whether
// the update applied.
func (s *Store) UpdateEmergencyContact(index int, c model.EmergencyContact) bool {
	applied := false
	s.mutate(func(st *Snapshot) {
		if index >= 0 && index < len(st.EmergencyContacts) {
			st.EmergencyContacts[index] = c
			applied = true
		}
	})
	return applied
}

// SetForceBusinessStatus sets the admin open/closed override.
func (s *Store) SetForceBusinessStatus(status model.ForceStatus) {
	s.mutate(func(st *Snapshot) {
		st.ForceBusinessStatus = status
	})
}

// Login checks the credentials against the hardcoded admin pair. On match
// it records the user and sets the authenticated flag; otherwise state is
// left untouched.
func (s *Store) Login(username, password string) bool {
	if username != AdminUsername || password != AdminPassword {
		return false
	}
	s.mutate(func(st *Snapshot) {
		st.User = &model.User{Username: AdminUsername, Password: AdminPassword}
		st.IsAuthenticated = true
	})
	return true
}

// Logout clears the user record and the authenticated flag.
func (s *Store) Logout() {
	s.mutate(func(st *Snapshot) {
		st.User = nil
		st.IsAuthenticated = false
	})
}

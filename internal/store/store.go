package store

import (
	"sync"

	"avantika_admin/internal/domain"
)

// Store is the in-memory cache of site content. The backend stays the
// system of record; this is rebuilt from fetches and patched on mutation.
// Reads return copies so callers can never alias the internal slices.
type Store struct {
	mu       sync.RWMutex
	places   []domain.Place
	packages []domain.TourPackage
	blogs    []domain.Blog
	contacts []domain.Contact
	settings domain.SiteSettings
}

func New() *Store { return &Store{} }

// ---- Places ----

func (s *Store) Places() []domain.Place {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.places, clonePlace)
}

func (s *Store) ReplacePlaces(ps []domain.Place) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.places = copySlice(ps, clonePlace)
}

func (s *Store) UpsertPlace(p domain.Place) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.places {
		if s.places[i].ID == p.ID {
			s.places[i] = clonePlace(p)
			return
		}
	}
	s.places = append(s.places, clonePlace(p))
}

func (s *Store) RemovePlace(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.places = removeByID(s.places, id, func(p domain.Place) string { return p.ID })
}

// ---- Packages ----

func (s *Store) Packages() []domain.TourPackage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.packages, clonePackage)
}

func (s *Store) ReplacePackages(ps []domain.TourPackage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packages = copySlice(ps, clonePackage)
}

func (s *Store) UpsertPackage(p domain.TourPackage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.packages {
		if s.packages[i].ID == p.ID {
			s.packages[i] = clonePackage(p)
			return
		}
	}
	s.packages = append(s.packages, clonePackage(p))
}

func (s *Store) RemovePackage(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packages = removeByID(s.packages, id, func(p domain.TourPackage) string { return p.ID })
}

// ---- Blogs ----

func (s *Store) Blogs() []domain.Blog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.blogs, cloneBlog)
}

func (s *Store) ReplaceBlogs(bs []domain.Blog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blogs = copySlice(bs, cloneBlog)
}

func (s *Store) UpsertBlog(b domain.Blog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.blogs {
		if s.blogs[i].ID == b.ID {
			s.blogs[i] = cloneBlog(b)
			return
		}
	}
	s.blogs = append(s.blogs, cloneBlog(b))
}

func (s *Store) RemoveBlog(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blogs = removeByID(s.blogs, id, func(b domain.Blog) string { return b.ID })
}

// ---- Contacts ----

func (s *Store) Contacts() []domain.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.contacts, cloneContact)
}

func (s *Store) ReplaceContacts(cs []domain.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = copySlice(cs, cloneContact)
}

func (s *Store) UpsertContact(c domain.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.contacts {
		if s.contacts[i].ID == c.ID {
			s.contacts[i] = c
			return
		}
	}
	s.contacts = append(s.contacts, c)
}

func (s *Store) RemoveContact(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = removeByID(s.contacts, id, func(c domain.Contact) string { return c.ID })
}

// ---- Settings ----

func (s *Store) Settings() domain.SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Store) SetSettings(v domain.SiteSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = v
}

// ---- helpers ----

// copySlice deep-copies via the per-entity clone so nested slices are never
// aliased between the store and its callers.
func copySlice[T any](in []T, clone func(T) T) []T {
	if len(in) == 0 {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

func clonePlace(p domain.Place) domain.Place {
	p.Images = append([]domain.Image(nil), p.Images...)
	return p
}

func clonePackage(p domain.TourPackage) domain.TourPackage {
	p.Includes = append([]string(nil), p.Includes...)
	if len(p.Itinerary) > 0 {
		days := make([]domain.ItineraryDay, len(p.Itinerary))
		for i, d := range p.Itinerary {
			d.Activities = append([]string(nil), d.Activities...)
			days[i] = d
		}
		p.Itinerary = days
	}
	return p
}

func cloneBlog(b domain.Blog) domain.Blog {
	b.Tags = append([]string(nil), b.Tags...)
	return b
}

// Contact has no nested slices; the value copy is already deep.
func cloneContact(c domain.Contact) domain.Contact { return c }

func removeByID[T any](in []T, id string, idOf func(T) string) []T {
	out := in[:0]
	for _, v := range in {
		if idOf(v) != id {
			out = append(out, v)
		}
	}
	return out
}

package store_test

import (
	"testing"

	"avantika_admin/internal/domain"
	"avantika_admin/internal/store"
)

func TestUpsertPlace_InsertThenUpdate(t *testing.T) {
	s := store.New()
	s.UpsertPlace(domain.Place{ID: "p1", Title: "Ujjain"})
	s.UpsertPlace(domain.Place{ID: "p2", Title: "Indore"})
	if got := len(s.Places()); got != 2 {
		t.Fatalf("expected 2 places, got %d", got)
	}

	s.UpsertPlace(domain.Place{ID: "p1", Title: "Ujjain (updated)", Price: 500})
	ps := s.Places()
	if len(ps) != 2 {
		t.Fatalf("upsert must not duplicate: %d", len(ps))
	}
	if ps[0].Title != "Ujjain (updated)" || ps[0].Price != 500 {
		t.Fatalf("update lost: %+v", ps[0])
	}
}

func TestRemoveBlog(t *testing.T) {
	s := store.New()
	s.ReplaceBlogs([]domain.Blog{{ID: "b1"}, {ID: "b2"}, {ID: "b3"}})
	s.RemoveBlog("b2")
	bs := s.Blogs()
	if len(bs) != 2 || bs[0].ID != "b1" || bs[1].ID != "b3" {
		t.Fatalf("remove broke order: %+v", bs)
	}
	// removing a missing id is a no-op
	s.RemoveBlog("nope")
	if len(s.Blogs()) != 2 {
		t.Fatalf("remove of absent id must be a no-op")
	}
}

func TestReads_ReturnCopies(t *testing.T) {
	s := store.New()
	s.ReplaceContacts([]domain.Contact{{ID: "c1", Name: "Asha"}})
	cs := s.Contacts()
	cs[0].Name = "mutated"
	if s.Contacts()[0].Name != "Asha" {
		t.Fatalf("store leaked its backing array")
	}
}

func TestReads_NestedSlicesNotAliased(t *testing.T) {
	s := store.New()
	s.ReplacePlaces([]domain.Place{{
		ID:     "p1",
		Title:  "Ujjain",
		Images: []domain.Image{{URL: "https://cdn/x.jpg", PublicID: "x"}},
	}})
	s.ReplaceBlogs([]domain.Blog{{ID: "b1", Title: "Monsoon", Tags: []string{"rain"}}})
	s.ReplacePackages([]domain.TourPackage{{
		ID:        "tp1",
		Name:      "Darshan",
		Includes:  []string{"hotel"},
		Itinerary: []domain.ItineraryDay{{Day: 1, Title: "Arrival", Activities: []string{"check-in"}}},
	}})

	ps := s.Places()
	ps[0].Images[0].URL = "mutated"
	if s.Places()[0].Images[0].URL != "https://cdn/x.jpg" {
		t.Fatalf("place gallery aliased with the store")
	}

	bs := s.Blogs()
	bs[0].Tags[0] = "mutated"
	if s.Blogs()[0].Tags[0] != "rain" {
		t.Fatalf("blog tags aliased with the store")
	}

	tp := s.Packages()
	tp[0].Includes[0] = "mutated"
	tp[0].Itinerary[0].Activities[0] = "mutated"
	got := s.Packages()[0]
	if got.Includes[0] != "hotel" || got.Itinerary[0].Activities[0] != "check-in" {
		t.Fatalf("package nested slices aliased with the store")
	}

	// the caller's value handed to an upsert must not stay shared either
	src := domain.Place{ID: "p2", Images: []domain.Image{{URL: "a", PublicID: "a"}}}
	s.UpsertPlace(src)
	src.Images[0].URL = "mutated"
	for _, p := range s.Places() {
		if p.ID == "p2" && p.Images[0].URL != "a" {
			t.Fatalf("upsert kept the caller's image slice")
		}
	}
}

func TestNewSeeded(t *testing.T) {
	s := store.NewSeeded()
	if len(s.Places()) == 0 || len(s.Packages()) == 0 || len(s.Blogs()) == 0 {
		t.Fatalf("seed content missing")
	}
	if s.Settings().Name == "" {
		t.Fatalf("settings seed missing")
	}
	// seed is replaced wholesale by the first real fetch
	s.ReplacePlaces([]domain.Place{{ID: "real-1"}})
	ps := s.Places()
	if len(ps) != 1 || ps[0].ID != "real-1" {
		t.Fatalf("fetch must replace the seed, not merge: %+v", ps)
	}
}

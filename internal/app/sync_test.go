package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"avantika_admin/internal/app"
	"avantika_admin/internal/domain"
	"avantika_admin/internal/store"
)

func newRefresher(fc *fakeClient, tokens domain.TokenSource) (*app.Refresher, *fakeCache, *store.Store) {
	cache := newFakeCache()
	st := store.New()
	r := app.NewRefresher(fc, cache, st, tokens, time.Minute, zerolog.Nop())
	return r, cache, st
}

func TestRefresher_RefreshAll(t *testing.T) {
	fc := &fakeClient{
		places:   []domain.Place{{ID: "p1", Title: "Ujjain"}},
		packages: []domain.TourPackage{{ID: "tp1", Name: "Darshan"}},
		blogs:    []domain.Blog{{ID: "b1", Title: "Monsoon"}},
		contacts: []domain.Contact{{ID: "c1", Name: "Asha"}},
		settings: domain.SiteSettings{Name: "Avantika Travels"},
	}
	r, cache, st := newRefresher(fc, staticToken("tok"))

	if err := r.RefreshAll(context.Background(), 3); err != nil {
		t.Fatalf("refresh all: %v", err)
	}
	if len(st.Places()) != 1 || len(st.Packages()) != 1 || len(st.Blogs()) != 1 || len(st.Contacts()) != 1 {
		t.Fatalf("store not fully replaced")
	}
	if st.Settings().Name != "Avantika Travels" {
		t.Fatalf("settings not replaced")
	}
	for _, key := range []string{"collection:places", "collection:packages", "collection:blogs", "collection:settings"} {
		if !cache.has(key) {
			t.Fatalf("cache not reprimed for %s", key)
		}
	}
	if cache.has("collection:contacts") {
		t.Fatalf("contacts must never be cached")
	}
}

func TestRefresher_MissingSessionOnlySkipsContacts(t *testing.T) {
	fc := &fakeClient{places: []domain.Place{{ID: "p1"}}}
	r, _, st := newRefresher(fc, noToken{})

	if err := r.RefreshAll(context.Background(), 2); err != nil {
		t.Fatalf("a missing session must not fail the sweep: %v", err)
	}
	if len(st.Places()) != 1 {
		t.Fatalf("public collections should still refresh")
	}
	if len(st.Contacts()) != 0 {
		t.Fatalf("contacts should be untouched without a session")
	}
}

func TestRefresher_BackendFailureSurfaces(t *testing.T) {
	fc := &fakeClient{err: &domain.RequestError{Status: 503, Message: "maintenance"}}
	r, _, _ := newRefresher(fc, staticToken("tok"))

	if err := r.RefreshAll(context.Background(), 2); err == nil {
		t.Fatalf("expected joined refresh errors")
	}
}

func TestRefresher_ReplaceIsWholesale(t *testing.T) {
	fc := &fakeClient{places: []domain.Place{{ID: "p2", Title: "Indore"}}}
	r, _, st := newRefresher(fc, staticToken("tok"))

	st.ReplacePlaces([]domain.Place{{ID: "p1", Title: "Stale"}, {ID: "p9", Title: "Gone"}})
	if err := r.RefreshPlaces(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	got := st.Places()
	if len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("refresh must replace wholesale, got %+v", got)
	}
}

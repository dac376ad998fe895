package app_test

import (
	"fmt"
	"testing"
	"time"

	"avantika_admin/internal/app"
	"avantika_admin/internal/domain"
)

func day(n int) time.Time {
	return time.Date(2024, 3, n, 0, 0, 0, 0, time.UTC)
}

func sampleContacts() []domain.Contact {
	return []domain.Contact{
		{ID: "c1", Name: "Asha Verma", Email: "asha@example.com", Message: "Trip to Ujjain please", Status: "pending", CreatedAt: day(1)},
		{ID: "c2", Name: "Bharat Rao", Email: "bharat@example.com", Message: "Indore food trail", Status: "resolved", CreatedAt: day(3)},
		{ID: "c3", Name: "Chitra Nair", Email: "chitra@example.com", Subject: "Ujjain darshan", Message: "Group booking", Status: "pending", CreatedAt: day(2)},
		{ID: "c4", Name: "Deepak Jain", Email: "deepak@example.com", Message: "Cancel my booking", Status: "archived", CreatedAt: day(4)},
	}
}

func TestDeriveView_SearchAndFilterCompose(t *testing.T) {
	cs := sampleContacts()

	// displayed set == (matches search) ∩ (matches filter)
	out := app.DeriveView(cs, app.ViewQuery{Search: "ujjain", Filter: "pending"}, app.ContactView())
	if out.Total != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", out.Total, out.Items)
	}
	for _, c := range out.Items {
		if c.Status != "pending" {
			t.Fatalf("filter leak: %+v", c)
		}
	}

	// search matches ANY configured field (subject for c3, message for c1)
	out = app.DeriveView(cs, app.ViewQuery{Search: "UJJAIN", Filter: app.FilterAll}, app.ContactView())
	if out.Total != 2 {
		t.Fatalf("case-insensitive any-field match failed: %d", out.Total)
	}
}

func TestDeriveView_EmptySearchRestoresFilteredList(t *testing.T) {
	cs := sampleContacts()

	// zero matches -> empty page
	out := app.DeriveView(cs, app.ViewQuery{Search: "no-such-term", Filter: "pending"}, app.ContactView())
	if out.Total != 0 || len(out.Items) != 0 {
		t.Fatalf("expected empty result, got %+v", out)
	}

	// clearing the search restores the status-filtered list
	out = app.DeriveView(cs, app.ViewQuery{Filter: "pending"}, app.ContactView())
	if out.Total != 2 {
		t.Fatalf("expected the 2 pending contacts back, got %d", out.Total)
	}
}

func TestDeriveView_SortKeys(t *testing.T) {
	cs := sampleContacts()

	newest := app.DeriveView(cs, app.ViewQuery{Sort: app.SortNewest}, app.ContactView())
	if newest.Items[0].ID != "c4" || newest.Items[3].ID != "c1" {
		t.Fatalf("newest-first order wrong: %v", ids(newest.Items))
	}

	oldest := app.DeriveView(cs, app.ViewQuery{Sort: app.SortOldest}, app.ContactView())
	if oldest.Items[0].ID != "c1" {
		t.Fatalf("oldest-first order wrong: %v", ids(oldest.Items))
	}

	byName := app.DeriveView(cs, app.ViewQuery{Sort: app.SortName}, app.ContactView())
	if byName.Items[0].Name != "Asha Verma" || byName.Items[3].Name != "Deepak Jain" {
		t.Fatalf("name order wrong: %v", ids(byName.Items))
	}
}

func TestDeriveView_SortIsStable(t *testing.T) {
	same := day(5)
	cs := []domain.Contact{
		{ID: "a", CreatedAt: same},
		{ID: "b", CreatedAt: same},
		{ID: "c", CreatedAt: same},
	}
	out := app.DeriveView(cs, app.ViewQuery{Sort: app.SortNewest}, app.ContactView())
	if out.Items[0].ID != "a" || out.Items[1].ID != "b" || out.Items[2].ID != "c" {
		t.Fatalf("ties must keep collection order: %v", ids(out.Items))
	}
}

func TestDeriveView_Pagination(t *testing.T) {
	var blogs []domain.Blog
	for i := 0; i < 21; i++ {
		blogs = append(blogs, domain.Blog{
			ID:   fmt.Sprintf("b%02d", i),
			Date: day(1), // equal dates: stable sort keeps insertion order
		})
	}

	p1 := app.DeriveView(blogs, app.ViewQuery{Page: 1}, app.BlogView())
	if p1.Pages != 3 || len(p1.Items) != 9 {
		t.Fatalf("page 1: pages=%d len=%d", p1.Pages, len(p1.Items))
	}

	// last page holds N mod P items
	p3 := app.DeriveView(blogs, app.ViewQuery{Page: 3}, app.BlogView())
	if len(p3.Items) != 3 {
		t.Fatalf("last page: %d items", len(p3.Items))
	}

	// past-the-end requests clamp to the last page
	p9 := app.DeriveView(blogs, app.ViewQuery{Page: 9}, app.BlogView())
	if p9.Page != 3 || len(p9.Items) != 3 {
		t.Fatalf("clamp failed: page=%d len=%d", p9.Page, len(p9.Items))
	}

	// exact multiple: full last page
	exact := app.DeriveView(blogs[:18], app.ViewQuery{Page: 2}, app.BlogView())
	if exact.Pages != 2 || len(exact.Items) != 9 {
		t.Fatalf("exact multiple: pages=%d len=%d", exact.Pages, len(exact.Items))
	}

	// empty collection: page 1, no items
	empty := app.DeriveView(nil, app.ViewQuery{Page: 5}, app.BlogView())
	if empty.Page != 1 || len(empty.Items) != 0 || empty.Pages != 0 {
		t.Fatalf("empty collection: %+v", empty)
	}
}

func TestDeriveView_DoesNotMutateSource(t *testing.T) {
	cs := sampleContacts()
	_ = app.DeriveView(cs, app.ViewQuery{Sort: app.SortName}, app.ContactView())
	if cs[0].ID != "c1" || cs[3].ID != "c4" {
		t.Fatalf("source collection was reordered: %v", ids(cs))
	}
}

func ids(cs []domain.Contact) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

package app

import (
	"sort"
	"strings"
	"time"

	"avantika_admin/internal/domain"
)

// DefaultPageSize matches the admin grid: 9 cards per page.
const DefaultPageSize = 9

// FilterAll is the sentinel that disables categorical filtering.
const FilterAll = "all"

type SortKey string

const (
	SortNewest SortKey = "newest"
	SortOldest SortKey = "oldest"
	SortName   SortKey = "name"
)

// ViewQuery is everything the list screens let the admin vary: free-text
// search, one categorical filter, a sort key, and a page number.
type ViewQuery struct {
	Search   string
	Filter   string
	Sort     SortKey
	Page     int
	PageSize int // 0 means DefaultPageSize
}

// ViewConfig tells DeriveView how to read one entity type. Nil accessors
// disable the corresponding axis.
type ViewConfig[T any] struct {
	SearchFields func(T) []string
	FilterField  func(T) string
	Date         func(T) time.Time
	Name         func(T) string
}

type ViewPage[T any] struct {
	Items []T  `json:"items"`
	Page  int  `json:"page"`
	Pages int  `json:"pages"`
	Total int  `json:"total"`
}

// DeriveView computes the displayed subset/order of a collection. It never
// mutates items and holds no state: recompute whenever any input changes.
// An item matches the search when ANY configured field contains the term
// (case-insensitive); filtering is an exact match with the "all" sentinel;
// sorting is stable so ties keep collection order; out-of-range pages are
// clamped.
func DeriveView[T any](items []T, q ViewQuery, cfg ViewConfig[T]) ViewPage[T] {
	matched := make([]T, 0, len(items))
	term := strings.ToLower(strings.TrimSpace(q.Search))
	for _, it := range items {
		if term != "" && cfg.SearchFields != nil && !matchesSearch(cfg.SearchFields(it), term) {
			continue
		}
		if q.Filter != "" && q.Filter != FilterAll && cfg.FilterField != nil && cfg.FilterField(it) != q.Filter {
			continue
		}
		matched = append(matched, it)
	}

	switch q.Sort {
	case SortOldest:
		if cfg.Date != nil {
			sort.SliceStable(matched, func(i, j int) bool {
				return cfg.Date(matched[i]).Before(cfg.Date(matched[j]))
			})
		}
	case SortName:
		if cfg.Name != nil {
			sort.SliceStable(matched, func(i, j int) bool {
				return strings.ToLower(cfg.Name(matched[i])) < strings.ToLower(cfg.Name(matched[j]))
			})
		}
	default: // newest first
		if cfg.Date != nil {
			sort.SliceStable(matched, func(i, j int) bool {
				return cfg.Date(matched[i]).After(cfg.Date(matched[j]))
			})
		}
	}

	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(matched)
	pages := (total + size - 1) / size

	page := q.Page
	if page < 1 {
		page = 1
	}
	if pages > 0 && page > pages {
		page = pages // clamp, never an empty slice past the end
	}

	lo := (page - 1) * size
	hi := lo + size
	if lo > total {
		lo = total
	}
	if hi > total {
		hi = total
	}

	return ViewPage[T]{Items: matched[lo:hi], Page: page, Pages: pages, Total: total}
}

func matchesSearch(fields []string, term string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// ---- per-entity view configs ----

func ContactView() ViewConfig[domain.Contact] {
	return ViewConfig[domain.Contact]{
		SearchFields: func(c domain.Contact) []string {
			return []string{c.Name, c.Email, c.Subject, c.Message}
		},
		FilterField: func(c domain.Contact) string { return c.Status },
		Date:        func(c domain.Contact) time.Time { return c.CreatedAt },
		Name:        func(c domain.Contact) string { return c.Name },
	}
}

func BlogView() ViewConfig[domain.Blog] {
	return ViewConfig[domain.Blog]{
		SearchFields: func(b domain.Blog) []string { return []string{b.Title, b.Content} },
		FilterField:  func(b domain.Blog) string { return b.Category },
		Date:         func(b domain.Blog) time.Time { return b.Date },
		Name:         func(b domain.Blog) string { return b.Title },
	}
}

func PlaceView() ViewConfig[domain.Place] {
	return ViewConfig[domain.Place]{
		SearchFields: func(p domain.Place) []string { return []string{p.Title, p.Location} },
		FilterField:  func(p domain.Place) string { return p.Category },
		Date:         func(p domain.Place) time.Time { return p.CreatedAt },
		Name:         func(p domain.Place) string { return p.Title },
	}
}

func PackageView() ViewConfig[domain.TourPackage] {
	return ViewConfig[domain.TourPackage]{
		SearchFields: func(p domain.TourPackage) []string { return []string{p.Name, p.Location} },
		FilterField:  func(p domain.TourPackage) string { return p.Location },
		Date:         func(p domain.TourPackage) time.Time { return p.CreatedAt },
		Name:         func(p domain.TourPackage) string { return p.Name },
	}
}

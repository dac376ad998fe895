package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"avantika_admin/internal/domain"
)

// fakeCache is a map-backed domain.Cache that counts traffic.
type fakeCache struct {
	mu     sync.Mutex
	data   map[string][]byte
	gets   int
	sets   int
	dels   int
	failed bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) Get(_ context.Context, key string, dst any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.failed {
		return false, errors.New("cache down")
	}
	b, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (f *fakeCache) Set(_ context.Context, key string, v any, _ int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	if f.failed {
		return errors.New("cache down")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f.data[key] = b
	return nil
}

func (f *fakeCache) Del(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dels++
	delete(f.data, key)
	return nil
}

func (f *fakeCache) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok
}

// fakeClient implements domain.ResourceClient in memory and records the
// last mutating call so tests can assert on payload shape.
type fakeClient struct {
	mu sync.Mutex

	places   []domain.Place
	packages []domain.TourPackage
	blogs    []domain.Blog
	contacts []domain.Contact
	settings domain.SiteSettings

	err        error // returned by every call when set
	calls      []string
	lastFields map[string]any
	lastToken  string
}

func (f *fakeClient) record(name, token string) error {
	f.calls = append(f.calls, name)
	f.lastToken = token
	return f.err
}

func (f *fakeClient) ListPlaces(context.Context) ([]domain.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListPlaces", ""); err != nil {
		return nil, err
	}
	return append([]domain.Place(nil), f.places...), nil
}

func (f *fakeClient) CreatePlace(_ context.Context, p domain.Place, token string) (domain.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreatePlace", token); err != nil {
		return domain.Place{}, err
	}
	if p.ID == "" {
		p.ID = fmt.Sprintf("p%d", len(f.places)+1)
	}
	f.places = append(f.places, p)
	return p, nil
}

func (f *fakeClient) UpdatePlace(_ context.Context, id string, fields map[string]any, token string) (domain.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdatePlace", token); err != nil {
		return domain.Place{}, err
	}
	f.lastFields = fields
	for i := range f.places {
		if f.places[i].ID == id {
			if t, ok := fields["title"].(string); ok {
				f.places[i].Title = t
			}
			return f.places[i], nil
		}
	}
	return domain.Place{}, &domain.RequestError{Status: 404, Message: "place not found"}
}

func (f *fakeClient) DeletePlace(_ context.Context, id, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeletePlace", token); err != nil {
		return err
	}
	for i := range f.places {
		if f.places[i].ID == id {
			f.places = append(f.places[:i], f.places[i+1:]...)
			return nil
		}
	}
	return &domain.RequestError{Status: 404, Message: "place not found"}
}

func (f *fakeClient) TogglePlaceActive(_ context.Context, id, token string) (domain.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("TogglePlaceActive", token); err != nil {
		return domain.Place{}, err
	}
	for i := range f.places {
		if f.places[i].ID == id {
			f.places[i].IsActive = !f.places[i].IsActive
			return f.places[i], nil
		}
	}
	return domain.Place{}, &domain.RequestError{Status: 404, Message: "place not found"}
}

func (f *fakeClient) ListPackages(context.Context) ([]domain.TourPackage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListPackages", ""); err != nil {
		return nil, err
	}
	return append([]domain.TourPackage(nil), f.packages...), nil
}

func (f *fakeClient) CreatePackage(_ context.Context, p domain.TourPackage, token string) (domain.TourPackage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreatePackage", token); err != nil {
		return domain.TourPackage{}, err
	}
	if p.ID == "" {
		p.ID = fmt.Sprintf("tp%d", len(f.packages)+1)
	}
	f.packages = append(f.packages, p)
	return p, nil
}

func (f *fakeClient) UpdatePackage(_ context.Context, id string, fields map[string]any, token string) (domain.TourPackage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdatePackage", token); err != nil {
		return domain.TourPackage{}, err
	}
	f.lastFields = fields
	for i := range f.packages {
		if f.packages[i].ID == id {
			return f.packages[i], nil
		}
	}
	return domain.TourPackage{}, &domain.RequestError{Status: 404, Message: "package not found"}
}

func (f *fakeClient) DeletePackage(_ context.Context, id, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeletePackage", token); err != nil {
		return err
	}
	for i := range f.packages {
		if f.packages[i].ID == id {
			f.packages = append(f.packages[:i], f.packages[i+1:]...)
			return nil
		}
	}
	return &domain.RequestError{Status: 404, Message: "package not found"}
}

func (f *fakeClient) ListBlogs(context.Context) ([]domain.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListBlogs", ""); err != nil {
		return nil, err
	}
	return append([]domain.Blog(nil), f.blogs...), nil
}

func (f *fakeClient) CreateBlog(_ context.Context, b domain.Blog, token string) (domain.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateBlog", token); err != nil {
		return domain.Blog{}, err
	}
	if b.ID == "" {
		b.ID = fmt.Sprintf("b%d", len(f.blogs)+1)
	}
	f.blogs = append(f.blogs, b)
	return b, nil
}

func (f *fakeClient) UpdateBlog(_ context.Context, id string, fields map[string]any, token string) (domain.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateBlog", token); err != nil {
		return domain.Blog{}, err
	}
	f.lastFields = fields
	for i := range f.blogs {
		if f.blogs[i].ID == id {
			return f.blogs[i], nil
		}
	}
	return domain.Blog{}, &domain.RequestError{Status: 404, Message: "blog not found"}
}

func (f *fakeClient) DeleteBlog(_ context.Context, id, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteBlog", token); err != nil {
		return err
	}
	for i := range f.blogs {
		if f.blogs[i].ID == id {
			f.blogs = append(f.blogs[:i], f.blogs[i+1:]...)
			return nil
		}
	}
	return &domain.RequestError{Status: 404, Message: "blog not found"}
}

func (f *fakeClient) ToggleBlogPublished(_ context.Context, id, token string) (domain.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ToggleBlogPublished", token); err != nil {
		return domain.Blog{}, err
	}
	for i := range f.blogs {
		if f.blogs[i].ID == id {
			f.blogs[i].Published = !f.blogs[i].Published
			return f.blogs[i], nil
		}
	}
	return domain.Blog{}, &domain.RequestError{Status: 404, Message: "blog not found"}
}

func (f *fakeClient) ListContacts(_ context.Context, token string) ([]domain.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListContacts", token); err != nil {
		return nil, err
	}
	return append([]domain.Contact(nil), f.contacts...), nil
}

func (f *fakeClient) UpdateContact(_ context.Context, id string, fields map[string]any, token string) (domain.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateContact", token); err != nil {
		return domain.Contact{}, err
	}
	f.lastFields = fields
	for i := range f.contacts {
		if f.contacts[i].ID == id {
			if s, ok := fields["status"].(string); ok {
				f.contacts[i].Status = s
			}
			return f.contacts[i], nil
		}
	}
	return domain.Contact{}, &domain.RequestError{Status: 404, Message: "contact not found"}
}

func (f *fakeClient) DeleteContact(_ context.Context, id, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteContact", token); err != nil {
		return err
	}
	for i := range f.contacts {
		if f.contacts[i].ID == id {
			f.contacts = append(f.contacts[:i], f.contacts[i+1:]...)
			return nil
		}
	}
	return &domain.RequestError{Status: 404, Message: "contact not found"}
}

func (f *fakeClient) GetSettings(context.Context) (domain.SiteSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetSettings", ""); err != nil {
		return domain.SiteSettings{}, err
	}
	return f.settings, nil
}

func (f *fakeClient) UpdateSettings(_ context.Context, s domain.SiteSettings, token string) (domain.SiteSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateSettings", token); err != nil {
		return domain.SiteSettings{}, err
	}
	f.settings = s
	return s, nil
}

func (f *fakeClient) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

package app

import (
	"context"
	"time"

	"avantika_admin/internal/domain"
	"avantika_admin/internal/store"
)

// Collection cache keys. Contacts are deliberately absent: admin-only data
// never lands in Redis.
const (
	keyPlaces   = "collection:places"
	keyPackages = "collection:packages"
	keyBlogs    = "collection:blogs"
	keySettings = "collection:settings"
)

// Catalog is the single gateway between the admin screens and the backend:
// collection reads go cache-first, mutations go straight to the backend and
// then patch the local store and invalidate the cache. No caller mutates
// the store directly.
type Catalog struct {
	client domain.ResourceClient
	cache  domain.Cache
	store  *store.Store
	ttl    time.Duration
}

func NewCatalog(c domain.ResourceClient, cache domain.Cache, st *store.Store, ttl time.Duration) *Catalog {
	return &Catalog{client: c, cache: cache, store: st, ttl: ttl}
}

func (c *Catalog) Store() *store.Store { return c.store }

func (c *Catalog) ttlSec() int { return int(c.ttl.Seconds()) }

// ---- reads (cache-aside) ----

func (c *Catalog) Places(ctx context.Context) ([]domain.Place, error) {
	var cached []domain.Place
	if ok, _ := c.cache.Get(ctx, keyPlaces, &cached); ok {
		c.store.ReplacePlaces(cached)
		return cached, nil
	}
	ps, err := c.client.ListPlaces(ctx)
	if err != nil {
		return nil, err
	}
	c.store.ReplacePlaces(ps)
	c.cacheSet(ctx, keyPlaces, ps)
	return c.store.Places(), nil
}

func (c *Catalog) Packages(ctx context.Context) ([]domain.TourPackage, error) {
	var cached []domain.TourPackage
	if ok, _ := c.cache.Get(ctx, keyPackages, &cached); ok {
		c.store.ReplacePackages(cached)
		return cached, nil
	}
	ps, err := c.client.ListPackages(ctx)
	if err != nil {
		return nil, err
	}
	c.store.ReplacePackages(ps)
	c.cacheSet(ctx, keyPackages, ps)
	return c.store.Packages(), nil
}

func (c *Catalog) Blogs(ctx context.Context) ([]domain.Blog, error) {
	var cached []domain.Blog
	if ok, _ := c.cache.Get(ctx, keyBlogs, &cached); ok {
		c.store.ReplaceBlogs(cached)
		return cached, nil
	}
	bs, err := c.client.ListBlogs(ctx)
	if err != nil {
		return nil, err
	}
	c.store.ReplaceBlogs(bs)
	c.cacheSet(ctx, keyBlogs, bs)
	return c.store.Blogs(), nil
}

// Contacts carries admin data, so it is fetched with the bearer token and
// never cached in Redis.
func (c *Catalog) Contacts(ctx context.Context, token string) ([]domain.Contact, error) {
	cs, err := c.client.ListContacts(ctx, token)
	if err != nil {
		return nil, err
	}
	c.store.ReplaceContacts(cs)
	return c.store.Contacts(), nil
}

func (c *Catalog) Settings(ctx context.Context) (domain.SiteSettings, error) {
	var cached domain.SiteSettings
	if ok, _ := c.cache.Get(ctx, keySettings, &cached); ok {
		c.store.SetSettings(cached)
		return cached, nil
	}
	s, err := c.client.GetSettings(ctx)
	if err != nil {
		return domain.SiteSettings{}, err
	}
	c.store.SetSettings(s)
	c.cacheSet(ctx, keySettings, s)
	return s, nil
}

// ---- mutations (backend first, then store patch + cache invalidation) ----

func (c *Catalog) CreatePlace(ctx context.Context, p domain.Place, token string) (domain.Place, error) {
	out, err := c.client.CreatePlace(ctx, p, token)
	if err != nil {
		return domain.Place{}, err
	}
	c.store.UpsertPlace(out)
	_ = c.cache.Del(ctx, keyPlaces)
	return out, nil
}

func (c *Catalog) UpdatePlace(ctx context.Context, id string, fields map[string]any, token string) (domain.Place, error) {
	out, err := c.client.UpdatePlace(ctx, id, fields, token)
	if err != nil {
		return domain.Place{}, err
	}
	c.store.UpsertPlace(out)
	_ = c.cache.Del(ctx, keyPlaces)
	return out, nil
}

func (c *Catalog) DeletePlace(ctx context.Context, id, token string) error {
	if err := c.client.DeletePlace(ctx, id, token); err != nil {
		return err
	}
	c.store.RemovePlace(id)
	_ = c.cache.Del(ctx, keyPlaces)
	return nil
}

func (c *Catalog) TogglePlaceActive(ctx context.Context, id, token string) (domain.Place, error) {
	out, err := c.client.TogglePlaceActive(ctx, id, token)
	if err != nil {
		return domain.Place{}, err
	}
	c.store.UpsertPlace(out)
	_ = c.cache.Del(ctx, keyPlaces)
	return out, nil
}

func (c *Catalog) CreatePackage(ctx context.Context, p domain.TourPackage, token string) (domain.TourPackage, error) {
	out, err := c.client.CreatePackage(ctx, p, token)
	if err != nil {
		return domain.TourPackage{}, err
	}
	c.store.UpsertPackage(out)
	_ = c.cache.Del(ctx, keyPackages)
	return out, nil
}

func (c *Catalog) UpdatePackage(ctx context.Context, id string, fields map[string]any, token string) (domain.TourPackage, error) {
	out, err := c.client.UpdatePackage(ctx, id, fields, token)
	if err != nil {
		return domain.TourPackage{}, err
	}
	c.store.UpsertPackage(out)
	_ = c.cache.Del(ctx, keyPackages)
	return out, nil
}

func (c *Catalog) DeletePackage(ctx context.Context, id, token string) error {
	if err := c.client.DeletePackage(ctx, id, token); err != nil {
		return err
	}
	c.store.RemovePackage(id)
	_ = c.cache.Del(ctx, keyPackages)
	return nil
}

func (c *Catalog) CreateBlog(ctx context.Context, b domain.Blog, token string) (domain.Blog, error) {
	out, err := c.client.CreateBlog(ctx, b, token)
	if err != nil {
		return domain.Blog{}, err
	}
	c.store.UpsertBlog(out)
	_ = c.cache.Del(ctx, keyBlogs)
	return out, nil
}

func (c *Catalog) UpdateBlog(ctx context.Context, id string, fields map[string]any, token string) (domain.Blog, error) {
	out, err := c.client.UpdateBlog(ctx, id, fields, token)
	if err != nil {
		return domain.Blog{}, err
	}
	c.store.UpsertBlog(out)
	_ = c.cache.Del(ctx, keyBlogs)
	return out, nil
}

func (c *Catalog) DeleteBlog(ctx context.Context, id, token string) error {
	if err := c.client.DeleteBlog(ctx, id, token); err != nil {
		return err
	}
	c.store.RemoveBlog(id)
	_ = c.cache.Del(ctx, keyBlogs)
	return nil
}

func (c *Catalog) ToggleBlogPublished(ctx context.Context, id, token string) (domain.Blog, error) {
	out, err := c.client.ToggleBlogPublished(ctx, id, token)
	if err != nil {
		return domain.Blog{}, err
	}
	c.store.UpsertBlog(out)
	_ = c.cache.Del(ctx, keyBlogs)
	return out, nil
}

// SetContactStatus is the quick-action path: a status-only patch that must
// leave every other field intact.
func (c *Catalog) SetContactStatus(ctx context.Context, id, status, token string) (domain.Contact, error) {
	if !domain.ValidStatus(status) {
		return domain.Contact{}, &domain.ValidationError{Field: "status", Reason: "unknown status " + status}
	}
	out, err := c.client.UpdateContact(ctx, id, map[string]any{"status": status}, token)
	if err != nil {
		return domain.Contact{}, err
	}
	c.store.UpsertContact(out)
	return out, nil
}

func (c *Catalog) UpdateContact(ctx context.Context, id string, fields map[string]any, token string) (domain.Contact, error) {
	if s, ok := fields["status"].(string); ok && !domain.ValidStatus(s) {
		return domain.Contact{}, &domain.ValidationError{Field: "status", Reason: "unknown status " + s}
	}
	out, err := c.client.UpdateContact(ctx, id, fields, token)
	if err != nil {
		return domain.Contact{}, err
	}
	c.store.UpsertContact(out)
	return out, nil
}

func (c *Catalog) DeleteContact(ctx context.Context, id, token string) error {
	if err := c.client.DeleteContact(ctx, id, token); err != nil {
		return err
	}
	c.store.RemoveContact(id)
	return nil
}

func (c *Catalog) SaveSettings(ctx context.Context, s domain.SiteSettings, token string) (domain.SiteSettings, error) {
	out, err := c.client.UpdateSettings(ctx, s, token)
	if err != nil {
		return domain.SiteSettings{}, err
	}
	c.store.SetSettings(out)
	_ = c.cache.Del(ctx, keySettings)
	return out, nil
}

// cacheSet failures only cost the next read a refetch.
func (c *Catalog) cacheSet(ctx context.Context, key string, v any) {
	_ = c.cache.Set(ctx, key, v, c.ttlSec())
}

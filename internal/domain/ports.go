package domain

import "context"

// Cache is the shared-cache port (Redis in production, fakes in tests).
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// TokenSource yields the admin bearer credential. It is read before every
// mutating call, never written by this module.
type TokenSource interface {
	Token() (string, error)
}

// ResourceClient is the full surface of the remote backend API.
type ResourceClient interface {
	ListPlaces(ctx context.Context) ([]Place, error)
	CreatePlace(ctx context.Context, p Place, token string) (Place, error)
	UpdatePlace(ctx context.Context, id string, fields map[string]any, token string) (Place, error)
	DeletePlace(ctx context.Context, id, token string) error
	TogglePlaceActive(ctx context.Context, id, token string) (Place, error)

	ListPackages(ctx context.Context) ([]TourPackage, error)
	CreatePackage(ctx context.Context, p TourPackage, token string) (TourPackage, error)
	UpdatePackage(ctx context.Context, id string, fields map[string]any, token string) (TourPackage, error)
	DeletePackage(ctx context.Context, id, token string) error

	ListBlogs(ctx context.Context) ([]Blog, error)
	CreateBlog(ctx context.Context, b Blog, token string) (Blog, error)
	UpdateBlog(ctx context.Context, id string, fields map[string]any, token string) (Blog, error)
	DeleteBlog(ctx context.Context, id, token string) error
	ToggleBlogPublished(ctx context.Context, id, token string) (Blog, error)

	ListContacts(ctx context.Context, token string) ([]Contact, error)
	UpdateContact(ctx context.Context, id string, fields map[string]any, token string) (Contact, error)
	DeleteContact(ctx context.Context, id, token string) error

	GetSettings(ctx context.Context) (SiteSettings, error)
	UpdateSettings(ctx context.Context, s SiteSettings, token string) (SiteSettings, error)
}

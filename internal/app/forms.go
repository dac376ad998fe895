package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"avantika_admin/internal/domain"
)

// PlaceForm adds gallery staging on top of the generic controller: pasted
// URLs enter the draft immediately, picked files wait until Submit to be
// uploaded.
type PlaceForm struct {
	*Form[domain.Place]

	mu     sync.Mutex
	staged []domain.ImageRef
}

func NewPlaceForm(cat *Catalog, tokens domain.TokenSource, up domain.Uploader, n *Notifier) *PlaceForm {
	pf := &PlaceForm{}
	pf.Form = NewForm(FormHooks[domain.Place]{
		Entity:   "Place",
		Defaults: defaultPlace,
		ID:       func(p domain.Place) string { return p.ID },
		Validate: validatePlace,
		Prepare:  pf.uploadStaged(up),
		Stamp:    func(p *domain.Place, now time.Time) { p.CreatedAt = now },
		Create: func(ctx context.Context, p domain.Place, token string) (domain.Place, error) {
			return cat.CreatePlace(ctx, p, token)
		},
		Update: func(ctx context.Context, id string, p domain.Place, token string) (domain.Place, error) {
			return cat.UpdatePlace(ctx, id, fieldsOf(p), token)
		},
	}, tokens, n)
	return pf
}

func defaultPlace() domain.Place {
	return domain.Place{Category: domain.DefaultPlaceCategory, IsActive: true}
}

func validatePlace(p domain.Place) error {
	switch {
	case strings.TrimSpace(p.Title) == "":
		return &domain.ValidationError{Field: "title", Reason: "required"}
	case strings.TrimSpace(p.Location) == "":
		return &domain.ValidationError{Field: "location", Reason: "required"}
	case strings.TrimSpace(p.Description) == "":
		return &domain.ValidationError{Field: "description", Reason: "required"}
	case p.Rating < 0 || p.Rating > 5:
		return &domain.ValidationError{Field: "rating", Reason: "must be between 0 and 5"}
	case p.Cleanliness < 0 || p.Cleanliness > 10:
		return &domain.ValidationError{Field: "cleanliness", Reason: "must be between 0 and 10"}
	}
	return nil
}

func (pf *PlaceForm) OpenNew() {
	pf.clearStaged()
	pf.Form.OpenNew()
}

func (pf *PlaceForm) OpenEdit(p domain.Place) {
	pf.clearStaged()
	pf.Form.OpenEdit(p)
}

func (pf *PlaceForm) Cancel() {
	pf.clearStaged()
	pf.Form.Cancel()
}

// AddImageURL appends a pasted image URL to the gallery right away, under a
// provisional public id.
func (pf *PlaceForm) AddImageURL(url string) {
	img := StageRemoteImage(url)
	if img.URL == "" {
		return
	}
	pf.Edit(func(p *domain.Place) { p.Images = append(p.Images, img) })
}

// AttachFile stages a picked file; it is uploaded when the form submits.
func (pf *PlaceForm) AttachFile(name string, data []byte) {
	pf.mu.Lock()
	defer pf.mu.Unlock()
	pf.staged = append(pf.staged, domain.LocalImage(name, data))
}

func (pf *PlaceForm) RemoveImage(idx int) {
	pf.Edit(func(p *domain.Place) {
		if idx < 0 || idx >= len(p.Images) {
			return
		}
		p.Images = append(p.Images[:idx], p.Images[idx+1:]...)
	})
}

func (pf *PlaceForm) StagedCount() int {
	pf.mu.Lock()
	defer pf.mu.Unlock()
	return len(pf.staged)
}

func (pf *PlaceForm) clearStaged() {
	pf.mu.Lock()
	defer pf.mu.Unlock()
	pf.staged = nil
}

// uploadStaged resolves every staged file into the draft's gallery. A
// failed upload aborts the submit and keeps the files staged for retry.
func (pf *PlaceForm) uploadStaged(up domain.Uploader) func(context.Context, *domain.Place) error {
	return func(ctx context.Context, p *domain.Place) error {
		pf.mu.Lock()
		refs := append([]domain.ImageRef(nil), pf.staged...)
		pf.mu.Unlock()

		uploaded := make([]domain.Image, 0, len(refs))
		for _, ref := range refs {
			img, err := ref.Resolve(ctx, up)
			if err != nil {
				return err
			}
			uploaded = append(uploaded, img)
		}
		p.Images = append(p.Images, uploaded...)
		pf.clearStaged()
		return nil
	}
}

// BlogForm carries one pending cover image alongside the generic form.
type BlogForm struct {
	*Form[domain.Blog]

	mu      sync.Mutex
	pending domain.ImageRef
}

func NewBlogForm(cat *Catalog, tokens domain.TokenSource, up domain.Uploader, n *Notifier) *BlogForm {
	bf := &BlogForm{}
	bf.Form = NewForm(FormHooks[domain.Blog]{
		Entity:   "Blog",
		Defaults: defaultBlog,
		ID:       func(b domain.Blog) string { return b.ID },
		Validate: validateBlog,
		Prepare:  bf.resolveCover(up),
		Stamp:    func(b *domain.Blog, now time.Time) { b.Date = now },
		Create: func(ctx context.Context, b domain.Blog, token string) (domain.Blog, error) {
			return cat.CreateBlog(ctx, b, token)
		},
		Update: func(ctx context.Context, id string, b domain.Blog, token string) (domain.Blog, error) {
			return cat.UpdateBlog(ctx, id, fieldsOf(b), token)
		},
	}, tokens, n)
	return bf
}

func defaultBlog() domain.Blog {
	return domain.Blog{Category: domain.DefaultBlogCategory, Published: true}
}

func validateBlog(b domain.Blog) error {
	switch {
	case strings.TrimSpace(b.Title) == "":
		return &domain.ValidationError{Field: "title", Reason: "required"}
	case strings.TrimSpace(b.Content) == "":
		return &domain.ValidationError{Field: "content", Reason: "required"}
	case strings.TrimSpace(b.Author) == "":
		return &domain.ValidationError{Field: "author", Reason: "required"}
	}
	return nil
}

func (bf *BlogForm) OpenNew() {
	bf.setPending(domain.NoImage())
	bf.Form.OpenNew()
}

func (bf *BlogForm) OpenEdit(b domain.Blog) {
	bf.setPending(domain.NoImage())
	bf.Form.OpenEdit(b)
}

func (bf *BlogForm) Cancel() {
	bf.setPending(domain.NoImage())
	bf.Form.Cancel()
}

// SetCoverFile stages a new cover; the current one stays in place until the
// upload succeeds on Submit.
func (bf *BlogForm) SetCoverFile(name string, data []byte) {
	bf.setPending(domain.LocalImage(name, data))
}

func (bf *BlogForm) setPending(ref domain.ImageRef) {
	bf.mu.Lock()
	defer bf.mu.Unlock()
	bf.pending = ref
}

func (bf *BlogForm) resolveCover(up domain.Uploader) func(context.Context, *domain.Blog) error {
	return func(ctx context.Context, b *domain.Blog) error {
		bf.mu.Lock()
		ref := bf.pending
		bf.mu.Unlock()
		if ref.IsZero() {
			return nil
		}
		img, err := ref.Resolve(ctx, up)
		if err != nil {
			return err
		}
		b.Image = img
		bf.setPending(domain.NoImage())
		return nil
	}
}

// AddTag and RemoveTag operate on the open draft.
func (bf *BlogForm) AddTag(tag string) {
	bf.Edit(func(b *domain.Blog) { b.Tags = AddTag(b.Tags, tag) })
}

func (bf *BlogForm) RemoveTag(tag string) {
	bf.Edit(func(b *domain.Blog) { b.Tags = RemoveTag(b.Tags, tag) })
}

// NewPackageForm builds the tour-package dialog. A blank slug is derived
// from the name at submit time; the backend still enforces uniqueness.
func NewPackageForm(cat *Catalog, tokens domain.TokenSource, n *Notifier) *Form[domain.TourPackage] {
	return NewForm(FormHooks[domain.TourPackage]{
		Entity:   "Package",
		Defaults: func() domain.TourPackage { return domain.TourPackage{} },
		ID:       func(p domain.TourPackage) string { return p.ID },
		Validate: validatePackage,
		Prepare: func(_ context.Context, p *domain.TourPackage) error {
			if strings.TrimSpace(p.Slug) == "" {
				p.Slug = Slugify(p.Name)
			}
			return nil
		},
		Stamp: func(p *domain.TourPackage, now time.Time) { p.CreatedAt = now },
		Create: func(ctx context.Context, p domain.TourPackage, token string) (domain.TourPackage, error) {
			return cat.CreatePackage(ctx, p, token)
		},
		Update: func(ctx context.Context, id string, p domain.TourPackage, token string) (domain.TourPackage, error) {
			return cat.UpdatePackage(ctx, id, fieldsOf(p), token)
		},
	}, tokens, n)
}

func validatePackage(p domain.TourPackage) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return &domain.ValidationError{Field: "name", Reason: "required"}
	case strings.TrimSpace(p.Location) == "":
		return &domain.ValidationError{Field: "location", Reason: "required"}
	case p.Price < 0:
		return &domain.ValidationError{Field: "price", Reason: "must not be negative"}
	}
	for i, d := range p.Itinerary {
		if d.Day != i+1 {
			return &domain.ValidationError{Field: "itinerary", Reason: "days must run sequentially from 1"}
		}
	}
	return nil
}

// NewSettingsForm edits the site-settings singleton. There is no create
// path; OpenEdit seeds from the current settings.
func NewSettingsForm(cat *Catalog, tokens domain.TokenSource, n *Notifier) *Form[domain.SiteSettings] {
	return NewForm(FormHooks[domain.SiteSettings]{
		Entity:   "Settings",
		Defaults: func() domain.SiteSettings { return domain.SiteSettings{} },
		ID:       func(domain.SiteSettings) string { return "settings" },
		Validate: func(s domain.SiteSettings) error {
			if strings.TrimSpace(s.Name) == "" {
				return &domain.ValidationError{Field: "name", Reason: "required"}
			}
			return nil
		},
		Create: func(ctx context.Context, s domain.SiteSettings, token string) (domain.SiteSettings, error) {
			return cat.SaveSettings(ctx, s, token)
		},
		Update: func(ctx context.Context, _ string, s domain.SiteSettings, token string) (domain.SiteSettings, error) {
			return cat.SaveSettings(ctx, s, token)
		},
	}, tokens, n)
}

// Slugify lowercases and hyphenates a display name for URL use.
func Slugify(s string) string {
	var b strings.Builder
	prevDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

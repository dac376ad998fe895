package app

import (
	"context"
	"sync"

	"avantika_admin/internal/domain"
)

// InspectorHooks binds the generic detail panel to one entity type.
type InspectorHooks[T any] struct {
	Entity string
	ID     func(T) string
	Delete func(ctx context.Context, id, token string) error
}

// Inspector is the read-only detail panel with a two-phase delete: the
// first request only arms a confirmation, nothing leaves the process until
// ConfirmDelete.
type Inspector[T any] struct {
	mu         sync.Mutex
	hooks      InspectorHooks[T]
	tokens     domain.TokenSource
	notifier   *Notifier
	item       T
	open       bool
	confirming bool
}

func NewInspector[T any](hooks InspectorHooks[T], tokens domain.TokenSource, n *Notifier) *Inspector[T] {
	return &Inspector[T]{hooks: hooks, tokens: tokens, notifier: n}
}

func (ip *Inspector[T]) Open(item T) {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	ip.item = item
	ip.open = true
	ip.confirming = false
}

func (ip *Inspector[T]) Close() {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	var zero T
	ip.item = zero
	ip.open = false
	ip.confirming = false
}

func (ip *Inspector[T]) Item() (T, bool) {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	return ip.item, ip.open
}

// refresh swaps the snapshot after a successful quick action, keeping the
// panel open.
func (ip *Inspector[T]) refresh(item T) {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	if ip.open && ip.hooks.ID(ip.item) == ip.hooks.ID(item) {
		ip.item = item
	}
}

func (ip *Inspector[T]) RequestDelete() {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	if ip.open {
		ip.confirming = true
	}
}

func (ip *Inspector[T]) CancelDelete() {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	ip.confirming = false
}

func (ip *Inspector[T]) ConfirmingDelete() bool {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	return ip.confirming
}

// ConfirmDelete performs the armed delete. Without a prior RequestDelete it
// is a no-op; on failure the panel stays open and the confirmation is
// disarmed.
func (ip *Inspector[T]) ConfirmDelete(ctx context.Context) error {
	ip.mu.Lock()
	if !ip.open || !ip.confirming {
		ip.mu.Unlock()
		return nil
	}
	id := ip.hooks.ID(ip.item)
	ip.mu.Unlock()

	token, err := ip.tokens.Token()
	if err == nil {
		err = ip.hooks.Delete(ctx, id, token)
	}

	ip.mu.Lock()
	defer ip.mu.Unlock()
	ip.confirming = false
	if err != nil {
		ip.notifier.Error(alertMessage(err))
		return err
	}
	var zero T
	ip.item = zero
	ip.open = false
	ip.notifier.Success(ip.hooks.Entity + " deleted successfully!")
	return nil
}

func (ip *Inspector[T]) token() (string, error) { return ip.tokens.Token() }

// ---- entity panels ----

type PlaceInspector struct {
	*Inspector[domain.Place]
	cat *Catalog
}

func NewPlaceInspector(cat *Catalog, tokens domain.TokenSource, n *Notifier) *PlaceInspector {
	return &PlaceInspector{
		Inspector: NewInspector(InspectorHooks[domain.Place]{
			Entity: "Place",
			ID:     func(p domain.Place) string { return p.ID },
			Delete: cat.DeletePlace,
		}, tokens, n),
		cat: cat,
	}
}

// ToggleActive flips site visibility from the panel without opening the
// edit form.
func (pi *PlaceInspector) ToggleActive(ctx context.Context) error {
	p, ok := pi.Item()
	if !ok {
		return nil
	}
	token, err := pi.token()
	if err != nil {
		pi.notifier.Error(alertMessage(err))
		return err
	}
	out, err := pi.cat.TogglePlaceActive(ctx, p.ID, token)
	if err != nil {
		pi.notifier.Error(alertMessage(err))
		return err
	}
	pi.refresh(out)
	if out.IsActive {
		pi.notifier.Success("Place activated!")
	} else {
		pi.notifier.Success("Place deactivated!")
	}
	return nil
}

type BlogInspector struct {
	*Inspector[domain.Blog]
	cat *Catalog
}

func NewBlogInspector(cat *Catalog, tokens domain.TokenSource, n *Notifier) *BlogInspector {
	return &BlogInspector{
		Inspector: NewInspector(InspectorHooks[domain.Blog]{
			Entity: "Blog",
			ID:     func(b domain.Blog) string { return b.ID },
			Delete: cat.DeleteBlog,
		}, tokens, n),
		cat: cat,
	}
}

func (bi *BlogInspector) TogglePublished(ctx context.Context) error {
	b, ok := bi.Item()
	if !ok {
		return nil
	}
	token, err := bi.token()
	if err != nil {
		bi.notifier.Error(alertMessage(err))
		return err
	}
	out, err := bi.cat.ToggleBlogPublished(ctx, b.ID, token)
	if err != nil {
		bi.notifier.Error(alertMessage(err))
		return err
	}
	bi.refresh(out)
	if out.Published {
		bi.notifier.Success("Blog published!")
	} else {
		bi.notifier.Success("Blog unpublished!")
	}
	return nil
}

type ContactInspector struct {
	*Inspector[domain.Contact]
	cat *Catalog
}

func NewContactInspector(cat *Catalog, tokens domain.TokenSource, n *Notifier) *ContactInspector {
	return &ContactInspector{
		Inspector: NewInspector(InspectorHooks[domain.Contact]{
			Entity: "Contact",
			ID:     func(c domain.Contact) string { return c.ID },
			Delete: cat.DeleteContact,
		}, tokens, n),
		cat: cat,
	}
}

// QuickActions lists the one-click transitions for the open contact.
func (ci *ContactInspector) QuickActions() []domain.StatusOption {
	c, ok := ci.Item()
	if !ok {
		return nil
	}
	return domain.QuickActions(c.Status)
}

// SetStatus is a status-only patch; notes and everything else stay as the
// backend has them.
func (ci *ContactInspector) SetStatus(ctx context.Context, status string) error {
	c, ok := ci.Item()
	if !ok {
		return nil
	}
	token, err := ci.token()
	if err != nil {
		ci.notifier.Error(alertMessage(err))
		return err
	}
	out, err := ci.cat.SetContactStatus(ctx, c.ID, status, token)
	if err != nil {
		ci.notifier.Error(alertMessage(err))
		return err
	}
	ci.refresh(out)
	ci.notifier.Success("Status updated to " + domain.StatusLabel(status) + "!")
	return nil
}

// SaveNotes persists the admin's free-text notes for the open contact.
func (ci *ContactInspector) SaveNotes(ctx context.Context, notes string) error {
	c, ok := ci.Item()
	if !ok {
		return nil
	}
	token, err := ci.token()
	if err != nil {
		ci.notifier.Error(alertMessage(err))
		return err
	}
	out, err := ci.cat.UpdateContact(ctx, c.ID, map[string]any{"notes": notes}, token)
	if err != nil {
		ci.notifier.Error(alertMessage(err))
		return err
	}
	ci.refresh(out)
	ci.notifier.Success("Notes saved!")
	return nil
}

package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"avantika_admin/internal/domain"
	"avantika_admin/internal/store"
)

// Refresher forces fresh backend reads, bypassing the cache on the way in
// and repriming it on the way out. The syncer binary runs it on a schedule;
// the admin's manual refresh button hits the same paths.
type Refresher struct {
	client domain.ResourceClient
	cache  domain.Cache
	store  *store.Store
	tokens domain.TokenSource
	ttl    time.Duration
	log    zerolog.Logger
}

func NewRefresher(c domain.ResourceClient, cache domain.Cache, st *store.Store, tokens domain.TokenSource, ttl time.Duration, log zerolog.Logger) *Refresher {
	return &Refresher{client: c, cache: cache, store: st, tokens: tokens, ttl: ttl, log: log}
}

func (r *Refresher) RefreshPlaces(ctx context.Context) error {
	ps, err := r.client.ListPlaces(ctx)
	if err != nil {
		return err
	}
	r.store.ReplacePlaces(ps)
	_ = r.cache.Set(ctx, keyPlaces, ps, int(r.ttl.Seconds()))
	return nil
}

func (r *Refresher) RefreshPackages(ctx context.Context) error {
	ps, err := r.client.ListPackages(ctx)
	if err != nil {
		return err
	}
	r.store.ReplacePackages(ps)
	_ = r.cache.Set(ctx, keyPackages, ps, int(r.ttl.Seconds()))
	return nil
}

func (r *Refresher) RefreshBlogs(ctx context.Context) error {
	bs, err := r.client.ListBlogs(ctx)
	if err != nil {
		return err
	}
	r.store.ReplaceBlogs(bs)
	_ = r.cache.Set(ctx, keyBlogs, bs, int(r.ttl.Seconds()))
	return nil
}

func (r *Refresher) RefreshSettings(ctx context.Context) error {
	s, err := r.client.GetSettings(ctx)
	if err != nil {
		return err
	}
	r.store.SetSettings(s)
	_ = r.cache.Set(ctx, keySettings, s, int(r.ttl.Seconds()))
	return nil
}

// RefreshContacts needs the admin token; without a live session it reports
// domain.ErrNoToken or domain.ErrTokenExpired and leaves the store alone.
func (r *Refresher) RefreshContacts(ctx context.Context) error {
	token, err := r.tokens.Token()
	if err != nil {
		return err
	}
	cs, err := r.client.ListContacts(ctx, token)
	if err != nil {
		return err
	}
	r.store.ReplaceContacts(cs)
	return nil
}

// RefreshAll fans the collections out under a bounded number of workers.
// One failing collection does not stop the others; the joined error carries
// everything that went wrong. A missing admin session only skips contacts.
func (r *Refresher) RefreshAll(ctx context.Context, workers int64) error {
	if workers < 1 {
		workers = 1
	}

	jobs := []struct {
		name string
		run  func(context.Context) error
	}{
		{"places", r.RefreshPlaces},
		{"packages", r.RefreshPackages},
		{"blogs", r.RefreshBlogs},
		{"settings", r.RefreshSettings},
		{"contacts", r.RefreshContacts},
	}

	sem := semaphore.NewWeighted(workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []error

	for _, job := range jobs {
		if err := sem.Acquire(ctx, 1); err != nil {
			return err
		}
		wg.Add(1)
		go func(name string, run func(context.Context) error) {
			defer wg.Done()
			defer sem.Release(1)
			start := time.Now()
			err := run(ctx)
			switch {
			case err == nil:
				r.log.Info().Str("collection", name).Dur("took", time.Since(start)).Msg("collection refreshed")
			case name == "contacts" && (errors.Is(err, domain.ErrNoToken) || errors.Is(err, domain.ErrTokenExpired)):
				r.log.Warn().Str("collection", name).Msg("skipping contacts, no admin session")
			default:
				r.log.Error().Err(err).Str("collection", name).Msg("collection refresh failed")
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(job.name, job.run)
	}

	wg.Wait()
	return errors.Join(errs...)
}

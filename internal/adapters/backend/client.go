package backend

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"avantika_admin/internal/adapters/observability"
	"avantika_admin/internal/domain"
)

// Client talks to the travel-agency backend REST API. All mutating calls
// take a bearer token; list/get calls for public collections do not.
type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- Places ----

func (c *Client) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	var out []domain.Place
	return out, c.do(ctx, http.MethodGet, "/places", "", nil, &out)
}

func (c *Client) CreatePlace(ctx context.Context, p domain.Place, token string) (domain.Place, error) {
	var out domain.Place
	return out, c.do(ctx, http.MethodPost, "/places", token, p, &out)
}

func (c *Client) UpdatePlace(ctx context.Context, id string, fields map[string]any, token string) (domain.Place, error) {
	var out domain.Place
	return out, c.do(ctx, http.MethodPut, "/places/"+id, token, fields, &out)
}

func (c *Client) DeletePlace(ctx context.Context, id, token string) error {
	return c.do(ctx, http.MethodDelete, "/places/"+id, token, nil, nil)
}

func (c *Client) TogglePlaceActive(ctx context.Context, id, token string) (domain.Place, error) {
	var out domain.Place
	return out, c.do(ctx, http.MethodPatch, "/places/"+id+"/toggle", token, nil, &out)
}

// ---- Packages ----

func (c *Client) ListPackages(ctx context.Context) ([]domain.TourPackage, error) {
	var out []domain.TourPackage
	return out, c.do(ctx, http.MethodGet, "/packages", "", nil, &out)
}

func (c *Client) CreatePackage(ctx context.Context, p domain.TourPackage, token string) (domain.TourPackage, error) {
	var out domain.TourPackage
	return out, c.do(ctx, http.MethodPost, "/packages", token, p, &out)
}

func (c *Client) UpdatePackage(ctx context.Context, id string, fields map[string]any, token string) (domain.TourPackage, error) {
	var out domain.TourPackage
	return out, c.do(ctx, http.MethodPut, "/packages/"+id, token, fields, &out)
}

func (c *Client) DeletePackage(ctx context.Context, id, token string) error {
	return c.do(ctx, http.MethodDelete, "/packages/"+id, token, nil, nil)
}

// ---- Blogs ----

func (c *Client) ListBlogs(ctx context.Context) ([]domain.Blog, error) {
	var out []domain.Blog
	return out, c.do(ctx, http.MethodGet, "/blogs", "", nil, &out)
}

func (c *Client) CreateBlog(ctx context.Context, b domain.Blog, token string) (domain.Blog, error) {
	var out domain.Blog
	return out, c.do(ctx, http.MethodPost, "/blogs", token, b, &out)
}

func (c *Client) UpdateBlog(ctx context.Context, id string, fields map[string]any, token string) (domain.Blog, error) {
	var out domain.Blog
	return out, c.do(ctx, http.MethodPut, "/blogs/"+id, token, fields, &out)
}

func (c *Client) DeleteBlog(ctx context.Context, id, token string) error {
	return c.do(ctx, http.MethodDelete, "/blogs/"+id, token, nil, nil)
}

func (c *Client) ToggleBlogPublished(ctx context.Context, id, token string) (domain.Blog, error) {
	var out domain.Blog
	return out, c.do(ctx, http.MethodPatch, "/blogs/"+id+"/toggle", token, nil, &out)
}

// ---- Contacts ----

func (c *Client) ListContacts(ctx context.Context, token string) ([]domain.Contact, error) {
	var out []domain.Contact
	return out, c.do(ctx, http.MethodGet, "/contacts", token, nil, &out)
}

// UpdateContact sends only the provided fields, so a status-only patch
// leaves the rest of the record intact.
func (c *Client) UpdateContact(ctx context.Context, id string, fields map[string]any, token string) (domain.Contact, error) {
	var out domain.Contact
	return out, c.do(ctx, http.MethodPatch, "/contacts/"+id, token, fields, &out)
}

func (c *Client) DeleteContact(ctx context.Context, id, token string) error {
	return c.do(ctx, http.MethodDelete, "/contacts/"+id, token, nil, nil)
}

// ---- Settings ----

func (c *Client) GetSettings(ctx context.Context) (domain.SiteSettings, error) {
	var out domain.SiteSettings
	return out, c.do(ctx, http.MethodGet, "/website", "", nil, &out)
}

func (c *Client) UpdateSettings(ctx context.Context, s domain.SiteSettings, token string) (domain.SiteSettings, error) {
	var out domain.SiteSettings
	return out, c.do(ctx, http.MethodPut, "/website", token, s, &out)
}

// ---- Pass-through (proxy routes) ----

// Forward relays a raw JSON body to the backend and returns its status and
// body unchanged. Used by the thin /api/* proxy endpoints.
func (c *Client) Forward(ctx context.Context, method, path string, body []byte) (int, []byte, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return 0, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, b, nil
}

// ---- Internals ----

// do performs one API call with client-side rate limiting and retries.
// Retries on 429 and transient 5xx, honoring Retry-After when provided.
// Non-2xx statuses surface as *domain.RequestError with the body's
// "message" field when the backend supplies one.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var payload []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		payload = b
	}

	url := c.base + path
	var lastErr error
	for i := 0; i < 4; i++ {
		// build a fresh request each attempt
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, body)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveExternal("backend", path, resp.StatusCode, time.Since(start))

		switch {
		case resp.StatusCode == http.StatusNoContent:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil

		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			if out == nil {
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				return nil
			}
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			// Prefer server-provided Retry-After; otherwise exponential backoff.
			wait := retryAfter(resp)
			msg := errorMessage(resp.Body)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = &domain.RequestError{Status: resp.StatusCode, Message: msg}
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			msg := errorMessage(resp.Body)
			resp.Body.Close()
			return &domain.RequestError{Status: resp.StatusCode, Message: msg}
		}
	}

	return lastErr
}

// errorMessage pulls the "message" field out of a JSON error body, falling
// back to a generic string.
func errorMessage(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return "request failed"
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). Returns 0 if
// absent or invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential delay (200ms, 400ms, 800ms...) with up to
// +50% jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}

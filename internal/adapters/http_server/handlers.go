package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"avantika_admin/internal/app"
)

// Proxy relays a request body to the backend verbatim.
type Proxy interface {
	Forward(ctx context.Context, method, path string, body []byte) (int, []byte, error)
}

type Handlers struct {
	Cat      *app.Catalog
	Proxy    Proxy
	PageSize int // 0 falls back to app.DefaultPageSize
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/places", h.listPlaces)
	s.mux.Get("/v1/packages", h.listPackages)
	s.mux.Get("/v1/blogs", h.listBlogs)
	s.mux.Get("/v1/settings", h.getSettings)
	s.mux.Post("/api/reviews", h.forward("/reviews"))
	s.mux.Post("/api/website/reviews", h.forward("/website/reviews"))
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// viewQuery reads the list controls shared by every collection endpoint.
func (h *Handlers) viewQuery(r *http.Request) app.ViewQuery {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	return app.ViewQuery{
		Search:   q.Get("search"),
		Filter:   q.Get("category"),
		Sort:     app.SortKey(q.Get("sort")),
		Page:     page,
		PageSize: h.PageSize,
	}
}

func (h *Handlers) listPlaces(w http.ResponseWriter, r *http.Request) {
	ps, err := h.Cat.Places(r.Context())
	if err != nil {
		writeProblem(w, http.StatusBadGateway, "Upstream Error", "could not load places")
		return
	}
	// the public site only sees active places
	visible := ps[:0:0]
	for _, p := range ps {
		if p.IsActive {
			visible = append(visible, p)
		}
	}
	writeCached(w, r, app.DeriveView(visible, h.viewQuery(r), app.PlaceView()))
}

func (h *Handlers) listPackages(w http.ResponseWriter, r *http.Request) {
	ps, err := h.Cat.Packages(r.Context())
	if err != nil {
		writeProblem(w, http.StatusBadGateway, "Upstream Error", "could not load packages")
		return
	}
	q := h.viewQuery(r)
	q.Filter = r.URL.Query().Get("location")
	writeCached(w, r, app.DeriveView(ps, q, app.PackageView()))
}

func (h *Handlers) listBlogs(w http.ResponseWriter, r *http.Request) {
	bs, err := h.Cat.Blogs(r.Context())
	if err != nil {
		writeProblem(w, http.StatusBadGateway, "Upstream Error", "could not load blogs")
		return
	}
	visible := bs[:0:0]
	for _, b := range bs {
		if b.Published {
			visible = append(visible, b)
		}
	}
	writeCached(w, r, app.DeriveView(visible, h.viewQuery(r), app.BlogView()))
}

func (h *Handlers) getSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.Cat.Settings(r.Context())
	if err != nil {
		writeProblem(w, http.StatusBadGateway, "Upstream Error", "could not load settings")
		return
	}
	writeCached(w, r, s)
}

// forward builds a verbatim pass-through: the backend's status and body are
// relayed untouched, only a network failure produces a local error.
func (h *Handlers) forward(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Bad Request", "could not read body")
			return
		}
		status, respBody, err := h.Proxy.Forward(r.Context(), http.MethodPost, path, body)
		if err != nil {
			writeProblem(w, http.StatusInternalServerError, "Upstream Unreachable", "Failed to submit review")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if _, err := w.Write(respBody); err != nil {
			log.Error().Err(err).Msg("failed to relay proxy body")
		}
	}
}

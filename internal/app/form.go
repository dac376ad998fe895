package app

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"avantika_admin/internal/domain"
)

type FormMode int

const (
	FormClosed FormMode = iota
	FormCreate
	FormEdit
)

// ErrFormClosed is returned by Submit when no form is open.
var ErrFormClosed = errors.New("form is not open")

// FormHooks binds the generic form controller to one entity type. Prepare
// and Stamp are optional.
type FormHooks[T any] struct {
	Entity   string
	Defaults func() T
	ID       func(T) string
	Validate func(T) error
	// Prepare runs after validation and before the network call: image
	// uploads, slug derivation, anything that must settle first.
	Prepare func(ctx context.Context, draft *T) error
	// Stamp runs on create only.
	Stamp  func(draft *T, now time.Time)
	Create func(ctx context.Context, draft T, token string) (T, error)
	Update func(ctx context.Context, id string, draft T, token string) (T, error)
}

// Form drives one create/edit dialog: closed until opened, holds a draft
// while open, and refuses overlapping submits. On success it alerts and
// closes; on failure it alerts and stays open with the draft intact.
type Form[T any] struct {
	mu         sync.Mutex
	hooks      FormHooks[T]
	tokens     domain.TokenSource
	notifier   *Notifier
	mode       FormMode
	editID     string
	draft      T
	submitting bool
	gen        uint64 // bumped by Cancel/close so a late submit result is dropped
}

func NewForm[T any](hooks FormHooks[T], tokens domain.TokenSource, n *Notifier) *Form[T] {
	return &Form[T]{hooks: hooks, tokens: tokens, notifier: n}
}

func (f *Form[T]) OpenNew() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = FormCreate
	f.editID = ""
	f.draft = f.hooks.Defaults()
	f.submitting = false
	f.gen++
}

// OpenEdit seeds the draft from an existing item; edits stay local until
// Submit.
func (f *Form[T]) OpenEdit(item T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = FormEdit
	f.editID = f.hooks.ID(item)
	f.draft = item
	f.submitting = false
	f.gen++
}

// Cancel discards the draft with no network traffic. Cancelling while a
// submit is in flight abandons that submit's outcome.
func (f *Form[T]) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.close()
}

func (f *Form[T]) close() {
	f.mode = FormClosed
	f.editID = ""
	var zero T
	f.draft = zero
	f.submitting = false
	f.gen++
}

func (f *Form[T]) Mode() FormMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

func (f *Form[T]) EditingID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editID
}

func (f *Form[T]) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

func (f *Form[T]) Draft() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Edit applies a field change to the open draft.
func (f *Form[T]) Edit(fn func(*T)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == FormClosed || f.submitting {
		return
	}
	fn(&f.draft)
}

// Submit validates and sends the draft. While one submit is in flight any
// further Submit is a no-op, so a double click cannot create two records.
func (f *Form[T]) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.mode == FormClosed {
		f.mu.Unlock()
		return ErrFormClosed
	}
	if f.submitting {
		f.mu.Unlock()
		return nil
	}
	mode, editID, draft, gen := f.mode, f.editID, f.draft, f.gen
	f.submitting = true
	f.mu.Unlock()

	err := f.send(ctx, mode, editID, draft, gen)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen != gen {
		// cancelled or reopened mid-flight: the result no longer belongs
		// to this dialog
		return err
	}
	f.submitting = false
	if err != nil {
		f.notifier.Error(alertMessage(err))
		return err
	}
	if mode == FormCreate {
		f.notifier.Success(f.hooks.Entity + " created successfully!")
	} else {
		f.notifier.Success(f.hooks.Entity + " updated successfully!")
	}
	f.close()
	return nil
}

func (f *Form[T]) send(ctx context.Context, mode FormMode, editID string, draft T, gen uint64) error {
	if f.hooks.Validate != nil {
		if err := f.hooks.Validate(draft); err != nil {
			return err
		}
	}
	token, err := f.tokens.Token()
	if err != nil {
		return err
	}
	if f.hooks.Prepare != nil {
		if err := f.hooks.Prepare(ctx, &draft); err != nil {
			return err
		}
		// Prepare may have uploaded staged images into the draft. Persist
		// that before the network call: if the backend rejects the submit,
		// the reopened form must still hold the uploaded images instead of
		// quietly dropping them.
		f.commitDraft(gen, draft)
	}
	if mode == FormCreate {
		if f.hooks.Stamp != nil {
			f.hooks.Stamp(&draft, time.Now().UTC())
		}
		_, err = f.hooks.Create(ctx, draft, token)
		return err
	}
	_, err = f.hooks.Update(ctx, editID, draft, token)
	return err
}

// commitDraft writes a prepared draft back into the dialog unless it was
// cancelled or reopened while the submit ran.
func (f *Form[T]) commitDraft(gen uint64, draft T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen == gen {
		f.draft = draft
	}
}

// alertMessage maps an error to the banner text shown to the admin.
func alertMessage(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	var uerr *domain.UploadError
	if errors.As(err, &uerr) {
		return "Image upload failed. Please try again."
	}
	var rerr *domain.RequestError
	if errors.As(err, &rerr) && rerr.Message != "" {
		return rerr.Message
	}
	if errors.Is(err, domain.ErrNoToken) || errors.Is(err, domain.ErrTokenExpired) {
		return "Your session has expired. Please log in again."
	}
	return "Something went wrong. Please try again."
}

// ---- field coercion ----

// ParseNumber converts a numeric text input. Blank means zero, the way an
// empty form field does, so an untouched rating saves as 0 rather than
// failing.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &domain.ValidationError{Field: "number", Reason: "not a number: " + s}
	}
	return n, nil
}

// ParseInt is ParseNumber for whole-number fields.
func ParseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &domain.ValidationError{Field: "number", Reason: "not a whole number: " + s}
	}
	return n, nil
}

// ---- tag helpers ----

// AddTag appends a trimmed tag unless it is blank or already present.
func AddTag(tags []string, tag string) []string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return tags
	}
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(tags, tag)
}

// RemoveTag drops a tag, preserving the order of the rest.
func RemoveTag(tags []string, tag string) []string {
	out := tags[:0:0]
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}

// StageRemoteImage wraps a pasted URL as a gallery entry. The provisional
// public id marks it as not provider-managed.
func StageRemoteImage(url string) domain.Image {
	return domain.Image{URL: strings.TrimSpace(url), PublicID: "temp_" + uuid.NewString()}
}

// fieldsOf flattens a struct to the JSON field map sent in an update,
// dropping the immutable id.
func fieldsOf(v any) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil
	}
	delete(m, "_id")
	return m
}

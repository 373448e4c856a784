package crud

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrFormClosed is returned by Submit when no form is open.
var ErrFormClosed = errors.New("no open form")

// ValidationError reports required fields left blank. It is raised before
// any request is made, so a failed submit costs no network round trip.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "required fields missing: " + strings.Join(e.Fields, ", ")
}

// Operations are the injected async calls the engine orchestrates. Any
// error return is treated identically regardless of cause; implementations
// must return errors, not sentinel values, for non-success outcomes.
type Operations[T Record, P any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int) (T, error)
	Create(ctx context.Context, input P) (T, error)
	Update(ctx context.Context, id int, input P) (T, error)
	Delete(ctx context.Context, id int) error
}

// Config is the declarative per-entity bundle driving one table: display
// columns, form fields and the two serialization transforms.
type Config[T Record, P any] struct {
	Title    string
	Singular string

	Columns    []Column[T]
	FormFields []FormField

	// ToFormData maps a record to a complete form state; a nil record
	// denotes "new" and must still yield every field key.
	ToFormData func(*T) FormState
	// ParseFormData converts the string-typed form back to a partial
	// record for create/update.
	ParseFormData func(FormState) (P, error)
}

// Table owns the list pagination state and the modal/edit state for one
// record type. It is reused unmodified across record types; everything
// entity-specific comes from Config and Operations.
//
// The resident collection is replaced wholesale after every mutation via
// the refresh callback; paging re-slices the resident collection and never
// refetches. Submit and Remove deliberately hold no lock across the
// network call, so a second mutating action may start before the first
// resolves.
type Table[T Record, P any] struct {
	cfg      Config[T, P]
	ops      Operations[T, P]
	refresh  func(ctx context.Context) error
	log      *logrus.Logger
	pageSize int

	mu        sync.Mutex
	items     []T
	page      int
	modalOpen bool
	editing   *T
	form      FormState
}

// NewTable builds a table. When no refresh callback is set via SetRefresh,
// mutations reload the collection through ops.List.
func NewTable[T Record, P any](cfg Config[T, P], ops Operations[T, P], pageSize int, log *logrus.Logger) *Table[T, P] {
	if pageSize <= 0 {
		pageSize = 20
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Table[T, P]{
		cfg:      cfg,
		ops:      ops,
		log:      log,
		pageSize: pageSize,
		page:     1,
	}
}

// SetRefresh overrides the post-mutation reload, e.g. with a host-page
// callback reloading several collections at once.
func (t *Table[T, P]) SetRefresh(fn func(ctx context.Context) error) {
	t.refresh = fn
}

// UpdateDescriptors swaps the column and field descriptors. Used by
// configurations derived from other collections, which must be rebuilt
// after those collections change.
func (t *Table[T, P]) UpdateDescriptors(columns []Column[T], fields []FormField) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cfg.Columns = columns
	t.cfg.FormFields = fields
}

// SetItems replaces the resident collection wholesale and re-clamps the
// current page, which may have fallen off the end after deletions.
func (t *Table[T, P]) SetItems(items []T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = items
	t.page = t.navLocked().Clamp(t.page)
}

// Reload fetches the collection through the injected list operation and
// replaces the resident copy.
func (t *Table[T, P]) Reload(ctx context.Context) error {
	items, err := t.ops.List(ctx)
	if err != nil {
		t.log.Warnf("Failed to reload %s: %v", strings.ToLower(t.cfg.Title), err)
		return err
	}
	t.SetItems(items)
	return nil
}

// OpenCreate opens the form in create mode, seeded with the empty form
// state so every field key is present.
func (t *Table[T, P]) OpenCreate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.editing = nil
	t.form = t.cfg.ToFormData(nil)
	t.modalOpen = true
}

// OpenEdit opens the form in edit mode, seeded from the record.
func (t *Table[T, P]) OpenEdit(rec T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	cp := rec
	t.editing = &cp
	t.form = t.cfg.ToFormData(&cp)
	t.modalOpen = true
}

// CloseForm discards the open form without submitting. It does not cancel
// an in-flight submit.
func (t *Table[T, P]) CloseForm() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.modalOpen = false
	t.editing = nil
	t.form = nil
}

// SetField records one form input.
func (t *Table[T, P]) SetField(key, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.form == nil {
		t.form = FormState{}
	}
	t.form[key] = value
}

// Submit validates required-field presence, parses the form and invokes
// create or update depending on the edit target. On success the form
// closes and the collection is refreshed; on failure the form stays open
// with its state intact so no input is lost.
func (t *Table[T, P]) Submit(ctx context.Context) error {
	t.mu.Lock()
	if !t.modalOpen {
		t.mu.Unlock()
		return ErrFormClosed
	}
	form := t.form.Clone()
	fields := t.cfg.FormFields
	var target *T
	if t.editing != nil {
		cp := *t.editing
		target = &cp
	}
	t.mu.Unlock()

	var missing []string
	for _, f := range fields {
		if f.Required && strings.TrimSpace(form.Get(f.Key)) == "" {
			missing = append(missing, f.Key)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	input, err := t.cfg.ParseFormData(form)
	if err != nil {
		return fmt.Errorf("parse form: %w", err)
	}

	if target != nil {
		_, err = t.ops.Update(ctx, (*target).GetID(), input)
	} else {
		_, err = t.ops.Create(ctx, input)
	}
	if err != nil {
		t.log.Warnf("Failed to save %s: %v", strings.ToLower(t.cfg.Singular), err)
		return err
	}

	t.mu.Lock()
	t.modalOpen = false
	t.editing = nil
	t.form = nil
	t.mu.Unlock()

	return t.doRefresh(ctx)
}

// Remove deletes a record after explicit confirmation. An unconfirmed call
// is a no-op; declining the confirmation must cost nothing.
func (t *Table[T, P]) Remove(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return nil
	}
	if err := t.ops.Delete(ctx, id); err != nil {
		t.log.Warnf("Failed to delete %s %d: %v", strings.ToLower(t.cfg.Singular), id, err)
		return err
	}
	return t.doRefresh(ctx)
}

// ChangePage moves the display window. The target page is clamped to the
// valid range; this is a re-slice of the resident collection, not a query.
func (t *Table[T, P]) ChangePage(page int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.page = t.navLocked().Clamp(page)
}

// Rows returns the records of the current page.
func (t *Table[T, P]) Rows() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	start := (t.page - 1) * t.pageSize
	if start >= len(t.items) {
		return nil
	}
	end := start + t.pageSize
	if end > len(t.items) {
		end = len(t.items)
	}
	out := make([]T, end-start)
	copy(out, t.items[start:end])
	return out
}

// Items returns a copy of the whole resident collection.
func (t *Table[T, P]) Items() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]T, len(t.items))
	copy(out, t.items)
	return out
}

// Find returns the resident record with the given id.
func (t *Table[T, P]) Find(id int) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, it := range t.items {
		if it.GetID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Page returns the current 1-based page number.
func (t *Table[T, P]) Page() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.page
}

// Nav returns the pagination view for the current state.
func (t *Table[T, P]) Nav() PageNav {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.navLocked()
}

func (t *Table[T, P]) navLocked() PageNav {
	return NewPageNav(t.page, TotalPages(len(t.items), t.pageSize), len(t.items), t.pageSize)
}

// FormOpen reports whether the create/edit form is open.
func (t *Table[T, P]) FormOpen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.modalOpen
}

// Editing returns a copy of the edit target, or nil in create mode.
func (t *Table[T, P]) Editing() *T {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.editing == nil {
		return nil
	}
	cp := *t.editing
	return &cp
}

// Form returns a copy of the in-progress form state.
func (t *Table[T, P]) Form() FormState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.form.Clone()
}

// Config returns the table's current configuration.
func (t *Table[T, P]) Config() Config[T, P] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cfg
}

func (t *Table[T, P]) doRefresh(ctx context.Context) error {
	if t.refresh != nil {
		return t.refresh(ctx)
	}
	return t.Reload(ctx)
}

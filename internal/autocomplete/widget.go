// Package autocomplete implements a suggestion dropdown bound to a text input
// and a hidden identifier field.
package autocomplete

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	// ErrStale is returned by Type when newer input superseded the request.
	ErrStale = errors.New("autocomplete: superseded by newer input")
	// ErrNotSelectable is returned by Select for a missing or disabled item.
	ErrNotSelectable = errors.New("autocomplete: suggestion not selectable")
)

// Suggestion is one dropdown entry. Value goes into the visible input and ID
// into the hidden field.
type Suggestion struct {
	ID       string `json:"id,omitempty"`
	Label    string `json:"label"`
	Value    string `json:"value,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Source looks suggestions up for a query.
type Source interface {
	Suggest(ctx context.Context, query string) ([]Suggestion, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, query string) ([]Suggestion, error)

func (f SourceFunc) Suggest(ctx context.Context, query string) ([]Suggestion, error) {
	return f(ctx, query)
}

// Option configures a Widget.
type Option func(*Widget)

// WithNotFound shows a single disabled entry with text when a lookup
// returns nothing.
func WithNotFound(text string) Option {
	return func(w *Widget) { w.notFound = text }
}

// Widget is safe for concurrent use. Every Type call takes a sequence
// number and cancels the lookup of the previous call; only the latest
// sequence may replace the suggestion list.
type Widget struct {
	source   Source
	notFound string

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	input  string
	hidden string
	items  []Suggestion
	open   bool
}

// New creates a widget backed by source.
func New(source Source, opts ...Option) *Widget {
	w := &Widget{source: source}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Type handles one keystroke worth of input. Blank input clears the list
// without a lookup.
func (w *Widget) Type(ctx context.Context, text string) error {
	w.mu.Lock()
	seq := w.supersede()
	w.input = text
	query := strings.TrimSpace(text)
	if query == "" {
		w.items = nil
		w.open = false
		w.mu.Unlock()
		return nil
	}
	reqCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.mu.Unlock()

	items, err := w.source.Suggest(reqCtx, query)

	w.mu.Lock()
	defer w.mu.Unlock()
	cancel()
	if seq != w.seq {
		return ErrStale
	}
	w.cancel = nil
	if err != nil {
		return err
	}
	if len(items) == 0 && w.notFound != "" {
		items = []Suggestion{{Label: w.notFound, Disabled: true}}
	}
	w.items = items
	w.open = len(items) > 0
	return nil
}

// Select fills the input with the i-th suggestion, stores its ID in the
// hidden field and closes the list.
func (w *Widget) Select(i int) (Suggestion, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.open || i < 0 || i >= len(w.items) || w.items[i].Disabled {
		return Suggestion{}, ErrNotSelectable
	}
	s := w.items[i]
	w.supersede()
	w.input = s.Value
	w.hidden = s.ID
	w.items = nil
	w.open = false
	return s, nil
}

// Dismiss closes the list, as a click outside the input and list does.
func (w *Widget) Dismiss() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.supersede()
	w.items = nil
	w.open = false
}

// Input is the visible text.
func (w *Widget) Input() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.input
}

// Hidden is the identifier of the last selected suggestion.
func (w *Widget) Hidden() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.hidden
}

// Open reports whether the list is shown.
func (w *Widget) Open() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// Suggestions returns a copy of the current list.
func (w *Widget) Suggestions() []Suggestion {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Suggestion, len(w.items))
	copy(out, w.items)
	return out
}

// supersede must be called with mu held.
func (w *Widget) supersede() uint64 {
	w.seq++
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	return w.seq
}

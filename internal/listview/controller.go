package listview

import (
	"cmp"
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Fetcher performs a GET against the catalog API and decodes the JSON body
// into out. A non-2xx status must be returned as an error.
type Fetcher interface {
	GetJSON(ctx context.Context, path string, query url.Values, out any) error
}

// Adapter binds the generic controller to one entity type.
type Adapter[T any] struct {
	Name string
	// Path is the collection endpoint.
	Path string
	// SearchPath is hit instead of Path when a query is present. Leave empty
	// when the collection endpoint filters by SearchParam itself.
	SearchPath  string
	SearchParam string
	DefaultSort Sort
	Columns     []Column
	Row         func(T) Row
	EmptyText   string
	// SortKey enables client-side sorting for endpoints that ignore the sort
	// parameters. It returns the comparable text of record for column.
	SortKey func(record T, column string) string
}

// Page is the result of one fetch.
type Page[T any] struct {
	State   State `json:"state"`
	Records []T   `json:"-"`
	Table   Table `json:"table"`
}

// Controller fetches and renders one entity list.
type Controller[T any] struct {
	fetcher Fetcher
	adapter Adapter[T]
}

// New creates a controller for adapter a.
func New[T any](f Fetcher, a Adapter[T]) *Controller[T] {
	return &Controller[T]{fetcher: f, adapter: a}
}

// Adapter returns the controller's entity adapter.
func (c *Controller[T]) Adapter() Adapter[T] {
	return c.adapter
}

// Initial returns the default state of the page.
func (c *Controller[T]) Initial() State {
	return Initial(c.adapter.DefaultSort)
}

// Endpoint resolves the path and query parameters for state s.
func (c *Controller[T]) Endpoint(s State) (string, url.Values) {
	path := c.adapter.Path
	if s.Query != "" && c.adapter.SearchPath != "" {
		path = c.adapter.SearchPath
	}
	return path, s.Values(c.adapter.SearchParam)
}

// Fetch loads the records for s and renders them. On error the caller keeps
// whatever table it already shows.
func (c *Controller[T]) Fetch(ctx context.Context, s State) (Page[T], error) {
	return c.FetchWhere(ctx, s, nil)
}

// FetchWhere is Fetch with a client-side filter applied before rendering.
func (c *Controller[T]) FetchWhere(ctx context.Context, s State, keep func(T) bool) (Page[T], error) {
	path, query := c.Endpoint(s)
	var records []T
	if err := c.fetcher.GetJSON(ctx, path, query, &records); err != nil {
		return Page[T]{}, fmt.Errorf("fetch %s: %w", c.adapter.Name, err)
	}
	if keep != nil {
		records = slices.DeleteFunc(records, func(r T) bool { return !keep(r) })
	}
	return c.Render(s, records), nil
}

// Render builds the page for already loaded records.
func (c *Controller[T]) Render(s State, records []T) Page[T] {
	if c.adapter.SortKey != nil && s.SortColumn != "" {
		records = c.sortLocal(s, records)
	}
	return Page[T]{
		State:   s,
		Records: records,
		Table:   BuildTable(c.adapter.Columns, s, records, c.adapter.Row, c.adapter.EmptyText),
	}
}

func (c *Controller[T]) sortLocal(s State, records []T) []T {
	sorted := slices.Clone(records)
	desc := s.Indicator(s.SortColumn) == Desc
	slices.SortStableFunc(sorted, func(a, b T) int {
		ka := strings.ToLower(c.adapter.SortKey(a, s.SortColumn))
		kb := strings.ToLower(c.adapter.SortKey(b, s.SortColumn))
		if desc {
			return cmp.Compare(kb, ka)
		}
		return cmp.Compare(ka, kb)
	})
	return sorted
}

// Sortable reports whether column is a sortable column of the adapter.
func (a Adapter[T]) Sortable(column string) bool {
	for _, c := range a.Columns {
		if c.Key == column {
			return c.Sortable
		}
	}
	return false
}

// SortRequest is a click on a column's sort button.
type SortRequest struct {
	State  State  `json:"state"`
	Column string `json:"column"`
}

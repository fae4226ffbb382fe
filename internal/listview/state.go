// Package listview implements the search/sort/list pattern shared by the
// books, authors and publishing companies tables.
package listview

import (
	"net/url"
	"strings"
)

// Order is a sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Flip returns the opposite direction.
func (o Order) Flip() Order {
	if o == Desc {
		return Asc
	}
	return Desc
}

// Arrow is the indicator glyph painted on a sort button.
func (o Order) Arrow() string {
	if o == Desc {
		return "▼"
	}
	return "▲"
}

// ParseOrder maps anything but "desc" (case-insensitive) to Asc.
func ParseOrder(s string) Order {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

// Sort names a column and direction.
type Sort struct {
	Column string `json:"sort_column"`
	Order  Order  `json:"sort_order"`
}

// State is the immutable view state of one list page. Transitions return a
// new value and never mutate the receiver.
type State struct {
	Query      string `json:"query"`
	SortColumn string `json:"sort_column"`
	SortOrder  Order  `json:"sort_order"`
}

// Initial is the state a page opens with.
func Initial(def Sort) State {
	return State{SortColumn: def.Column, SortOrder: def.Order}
}

// WithSearch sets the search string and resets sorting to the default.
func (s State) WithSearch(query string, def Sort) State {
	next := Initial(def)
	next.Query = strings.TrimSpace(query)
	return next
}

// WithReset clears the search string and resets sorting to the default.
func (s State) WithReset(def Sort) State {
	return Initial(def)
}

// Indicator returns the order shown on column's sort button. Columns other
// than the current one always show Asc.
func (s State) Indicator(column string) Order {
	if column == s.SortColumn && s.SortOrder != "" {
		return s.SortOrder
	}
	return Asc
}

// ToggleSort flips column's indicator and makes it the sort column. The
// first click on a fresh column therefore sorts descending; clicking the
// same column again alternates.
func (s State) ToggleSort(column string) State {
	next := s
	next.SortOrder = s.Indicator(column).Flip()
	next.SortColumn = column
	return next
}

// Values encodes the state as query parameters. The search parameter is
// omitted when the query is empty.
func (s State) Values(searchParam string) url.Values {
	v := url.Values{}
	if s.Query != "" && searchParam != "" {
		v.Set(searchParam, s.Query)
	}
	if s.SortColumn != "" {
		v.Set("sort_column", s.SortColumn)
		v.Set("sort_order", string(s.Indicator(s.SortColumn)))
	}
	return v
}

// StateFromQuery reads a state from request parameters, falling back to def
// for a missing sort column.
func StateFromQuery(q url.Values, searchParam string, def Sort) State {
	s := Initial(def)
	s.Query = strings.TrimSpace(q.Get(searchParam))
	if col := strings.TrimSpace(q.Get("sort_column")); col != "" {
		s.SortColumn = col
		s.SortOrder = ParseOrder(q.Get("sort_order"))
	}
	return s
}

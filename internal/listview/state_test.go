package listview

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

var defaultSort = Sort{Column: "name", Order: Asc}

func TestState_ToggleSortSameColumnAlternates(t *testing.T) {
	s := Initial(defaultSort)

	s = s.ToggleSort("year")
	assert.Equal(t, "year", s.SortColumn)
	assert.Equal(t, Desc, s.SortOrder)

	s = s.ToggleSort("year")
	assert.Equal(t, Asc, s.SortOrder)

	s = s.ToggleSort("year")
	assert.Equal(t, Desc, s.SortOrder)
}

func TestState_ToggleSortOtherColumnResetsIndicator(t *testing.T) {
	s := Initial(defaultSort).ToggleSort("year")
	assert.Equal(t, Desc, s.Indicator("year"))

	s = s.ToggleSort("publisher")
	assert.Equal(t, Asc, s.Indicator("year"))
	assert.Equal(t, Desc, s.Indicator("publisher"))
}

func TestState_ToggleSortIsImmutable(t *testing.T) {
	s := Initial(defaultSort)
	_ = s.ToggleSort("year")
	assert.Equal(t, Initial(defaultSort), s)
}

func TestState_SearchResetsSort(t *testing.T) {
	s := Initial(defaultSort).ToggleSort("year").WithSearch("  tolkien ", defaultSort)
	assert.Equal(t, State{Query: "tolkien", SortColumn: "name", SortOrder: Asc}, s)

	s = s.WithReset(defaultSort)
	assert.Equal(t, Initial(defaultSort), s)
}

func TestState_Values(t *testing.T) {
	s := State{Query: "war", SortColumn: "fio", SortOrder: Desc}
	assert.Equal(t, url.Values{
		"q":           {"war"},
		"sort_column": {"fio"},
		"sort_order":  {"desc"},
	}, s.Values("q"))

	s.Query = ""
	assert.NotContains(t, s.Values("q"), "q")
}

func TestStateFromQuery(t *testing.T) {
	q := url.Values{"search": {"peace"}, "sort_column": {"year"}, "sort_order": {"DESC"}}
	s := StateFromQuery(q, "search", defaultSort)
	assert.Equal(t, State{Query: "peace", SortColumn: "year", SortOrder: Desc}, s)

	s = StateFromQuery(url.Values{}, "search", defaultSort)
	assert.Equal(t, Initial(defaultSort), s)
}

func TestOrder(t *testing.T) {
	assert.Equal(t, "▲", Asc.Arrow())
	assert.Equal(t, "▼", Desc.Arrow())
	assert.Equal(t, Asc, ParseOrder("bogus"))
}

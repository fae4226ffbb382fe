package main

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libadmin/internal/selection"
)

func bookMux(deleteStatus int) (*http.ServeMux, *atomic.Int32) {
	var lists atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/books", func(w http.ResponseWriter, r *http.Request) {
		lists.Add(1)
		w.Write([]byte(`[{"isbn":"111","name":"Анна Каренина"},{"isbn":"222","name":"Бесы"}]`))
	})
	mux.HandleFunc("DELETE /api/books/bulk-delete", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(deleteStatus)
	})
	return mux, &lists
}

func TestBrowse_SearchSortAndQuit(t *testing.T) {
	mux, _ := bookMux(http.StatusNoContent)
	h := newHarness(t, mux, "")
	h.driver.selects = []int{actionSearch, actionSort, 0, actionReset, actionQuit}
	h.driver.answers = []answer{typed("Бесы")}

	require.NoError(t, h.app.run(context.Background(), []string{"browse", "books"}))

	seen := h.up.Seen()
	require.Len(t, seen, 4)
	assert.Equal(t, "Бесы", seen[1].Query.Get("search"))
	assert.Equal(t, "name", seen[1].Query.Get("sort_column"))
	assert.Equal(t, "desc", seen[2].Query.Get("sort_order"))
	assert.Equal(t, "Бесы", seen[2].Query.Get("search"))
	assert.Empty(t, seen[3].Query.Get("search"))
	assert.Equal(t, "asc", seen[3].Query.Get("sort_order"))
}

func TestBrowse_DeleteSelected(t *testing.T) {
	mux, lists := bookMux(http.StatusNoContent)
	h := newHarness(t, mux, "tok")
	h.driver.selects = []int{actionSelect, actionDelete, actionQuit}
	h.driver.multis = [][]int{{1}}
	h.driver.confirms = []bool{true}

	require.NoError(t, h.app.run(context.Background(), []string{"browse", "books"}))

	assert.Contains(t, h.out.String(), "[x]")
	assert.Contains(t, h.out.String(), selection.Books.Deleted)
	assert.Contains(t, h.driver.messages, selection.Books.Confirm)
	assert.EqualValues(t, 2, lists.Load())

	var body string
	for _, r := range h.up.Seen() {
		if r.Method == http.MethodDelete {
			body = r.Body
		}
	}
	assert.JSONEq(t, `["222"]`, body)
}

func TestBrowse_DeleteDeclinedSendsNothing(t *testing.T) {
	mux, _ := bookMux(http.StatusNoContent)
	h := newHarness(t, mux, "tok")
	h.driver.selects = []int{actionSelectAll, actionDelete, actionQuit}
	h.driver.confirms = []bool{false}

	require.NoError(t, h.app.run(context.Background(), []string{"browse", "books"}))

	assert.Contains(t, h.out.String(), selection.Books.Aborted)
	for _, r := range h.up.Seen() {
		assert.NotEqual(t, http.MethodDelete, r.Method)
	}
}

func TestBrowse_DeleteNothingSelected(t *testing.T) {
	mux, _ := bookMux(http.StatusNoContent)
	h := newHarness(t, mux, "tok")
	h.driver.selects = []int{actionDelete, actionQuit}

	require.NoError(t, h.app.run(context.Background(), []string{"browse", "books"}))

	assert.Contains(t, h.out.String(), selection.Books.Empty)
}

func TestBrowse_DeleteFailureKeepsTable(t *testing.T) {
	mux, lists := bookMux(http.StatusOK)
	h := newHarness(t, mux, "tok")
	h.driver.selects = []int{actionSelectAll, actionDelete, actionQuit}
	h.driver.confirms = []bool{true}

	require.NoError(t, h.app.run(context.Background(), []string{"browse", "books"}))

	assert.Contains(t, h.out.String(), selection.Books.Failed)
	assert.EqualValues(t, 1, lists.Load())
}

func TestBrowse_DeleteGatedWithoutToken(t *testing.T) {
	mux, _ := bookMux(http.StatusNoContent)
	h := newHarness(t, mux, "")
	h.driver.selects = []int{actionSelectAll, actionDelete, actionQuit}

	require.NoError(t, h.app.run(context.Background(), []string{"browse", "books"}))

	assert.Contains(t, h.out.String(), "Для удаления выбранных книг необходимо войти в систему")
	assert.NotContains(t, h.driver.messages, selection.Books.Confirm)
}

func TestBrowse_AuthorCascadeDeclined(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/authors", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":5,"fio":"Гоголь Николай"}]`))
	})
	var removeEverything string
	mux.HandleFunc("DELETE /api/authors/bulk-delete", func(w http.ResponseWriter, r *http.Request) {
		removeEverything = r.URL.Query().Get("removeEverything")
		w.WriteHeader(http.StatusNoContent)
	})
	h := newHarness(t, mux, "tok")
	h.driver.selects = []int{actionSelectAll, actionDelete, actionQuit}
	h.driver.confirms = []bool{false}

	require.NoError(t, h.app.run(context.Background(), []string{"browse", "authors"}))

	assert.Equal(t, "false", removeEverything)
	assert.Contains(t, h.out.String(), selection.Authors.Cancelled)
}

func TestBrowse_PickRowsKeepsChecked(t *testing.T) {
	mux, _ := bookMux(http.StatusNoContent)
	h := newHarness(t, mux, "")
	h.driver.selects = []int{actionSelectAll, actionSelect, actionQuit}
	h.driver.multis = [][]int{{0}}

	require.NoError(t, h.app.run(context.Background(), []string{"browse", "books"}))

	require.Len(t, h.driver.defaults, 1)
	assert.Equal(t, []int{0, 1}, h.driver.defaults[0])
}

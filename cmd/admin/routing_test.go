package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libadmin/internal/httpx"
	"libadmin/internal/listview"
	"libadmin/internal/platform/catalogapi"
	"libadmin/internal/testutil"
)

func newTestServer(t *testing.T, mux *http.ServeMux) (http.Handler, *testutil.Upstream) {
	t.Helper()
	up := testutil.NewUpstream(t.Cleanup, mux)
	client := catalogapi.NewClient(up.URL, catalogapi.WithCredentials(httpx.Credentials))
	h := httpx.Chain(newRouter(client), httpx.RequestIDMiddleware, httpx.TokenMiddleware)
	return h, up
}

func TestRouting_BooksListForwardsToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/books", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"isbn":"978-5-17-090770-9","name":"Идиот"}]`))
	})
	h, up := newTestServer(t, mux)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/admin/books?sort_column=name&sort_order=desc", nil)
	r.Header.Set("Authorization", "Bearer tok")
	r.Header.Set("X-Request-Id", "req-1")
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var table listview.Table
	_, err := testutil.DecodeEnvelope(w, &table)
	require.NoError(t, err)
	assert.Equal(t, []string{"978-5-17-090770-9"}, table.IDs())

	seen := up.Seen()
	require.Len(t, seen, 1)
	assert.Equal(t, "Bearer tok", seen[0].Header.Get("Authorization"))
	assert.Equal(t, "req-1", seen[0].Header.Get("X-Request-Id"))
	assert.Equal(t, "desc", seen[0].Query.Get("sort_order"))
}

func TestRouting_UpstreamUnauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/books/bulk-delete", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	h, _ := newTestServer(t, mux)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/admin/books/bulk-delete", `{"ids":["978-5-17-090770-9"],"confirm":true}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouting_AuthorPathValue(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/authors/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":` + r.PathValue("id") + `,"fio":"Бунин Иван"}`))
	})
	mux.HandleFunc("GET /api/books", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	h, _ := newTestServer(t, mux)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/authors/12", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Бунин Иван")
}

func TestRouting_MethodNotAllowed(t *testing.T) {
	h, _ := newTestServer(t, http.NewServeMux())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/admin/books", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouting_Health(t *testing.T) {
	h, _ := newTestServer(t, http.NewServeMux())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// The fake answers 404 for everything, which still counts as reachable.
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "ready"))
}

func TestRouting_ReadyzUnreachable(t *testing.T) {
	h, up := newTestServer(t, http.NewServeMux())
	up.Close()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

package catalogapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
}

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, opts...)
}

func TestClient_GetJSON(t *testing.T) {
	var got *http.Request
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"Эксмо"}]`))
	}, WithCredentials(func(context.Context) (string, string) { return "tok", "req-1" }))

	var out []item
	err := c.GetJSON(context.Background(), "/api/publishing-companies/search", url.Values{"q": {"Экс мо"}}, &out)
	require.NoError(t, err)

	assert.Equal(t, []item{{Name: "Эксмо"}}, out)
	assert.Equal(t, "/api/publishing-companies/search", got.URL.Path)
	assert.Equal(t, "Экс мо", got.URL.Query().Get("q"))
	assert.Equal(t, "Bearer tok", got.Header.Get("Authorization"))
	assert.Equal(t, "req-1", got.Header.Get("X-Request-Id"))
	assert.Equal(t, defaultUserAgent, got.Header.Get("User-Agent"))
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var auth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}, WithCredentials(func(context.Context) (string, string) { return "", "" }))

	var out []item
	require.NoError(t, c.GetJSON(context.Background(), "/api/books", nil, &out))
	assert.Empty(t, auth)
}

func TestClient_StatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Книга не найдена"))
	})

	var out item
	err := c.GetJSON(context.Background(), "/api/books/1", nil, &out)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.Equal(t, "Книга не найдена", se.Body)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrTransport))
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
}

func TestClient_ExpectExactStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "no content", status: http.StatusNoContent},
		{name: "ok is not enough", status: http.StatusOK, wantErr: true},
		{name: "not found", status: http.StatusNotFound, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body []string
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				json.NewDecoder(r.Body).Decode(&body)
				w.WriteHeader(tt.status)
			})

			err := c.Do(context.Background(), Request{
				Method: http.MethodDelete,
				Path:   "/api/books/bulk-delete",
				Body:   []string{"a", "b"},
				Expect: []int{http.StatusNoContent},
			})
			assert.Equal(t, []string{"a", "b"}, body)
			if tt.wantErr {
				assert.Equal(t, tt.status, StatusCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL)
	err := c.GetJSON(context.Background(), "/api/books", nil, &[]item{})
	assert.ErrorIs(t, err, ErrTransport)
	assert.Zero(t, StatusCode(err))
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
	}, WithTimeout(20*time.Millisecond))
	defer close(release)

	err := c.GetJSON(context.Background(), "/api/books", nil, &[]item{})
	assert.ErrorIs(t, err, ErrTransport)
}

func TestClient_NoRetry(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "/api/books", Body: item{Name: "x"}})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestClient_EmptyBodyDecodesToZero(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	var out item
	assert.NoError(t, c.Do(context.Background(), Request{Method: http.MethodPut, Path: "/api/authors/1", Out: &out}))
	assert.Equal(t, item{}, out)
}

func TestClient_Login(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Username == "admin" && req.Password == "secret" {
			w.Write([]byte(`{"token":"jwt"}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("Неверный логин или пароль"))
	})

	token, err := c.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt", token)

	_, err = c.Login(context.Background(), "admin", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestClient_CSV(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		io.WriteString(w, "Экспорт завершён: "+r.URL.Path)
	})

	msg, err := c.ExportCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Экспорт завершён: /api/csv/export", msg)

	msg, err = c.ImportCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Экспорт завершён: /api/csv/import", msg)
}

func TestClient_Ping(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	assert.NoError(t, c.Ping(context.Background()))
}

func TestClient_RateLimitHonoursContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}, WithRateLimit(0.001, 1))

	require.NoError(t, c.GetJSON(context.Background(), "/api/books", nil, &[]item{}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := c.GetJSON(ctx, "/api/books", nil, &[]item{})
	assert.ErrorIs(t, err, ErrTransport)
}

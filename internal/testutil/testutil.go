package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"libadmin/internal/httpx"
)

const testSecret = "test-secret"

// GenerateTestToken signs an HS256 token for subject valid for ttl. A
// negative ttl yields an expired token.
func GenerateTestToken(subject string, ttl time.Duration) string {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	return token
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	var reader io.Reader
	if raw, ok := body.(string); ok {
		reader = bytes.NewBufferString(raw)
	} else {
		buf, _ := json.Marshal(body)
		reader = bytes.NewReader(buf)
	}
	r := httptest.NewRequest(method, path, reader)
	r.Header.Set("Content-Type", "application/json")
	return r
}

// NewRequestWithAuth creates a request that carries token both as a header
// and in the context, as if TokenMiddleware had run.
func NewRequestWithAuth(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
		r = r.WithContext(httpx.ContextWithToken(r.Context(), token))
	}
	return r
}

// Envelope is a decoded success or error response.
type Envelope struct {
	Success bool                    `json:"success"`
	Data    json.RawMessage         `json:"data"`
	Meta    map[string]any          `json:"meta"`
	Error   httpx.ErrorResponseBody `json:"error"`
}

// DecodeEnvelope decodes the recorder body and, when data is non-nil, the
// envelope's data field into it.
func DecodeEnvelope(w *httptest.ResponseRecorder, data interface{}) (Envelope, error) {
	var env Envelope
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		return env, fmt.Errorf("decode envelope: %w", err)
	}
	if data != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, data); err != nil {
			return env, fmt.Errorf("decode data: %w", err)
		}
	}
	return env, nil
}

// FetchCall is one recorded GetJSON call.
type FetchCall struct {
	Path  string
	Query url.Values
}

// Fetcher serves canned JSON bodies keyed by path.
type Fetcher struct {
	mu        sync.Mutex
	Responses map[string]string
	Err       error
	Calls     []FetchCall
}

// NewFetcher returns a fetcher answering path with body.
func NewFetcher(path, body string) *Fetcher {
	return &Fetcher{Responses: map[string]string{path: body}}
}

func (f *Fetcher) GetJSON(_ context.Context, path string, query url.Values, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, FetchCall{Path: path, Query: query})
	if f.Err != nil {
		return f.Err
	}
	body, ok := f.Responses[path]
	if !ok {
		return errors.New("unexpected fetch " + path)
	}
	return json.Unmarshal([]byte(body), out)
}

// LastCall returns the most recent call.
func (f *Fetcher) LastCall() FetchCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Calls) == 0 {
		return FetchCall{}
	}
	return f.Calls[len(f.Calls)-1]
}

// Upstream is a fake catalog API recording every request it serves.
type Upstream struct {
	*httptest.Server
	mu       sync.Mutex
	Requests []Recorded
}

// Recorded is one request seen by Upstream.
type Recorded struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   string
}

// NewUpstream starts a fake API served by mux. It is closed when the test
// ends via cleanup.
func NewUpstream(cleanup func(func()), mux *http.ServeMux) *Upstream {
	u := &Upstream{}
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		u.mu.Lock()
		u.Requests = append(u.Requests, Recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   string(body),
		})
		u.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	cleanup(u.Close)
	return u
}

// Seen returns the recorded requests.
func (u *Upstream) Seen() []Recorded {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]Recorded, len(u.Requests))
	copy(out, u.Requests)
	return out
}

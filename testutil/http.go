package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Server is an httptest.Server that records every request it receives.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

func NewServer(t *testing.T, handler http.Handler) *Server {
	t.Helper()

	srv := &Server{
		Server:   nil,
		mu:       sync.Mutex{},
		requests: nil,
	}

	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.mu.Lock()
		srv.requests = append(srv.requests, r.Clone(r.Context()))
		srv.mu.Unlock()

		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func (s *Server) Requests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*http.Request(nil), s.requests...)
}

func (s *Server) LastRequest() *http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		return nil
	}

	return s.requests[len(s.requests)-1]
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func JSONHandler(status int, body any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, status, body)
	}
}

// ErrorHandler replies the way the API does on failure.
func ErrorHandler(status int, message string) http.HandlerFunc {
	return JSONHandler(status, map[string]any{
		"code":   status,
		"status": http.StatusText(status),
		"error":  message,
	})
}

func RawHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func AssertBasicAuth(t *testing.T, r *http.Request, username, password string) {
	t.Helper()

	user, pass, ok := r.BasicAuth()
	assert.True(t, ok, "Request should carry basic auth")
	assert.Equal(t, username, user, "Basic auth username mismatch")
	assert.Equal(t, password, pass, "Basic auth password mismatch")
}

func AssertNoQueryParam(t *testing.T, r *http.Request, key string) {
	t.Helper()
	assert.False(t, r.URL.Query().Has(key), "Query parameter %s should be absent", key)
}

func AssertQueryParam(t *testing.T, r *http.Request, key, expected string) {
	t.Helper()
	assert.Equal(t, expected, r.URL.Query().Get(key), "Query parameter %s mismatch", key)
}

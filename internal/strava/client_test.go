package strava

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"golang.org/x/oauth2"
)

// apiStub is a fake Strava API server. It serves canned bodies keyed by URL
// path and records every request so tests can assert on fetch counts and
// query parameters.
type apiStub struct {
	mu      sync.Mutex
	bodies  map[string]string
	status  map[string]int
	hits    map[string]int
	queries map[string][]url.Values
}

func newAPIStub() *apiStub {
	return &apiStub{
		bodies:  make(map[string]string),
		status:  make(map[string]int),
		hits:    make(map[string]int),
		queries: make(map[string][]url.Values),
	}
}

func (s *apiStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := r.URL.Path
	s.hits[path]++
	s.queries[path] = append(s.queries[path], r.URL.Query())

	if code, ok := s.status[path]; ok {
		w.WriteHeader(code)
		return
	}
	body, ok := s.bodies[path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Write([]byte(body))
}

func (s *apiStub) setBody(path, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bodies[path] = body
}

func (s *apiStub) setStatus(path string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[path] = code
}

func (s *apiStub) clearStatus(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.status, path)
}

func (s *apiStub) count(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

func (s *apiStub) lastQuery(path string) url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	qs := s.queries[path]
	if len(qs) == 0 {
		return nil
	}
	return qs[len(qs)-1]
}

// testClient starts an httptest server around the stub and returns a client
// pointed at it.
func testClient(t *testing.T, stub *apiStub) *Client {
	t.Helper()
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)
	return NewClient(WithBaseURL(srv.URL))
}

func TestAuthorizedClientSendsToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"rides":[]}`))
	}))
	t.Cleanup(srv.Close)

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "sekrit"})
	c := NewAuthorizedClient(ts, WithBaseURL(srv.URL))

	if _, err := c.load(context.Background(), "/rides?athleteId=7", "rides"); err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if gotAuth != "Bearer sekrit" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer sekrit")
	}
}

func TestLoadExtractsKey(t *testing.T) {
	stub := newAPIStub()
	stub.setBody("/rides/77", `{"ride":{"location":"San Francisco, CA"}}`)
	c := testClient(t, stub)

	raw, err := c.load(context.Background(), "/rides/77", "ride")
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if !strings.Contains(string(raw), "San Francisco") {
		t.Errorf("load() = %s, want the ride object", raw)
	}
}

func TestLoadTransportFailure(t *testing.T) {
	stub := newAPIStub()
	stub.setStatus("/rides/42", http.StatusInternalServerError)
	c := testClient(t, stub)

	_, err := c.load(context.Background(), "/rides/42", "ride")
	assertAPIError(t, err, "/rides/42", "request failed")
}

func TestLoadConnectionFailure(t *testing.T) {
	// A server that is already closed refuses connections.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewClient(WithBaseURL(srv.URL))

	_, err := c.load(context.Background(), "/rides/1", "ride")
	assertAPIError(t, err, "/rides/1", "request failed")
}

func TestLoadMalformedJSON(t *testing.T) {
	stub := newAPIStub()
	stub.setBody("/rides/1", `not json at all`)
	c := testClient(t, stub)

	_, err := c.load(context.Background(), "/rides/1", "ride")
	assertAPIError(t, err, "/rides/1", "parsing response failed")
}

func TestLoadMissingKey(t *testing.T) {
	stub := newAPIStub()
	stub.setBody("/rides/1", `{"something":"else"}`)
	c := testClient(t, stub)

	_, err := c.load(context.Background(), "/rides/1", "ride")
	assertAPIError(t, err, "/rides/1", "missing key")
}

func TestLoadIntoWrongShape(t *testing.T) {
	stub := newAPIStub()
	stub.setBody("/rides/1", `{"ride":"just a string"}`)
	c := testClient(t, stub)

	var attr rideAttr
	err := c.loadInto(context.Background(), "/rides/1", "ride", &attr)
	assertAPIError(t, err, "/rides/1", "parsing response failed")
}

// assertAPIError checks that err is an *APIError for the given path whose
// message contains the given fragment.
func assertAPIError(t *testing.T, err error, path, fragment string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Path != path {
		t.Errorf("APIError.Path = %q, want %q", apiErr.Path, path)
	}
	if !strings.Contains(err.Error(), fragment) {
		t.Errorf("error %q should contain %q", err.Error(), fragment)
	}
}

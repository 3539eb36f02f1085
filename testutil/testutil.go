// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/raypark-console/auth"
	"github.com/danielhkuo/raypark-console/cafe"
	"github.com/danielhkuo/raypark-console/catalog"
	"github.com/danielhkuo/raypark-console/cliparse"
	"github.com/danielhkuo/raypark-console/kv"
)

// TestDBURL opens a private in-memory SQLite database
const TestDBURL = ":memory:"

// TestDate is the date the test clock reports
const TestDate = "2024-06-01"

// TestNow is the fixed clock used by test services
func TestNow() time.Time {
	return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
}

// SetupTestStore opens a fresh SQLite-backed store with the schema applied.
// It is closed when the test ends.
func SetupTestStore(t *testing.T) kv.Store {
	t.Helper()

	cfg := GetTestConfig()
	cfg.DatabaseType = kv.BackendSQLite
	store, closeFn, err := kv.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { closeFn() })

	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		DatabaseType:    kv.BackendMemory,
		DatabaseURL:     TestDBURL,
		AdminUsername:   "bossman",
		AdminPassword:   "raygreen",
		LoginDelay:      0,
		LoginRate:       0,
		LoginBurst:      5,
		AutofillEnabled: true,
	}
}

// NewTestServices builds page services on the fixed test clock with a
// seeded random source.
func NewTestServices(store kv.Store) *cafe.Services {
	return cafe.NewServices(store, catalog.Default(), cafe.Options{
		Now:  TestNow,
		Rand: rand.New(rand.NewPCG(7, 11)),
	})
}

// CreateTestSession logs in directly against the session store
func CreateTestSession(t *testing.T, store kv.Store) *auth.Session {
	t.Helper()

	s, err := auth.NewSessions(store).Create(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}
	return s
}

// WithSession attaches s to the request the way the session middleware does
func WithSession(req *http.Request, s *auth.Session) *http.Request {
	return req.WithContext(auth.WithSession(req.Context(), s))
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// BearerHeader returns the Authorization header for a session token
func BearerHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

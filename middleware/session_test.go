// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/raypark-console/auth"
	"github.com/danielhkuo/raypark-console/kv"
)

func TestSessionToken(t *testing.T) {
	testCases := []struct {
		name     string
		cookie   string
		header   string
		expected string
	}{
		{"cookie", "abc", "", "abc"},
		{"bearer header", "", "Bearer def", "def"},
		{"cookie wins over header", "abc", "Bearer def", "abc"},
		{"other scheme ignored", "", "Basic Zm9vOmJhcg==", ""},
		{"nothing", "", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tc.cookie})
			}
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			if got := SessionToken(req); got != tc.expected {
				t.Errorf("Expected token '%s', got '%s'", tc.expected, got)
			}
		})
	}
}

func TestWithSession(t *testing.T) {
	sessions := auth.NewSessions(kv.NewMemoryStore())
	sess, err := sessions.Create(context.Background())
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	var seen *auth.Session
	handler := WithSession(sessions, func(w http.ResponseWriter, r *http.Request) {
		seen = auth.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/equipment", nil)
		req.Header.Set("Authorization", "Bearer "+sess.Token)
		w := httptest.NewRecorder()

		handler(w, req)

		if !seen.IsAuthenticated() {
			t.Error("Expected an authenticated session")
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/equipment", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "forged"})
		w := httptest.NewRecorder()

		handler(w, req)

		if seen.IsAuthenticated() {
			t.Error("Expected a logged-out session for an unknown token")
		}
		if w.Code != http.StatusNoContent {
			t.Errorf("Expected the handler to run, got status %d", w.Code)
		}
	})
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		if seen == "" {
			t.Fatal("Expected a request id in the context")
		}
		if w.Header().Get("X-Request-ID") != seen {
			t.Errorf("Expected response header '%s', got '%s'", seen, w.Header().Get("X-Request-ID"))
		}
	})

	t.Run("reused from client", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Request-ID", "till-3")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if seen != "till-3" {
			t.Errorf("Expected 'till-3', got '%s'", seen)
		}
	})
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	call := func(addr string) int {
		req := httptest.NewRequest("POST", "/auth/login", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		handler(w, req)
		return w.Code
	}

	for i := 0; i < 2; i++ {
		if code := call("10.0.0.1:5000"); code != http.StatusOK {
			t.Fatalf("Attempt %d: expected 200, got %d", i+1, code)
		}
	}
	if code := call("10.0.0.1:5001"); code != http.StatusTooManyRequests {
		t.Errorf("Expected 429 after burst, got %d", code)
	}
	if code := call("10.0.0.2:5000"); code != http.StatusOK {
		t.Errorf("Expected other clients to be unaffected, got %d", code)
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(0, 1)
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest("POST", "/auth/login", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("Expected no limiting, got %d", w.Code)
		}
	}
}

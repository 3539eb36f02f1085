// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/raypark-console/auth"
)

// SessionCookie carries the session token for browser clients.
const SessionCookie = "raypark_session"

// SessionToken reads the token from the session cookie, falling back to an
// Authorization: Bearer header.
func SessionToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// WithSession resolves the request's session and stores it in the context.
// Unknown or missing tokens give a logged-out session; the handler decides
// whether that is allowed.
func WithSession(sessions *auth.Sessions, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := sessions.Lookup(r.Context(), SessionToken(r))
		if err != nil {
			slog.Error("failed to look up session", "error", err, "request_id", GetRequestID(r.Context()))
			ErrorResponse(w, http.StatusInternalServerError, "Session lookup failed")
			return
		}
		next(w, r.WithContext(auth.WithSession(r.Context(), s)))
	}
}

type requestIDKey struct{}

// RequestID tags every request with an X-Request-ID, reusing the client's
// value when present.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

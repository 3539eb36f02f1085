// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"fmt"

	"github.com/danielhkuo/raypark-console/kv"
)

// FlagPrefix is the key prefix of a session's auth flag.
const FlagPrefix = "auth-flag:"

const flagValue = "true"

// Session is the caller identity handed to every operation that needs a
// logged-in user. The zero value and nil are both logged out.
type Session struct {
	Token         string
	authenticated bool
}

func Anonymous() *Session { return &Session{} }

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.authenticated
}

// Require returns ErrUnauthenticated unless the session is logged in.
func (s *Session) Require() error {
	if !s.IsAuthenticated() {
		return ErrUnauthenticated
	}
	return nil
}

// Sessions keeps one auth flag per token. Flags never expire; they are
// removed only by Destroy.
type Sessions struct {
	kv kv.Store
}

func NewSessions(store kv.Store) *Sessions {
	return &Sessions{kv: store}
}

func (s *Sessions) Create(ctx context.Context) (*Session, error) {
	token, err := GenerateID(24)
	if err != nil {
		return nil, err
	}
	if err := s.kv.Set(ctx, FlagPrefix+token, flagValue); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return &Session{Token: token, authenticated: true}, nil
}

// Lookup returns a logged-out session for unknown tokens.
func (s *Sessions) Lookup(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return Anonymous(), nil
	}
	v, ok, err := s.kv.Get(ctx, FlagPrefix+token)
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	return &Session{Token: token, authenticated: ok && v == flagValue}, nil
}

func (s *Sessions) Destroy(ctx context.Context, token string) error {
	if err := s.kv.Delete(ctx, FlagPrefix+token); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

type sessionKey struct{}

// WithSession stores s in ctx for handlers further down the chain.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the request's session, or a logged-out one.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(sessionKey{}).(*Session); ok && s != nil {
		return s
	}
	return Anonymous()
}

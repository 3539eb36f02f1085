// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not logged in")
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Gate checks logins against the single configured credential pair and
// opens sessions for successful ones.
type Gate struct {
	username string
	password string
	delay    time.Duration
	sessions *Sessions
}

func NewGate(username, password string, delay time.Duration, sessions *Sessions) *Gate {
	return &Gate{username: username, password: password, delay: delay, sessions: sessions}
}

// Verify waits the fixed login delay, then compares the credentials.
// A cancelled context ends the wait and counts as a failed check.
func (g *Gate) Verify(ctx context.Context, username, password string) bool {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}
	}
	// Compare both halves so a wrong username costs the same as a wrong password.
	userOK := hmac.Equal([]byte(username), []byte(g.username))
	passOK := hmac.Equal([]byte(password), []byte(g.password))
	return userOK && passOK
}

// Login verifies the credentials and opens a session.
func (g *Gate) Login(ctx context.Context, username, password string) (*Session, error) {
	if !g.Verify(ctx, username, password) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, ErrInvalidCredentials
	}
	return g.sessions.Create(ctx)
}

// Logout clears the session's auth flag.
func (g *Gate) Logout(ctx context.Context, s *Session) error {
	if s == nil || s.Token == "" {
		return nil
	}
	return g.sessions.Destroy(ctx, s.Token)
}

// Sessions exposes the session store backing this gate.
func (g *Gate) Sessions() *Sessions { return g.sessions }

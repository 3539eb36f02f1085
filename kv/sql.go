// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQL dialects
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// SQLStore keeps every key as one row of the kv_store table.
type SQLStore struct {
	db      *sql.DB
	getSQL  string
	setSQL  string
	delSQL  string
	dialect string
}

// NewSQLStore wraps an open database. The schema must already exist
// (see db.CreateSchema).
func NewSQLStore(db *sql.DB, dialect string) (*SQLStore, error) {
	s := &SQLStore{db: db, dialect: dialect}
	switch dialect {
	case DialectSQLite:
		s.getSQL = `SELECT value FROM kv_store WHERE store_key = ?`
		s.setSQL = `INSERT INTO kv_store (store_key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT (store_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
		s.delSQL = `DELETE FROM kv_store WHERE store_key = ?`
	case DialectPostgres:
		s.getSQL = `SELECT value FROM kv_store WHERE store_key = $1`
		s.setSQL = `INSERT INTO kv_store (store_key, value, updated_at) VALUES ($1, $2, $3)
			ON CONFLICT (store_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
		s.delSQL = `DELETE FROM kv_store WHERE store_key = $1`
	default:
		return nil, fmt.Errorf("%w: sql dialect %q", ErrUnknownBackend, dialect)
	}
	return s, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.getSQL, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, s.setSQL, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.delSQL, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Dialect reports which placeholder style the store was built with.
func (s *SQLStore) Dialect() string { return s.dialect }

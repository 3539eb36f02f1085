// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kv

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/raypark-console/cliparse"
	"github.com/danielhkuo/raypark-console/db"
)

// Backend types
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

const redisKeyPrefix = "raypark:"

// Open builds the store selected by cfg.DatabaseType and returns a close func.
func Open(ctx context.Context, cfg cliparse.Config) (Store, func() error, error) {
	switch cfg.DatabaseType {
	case BackendMemory:
		return NewMemoryStore(), func() error { return nil }, nil

	case BackendRedis:
		rs := NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, 0, redisKeyPrefix)
		if err := rs.Ping(ctx); err != nil {
			rs.Close()
			return nil, nil, fmt.Errorf("redis ping failed: %w", err)
		}
		return rs, rs.Close, nil

	case BackendSQLite, BackendPostgres:
		driver := "sqlite"
		if cfg.DatabaseType == BackendPostgres {
			driver = "postgres"
		}
		conn, err := sql.Open(driver, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection failed: %w", err)
		}
		if cfg.DatabaseType == BackendSQLite {
			// one writer; also keeps ":memory:" databases on a single connection
			conn.SetMaxOpenConns(1)
		}
		if err := conn.PingContext(ctx); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("database ping failed: %w", err)
		}
		if err := db.CreateSchema(conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		s, err := NewSQLStore(conn, cfg.DatabaseType)
		if err != nil {
			conn.Close()
			return nil, nil, err
		}
		return s, conn.Close, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.DatabaseType)
}

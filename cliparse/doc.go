// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first when present.

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite, postgres, redis or memory (default: sqlite)
  - DatabaseURL: SQLite file or PostgreSQL connection string
  - RedisAddr: Redis host:port (default: localhost:6379 for redis)
  - AdminUsername / AdminPassword: the single console login
  - LoginDelay: fixed wait before a login is answered (default: 800ms)
  - LoginRate: login attempts per second per client (default: 1, burst 5)
  - CatalogFile: YAML override for tasks, units and equipment
  - AutofillEnabled: exposes the sample data endpoints

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Storage backend
	-redis       Redis address
	-user        Console username
	-password    Console password
	-login-delay Login delay (e.g. 800ms)
	-login-rate  Login attempts per second
	-catalog     Catalog YAML file
	-autofill    Enable auto-fill endpoints

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	REDIS_ADDR       → -redis
	REDIS_PASSWORD
	ADMIN_USERNAME   → -user
	ADMIN_PASSWORD   → -password
	LOGIN_DELAY      → -login-delay
	LOGIN_RATE       → -login-rate
	CATALOG_FILE     → -catalog
	AUTOFILL_ENABLED → -autofill

CLI flags take precedence over environment variables.
*/
package cliparse

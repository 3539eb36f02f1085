// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Ray Park café console API.

The console is a staff-only tool behind a single shared login: fridge and
freezer temperature logs, opening and closing checklists, an equipment
maintenance log and delivery records. Every page is stored as a JSON
document under a fixed key in a key-value store.

# Starting the Server

With no configuration the server stores everything in ./raypark.db:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."
	go run . -t redis -redis localhost:6379
	go run . -t memory -autofill

A .env file in the working directory is read first.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres, redis or memory (default: sqlite)
  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - REDIS_ADDR (-redis), REDIS_PASSWORD: Redis backend
  - ADMIN_USERNAME (-user), ADMIN_PASSWORD (-password): Console login
  - LOGIN_DELAY (-login-delay): Fixed wait before a login answer (default: 800ms)
  - LOGIN_RATE (-login-rate): Login attempts per second per client (default: 1)
  - CATALOG_FILE (-catalog): YAML override for tasks, units and equipment
  - AUTOFILL_ENABLED (-autofill): Expose the sample-data endpoints

# Architecture

  - recordstore: Typed collections over one key each (fail-soft loads)
  - kv: Key-value backends (SQLite, PostgreSQL, Redis, memory)
  - cafe: Page services (temperature, checklists, equipment, deliveries, dashboard)
  - auth: Credential gate and session flags
  - catalog: Built-in reference lists and YAML overrides
  - handlers, router, middleware: HTTP surface
  - metrics: Prometheus counters
  - models: Records and request/response types
  - db: SQL schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

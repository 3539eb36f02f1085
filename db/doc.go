// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes the single table the console needs:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - kv_store: one row per store key (store_key, value, updated_at)

Each page collection is one row holding a JSON document, so a save
rewrites the whole collection. The DDL is valid for both SQLite and
PostgreSQL.
*/
package db

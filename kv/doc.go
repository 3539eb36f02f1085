// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package kv is the persistent string key-value store every page writes to.

# Backends

  - MemoryStore: process memory (tests, -t memory)
  - SQLStore: one kv_store row per key on SQLite or PostgreSQL
  - RedisStore: one Redis string per key under the "raypark:" prefix

Open selects a backend from configuration:

	store, closeFn, err := kv.Open(ctx, cfg)
	defer closeFn()

# Keys

	auth-flag:<token>     "true" while a session is logged in
	checklist:opening     JSON object, date -> items
	checklist:closing     JSON object, date -> items
	temperature-readings  JSON array of readings
	equipment-records     JSON array of equipment
	delivery-records      JSON array of deliveries

Set always overwrites; there is no versioning or conflict detection, so
two writers racing on one key end with whichever wrote last.
*/
package kv

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package cafe implements the console pages on top of the record store:
// temperature logs, opening and closing checklists, the equipment
// maintenance log, delivery records and the daily dashboard.
//
// Every operation takes the caller's *auth.Session and fails with
// auth.ErrUnauthenticated unless it is logged in. Each service serializes
// its own read-modify-write cycles; separate processes sharing a store
// still overwrite each other's saves.
package cafe

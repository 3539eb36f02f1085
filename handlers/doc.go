// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the café console.

# Handler Types

Each handler is a struct over the shared page services:

  - AuthHandler: login, logout and session status
  - TemperatureHandler: daily fridge and freezer readings
  - ChecklistHandler: opening and closing checklists
  - EquipmentHandler: maintenance log
  - DeliveryHandler: delivery records
  - DashboardHandler: one-day summary

	temperatureHandler := handlers.NewTemperatureHandler(svc)

# Sessions

Handlers read the caller's session with auth.FromContext (placed there by
middleware.WithSession) and pass it to the service, which refuses
logged-out callers.

# Errors

Service errors map onto statuses: not logged in is 401, unknown
records, units and checklist kinds are 404, malformed dates and
conditions are 400, and storage failures are logged and returned as 500.

# Dates

Endpoints that work on one day take ?date=YYYY-MM-DD and default to today.
*/
package handlers

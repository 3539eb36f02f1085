// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Ray Park café console.

# Route Registration

NewRouter wires every endpoint onto an http.ServeMux and wraps it with
request IDs and CORS:

	svc := cafe.NewServices(store, cat, cafe.Options{})
	handler := router.NewRouter(store, svc, cfg)

# Endpoints

Operations:

	GET /health
	GET /metrics

Login gate (login is rate limited per client IP):

	POST /auth/login  - Check credentials, set the session cookie
	POST /auth/logout - Clear the session
	GET  /auth/me     - Report whether the caller is logged in

Pages (logged-in only):

	GET    /temperature?date=
	PUT    /temperature/{unit}
	GET    /checklists/{kind}?date=
	GET    /checklists/{kind}/history
	POST   /checklists/{kind}/items/{id}/toggle?date=
	POST   /checklists/{kind}/check-all?date=
	GET    /equipment
	PATCH  /equipment/{id}
	GET    /deliveries
	POST   /deliveries
	PATCH  /deliveries/{id}
	DELETE /deliveries/{id}
	GET    /dashboard?date=

Auto-fill (only with -autofill; otherwise 404):

	POST /temperature/autofill?date=
	POST /equipment/autofill
	POST /deliveries/autofill
*/
package router

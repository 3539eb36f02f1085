// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /equipment", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms).

# Request IDs

RequestID stamps every request with an X-Request-ID header (reusing the
client's one when sent) and makes it available through GetRequestID.

# Sessions

WithSession looks up the session token from the raypark_session cookie or
an Authorization: Bearer header and stores the resulting *auth.Session in
the request context. Unknown tokens are not rejected here; the page
services refuse logged-out sessions themselves.

# Rate Limiting

RateLimiter keeps a token bucket per client IP (golang.org/x/time/rate)
and answers 429 with Retry-After once a client runs out:

	limiter := middleware.NewRateLimiter(cfg.LoginRate, cfg.LoginBurst)
	mux.HandleFunc("POST /auth/login", limiter.Limit(authHandler.Login))

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware

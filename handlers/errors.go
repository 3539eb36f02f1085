// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/raypark-console/auth"
	"github.com/danielhkuo/raypark-console/cafe"
	"github.com/danielhkuo/raypark-console/middleware"
)

// writeServiceError maps a page service error onto an HTTP status.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, op string) {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Login required")
	case errors.Is(err, cafe.ErrNotFound),
		errors.Is(err, cafe.ErrUnknownKind),
		errors.Is(err, cafe.ErrUnknownUnit):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, cafe.ErrInvalidDate),
		errors.Is(err, cafe.ErrInvalidCondition):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.Canceled):
		// client went away
	default:
		slog.Error(op, "error", err, "request_id", middleware.GetRequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
	}
}

// dateParam returns ?date= or, when absent, today's date.
func dateParam(r *http.Request, svc *cafe.Services) string {
	if d := r.URL.Query().Get("date"); d != "" {
		return d
	}
	return svc.Today()
}

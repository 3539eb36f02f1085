// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/raypark-console/auth"
	"github.com/danielhkuo/raypark-console/cafe"
	"github.com/danielhkuo/raypark-console/middleware"
)

type DashboardHandler struct {
	svc *cafe.Services
}

func NewDashboardHandler(svc *cafe.Services) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary handles GET /dashboard?date=
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Dashboard.Summary(r.Context(), auth.FromContext(r.Context()), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, r, err, "failed to build dashboard")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, sum)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/raypark-console/auth"
	"github.com/danielhkuo/raypark-console/cafe"
	"github.com/danielhkuo/raypark-console/middleware"
)

type ChecklistHandler struct {
	svc *cafe.Services
}

func NewChecklistHandler(svc *cafe.Services) *ChecklistHandler {
	return &ChecklistHandler{svc: svc}
}

// GetDay handles GET /checklists/{kind}?date=
func (h *ChecklistHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	day, err := h.svc.Checklists.Day(r.Context(), auth.FromContext(r.Context()), r.PathValue("kind"), dateParam(r, h.svc))
	if err != nil {
		writeServiceError(w, r, err, "failed to load checklist")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, day)
}

// GetHistory handles GET /checklists/{kind}/history
func (h *ChecklistHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.svc.Checklists.History(r.Context(), auth.FromContext(r.Context()), r.PathValue("kind"))
	if err != nil {
		writeServiceError(w, r, err, "failed to load checklist history")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, history)
}

// Toggle handles POST /checklists/{kind}/items/{id}/toggle?date=
func (h *ChecklistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	day, err := h.svc.Checklists.Toggle(r.Context(), auth.FromContext(r.Context()),
		r.PathValue("kind"), dateParam(r, h.svc), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "failed to toggle checklist item")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, day)
}

// CheckAll handles POST /checklists/{kind}/check-all?date=
func (h *ChecklistHandler) CheckAll(w http.ResponseWriter, r *http.Request) {
	day, err := h.svc.Checklists.CheckAll(r.Context(), auth.FromContext(r.Context()), r.PathValue("kind"), dateParam(r, h.svc))
	if err != nil {
		writeServiceError(w, r, err, "failed to check all items")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, day)
}

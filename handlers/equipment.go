// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/raypark-console/auth"
	"github.com/danielhkuo/raypark-console/cafe"
	"github.com/danielhkuo/raypark-console/middleware"
	"github.com/danielhkuo/raypark-console/models"
)

type EquipmentHandler struct {
	svc *cafe.Services
}

func NewEquipmentHandler(svc *cafe.Services) *EquipmentHandler {
	return &EquipmentHandler{svc: svc}
}

// List handles GET /equipment
func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Equipment.List(r.Context(), auth.FromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "failed to load equipment")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, list)
}

// Update handles PATCH /equipment/{id}
func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.EquipmentUpdateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	row, err := h.svc.Equipment.Update(r.Context(), auth.FromContext(r.Context()), r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, r, err, "failed to update equipment")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, row)
}

// AutoFill handles POST /equipment/autofill
func (h *EquipmentHandler) AutoFill(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Equipment.AutoFill(r.Context(), auth.FromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "failed to auto-fill equipment")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, list)
}

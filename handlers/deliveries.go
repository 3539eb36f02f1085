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

type DeliveryHandler struct {
	svc *cafe.Services
}

func NewDeliveryHandler(svc *cafe.Services) *DeliveryHandler {
	return &DeliveryHandler{svc: svc}
}

// List handles GET /deliveries
func (h *DeliveryHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Deliveries.List(r.Context(), auth.FromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "failed to load deliveries")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, list)
}

// Add handles POST /deliveries
func (h *DeliveryHandler) Add(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Deliveries.Add(r.Context(), auth.FromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "failed to add delivery")
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, rec)
}

// Update handles PATCH /deliveries/{id}
func (h *DeliveryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.DeliveryUpdateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	rec, err := h.svc.Deliveries.Update(r.Context(), auth.FromContext(r.Context()), r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, r, err, "failed to update delivery")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, rec)
}

// Delete handles DELETE /deliveries/{id}
func (h *DeliveryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Deliveries.Delete(r.Context(), auth.FromContext(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "failed to delete delivery")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AutoFill handles POST /deliveries/autofill
func (h *DeliveryHandler) AutoFill(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Deliveries.AutoFill(r.Context(), auth.FromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "failed to auto-fill deliveries")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, list)
}

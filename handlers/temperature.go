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

type TemperatureHandler struct {
	svc *cafe.Services
}

func NewTemperatureHandler(svc *cafe.Services) *TemperatureHandler {
	return &TemperatureHandler{svc: svc}
}

// GetDay handles GET /temperature?date=
func (h *TemperatureHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	day, err := h.svc.Temperature.Day(r.Context(), auth.FromContext(r.Context()), dateParam(r, h.svc))
	if err != nil {
		writeServiceError(w, r, err, "failed to load temperature log")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, day)
}

// Record handles PUT /temperature/{unit}
func (h *TemperatureHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req models.TemperatureUpdateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.AM == nil && req.PM == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "am or pm is required")
		return
	}
	date := req.Date
	if date == "" {
		date = h.svc.Today()
	}

	row, err := h.svc.Temperature.Record(r.Context(), auth.FromContext(r.Context()), date, r.PathValue("unit"), req.AM, req.PM)
	if err != nil {
		writeServiceError(w, r, err, "failed to record temperature")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, row)
}

// AutoFill handles POST /temperature/autofill?date=
func (h *TemperatureHandler) AutoFill(w http.ResponseWriter, r *http.Request) {
	day, err := h.svc.Temperature.AutoFill(r.Context(), auth.FromContext(r.Context()), dateParam(r, h.svc))
	if err != nil {
		writeServiceError(w, r, err, "failed to auto-fill temperatures")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, day)
}

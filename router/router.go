// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/raypark-console/auth"
	"github.com/danielhkuo/raypark-console/cafe"
	"github.com/danielhkuo/raypark-console/cliparse"
	"github.com/danielhkuo/raypark-console/handlers"
	"github.com/danielhkuo/raypark-console/kv"
	"github.com/danielhkuo/raypark-console/metrics"
	"github.com/danielhkuo/raypark-console/middleware"
)

// Version is written by the root endpoint.
const Version = "raypark console API v1"

func NewRouter(store kv.Store, svc *cafe.Services, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	sessions := auth.NewSessions(store)
	gate := auth.NewGate(cfg.AdminUsername, cfg.AdminPassword, cfg.LoginDelay, sessions)
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRate, cfg.LoginBurst)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(gate)
	temperatureHandler := handlers.NewTemperatureHandler(svc)
	checklistHandler := handlers.NewChecklistHandler(svc)
	equipmentHandler := handlers.NewEquipmentHandler(svc)
	deliveryHandler := handlers.NewDeliveryHandler(svc)
	dashboardHandler := handlers.NewDashboardHandler(svc)

	page := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithSession(sessions, h))
	}
	// Auto-fill routes always exist so a disabled one answers 404 rather
	// than 405 from the neighbouring patterns.
	autofill := func(h http.HandlerFunc) http.HandlerFunc {
		if cfg.AutofillEnabled {
			return page(h)
		}
		return func(w http.ResponseWriter, r *http.Request) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Auto-fill is disabled")
		}
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", metrics.Handler())

	// Login gate. Login stays out of the request log so failed attempts
	// leave no trace; the handler logs successful logins itself.
	mux.HandleFunc("POST /auth/login", loginLimiter.Limit(authHandler.Login))
	mux.HandleFunc("POST /auth/logout", page(authHandler.Logout))
	mux.HandleFunc("GET /auth/me", page(authHandler.Me))

	// Temperature log
	mux.HandleFunc("GET /temperature", page(temperatureHandler.GetDay))
	mux.HandleFunc("PUT /temperature/{unit}", page(temperatureHandler.Record))
	mux.HandleFunc("POST /temperature/autofill", autofill(temperatureHandler.AutoFill))

	// Opening and closing checklists
	mux.HandleFunc("GET /checklists/{kind}", page(checklistHandler.GetDay))
	mux.HandleFunc("GET /checklists/{kind}/history", page(checklistHandler.GetHistory))
	mux.HandleFunc("POST /checklists/{kind}/items/{id}/toggle", page(checklistHandler.Toggle))
	mux.HandleFunc("POST /checklists/{kind}/check-all", page(checklistHandler.CheckAll))

	// Equipment maintenance
	mux.HandleFunc("GET /equipment", page(equipmentHandler.List))
	mux.HandleFunc("PATCH /equipment/{id}", page(equipmentHandler.Update))
	mux.HandleFunc("POST /equipment/autofill", autofill(equipmentHandler.AutoFill))

	// Deliveries
	mux.HandleFunc("GET /deliveries", page(deliveryHandler.List))
	mux.HandleFunc("POST /deliveries", page(deliveryHandler.Add))
	mux.HandleFunc("PATCH /deliveries/{id}", page(deliveryHandler.Update))
	mux.HandleFunc("DELETE /deliveries/{id}", page(deliveryHandler.Delete))
	mux.HandleFunc("POST /deliveries/autofill", autofill(deliveryHandler.AutoFill))

	mux.HandleFunc("GET /dashboard", page(dashboardHandler.Summary))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Version))
	})

	return middleware.RequestID(middleware.CORS(mux))
}

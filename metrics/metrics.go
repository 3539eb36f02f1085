// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics holds the Prometheus collectors shared by the store and
// the HTTP layer.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RecordLoads counts collection reads by outcome: absent, corrupt, present.
	RecordLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "raypark",
		Name:      "record_loads_total",
		Help:      "Collection reads from the key-value store by outcome.",
	}, []string{"key", "state"})

	RecordSaves = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "raypark",
		Name:      "record_saves_total",
		Help:      "Whole-collection writes to the key-value store.",
	}, []string{"key"})

	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "raypark",
		Name:      "login_attempts_total",
		Help:      "Console login attempts by result.",
	}, []string{"result"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

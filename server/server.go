// Package server assembles the HTTP surface of the relay: routing, CORS,
// body limits, logging and metrics.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cloudadvisor/config"
	"cloudadvisor/relay"
)

const livenessBody = "Cloud Advisor AI relay is running"

// New constructs the HTTP handler for the relay.
func New(cfg *config.Config, gen relay.Generator) http.Handler {
	r := chi.NewRouter()

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"*"},
		}))
	}
	r.Use(requestLogger)
	r.Use(bodyLimit)

	preg := prometheus.NewRegistry()
	metrics := newRelayMetrics(preg)
	r.Use(metrics.middleware)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(livenessBody))
	})

	r.Route("/api/ai", func(ar chi.Router) {
		for _, route := range relay.Routes() {
			ar.Method(http.MethodPost, "/"+route.Name, relay.NewHandler(route, gen))
		}
	})

	r.Handle("/metrics", promhttp.HandlerFor(preg, promhttp.HandlerOpts{}))

	return r
}

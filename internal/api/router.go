package api

import (
	"net/http"
	"warehouse-picker-service/internal/api/handlers"
	"warehouse-picker-service/internal/platform/metrics"
	"warehouse-picker-service/internal/ports"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the adapters the HTTP layer depends on. Cache may be nil.
type Deps struct {
	Repo           ports.LocationRepository
	Finder         ports.LocationFinder
	Cache          ports.RouteCache
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	locHandler := &handlers.LocationHandler{Repo: deps.Repo, Finder: deps.Finder}
	routeHandler := &handlers.RouteHandler{Repo: deps.Repo, Cache: deps.Cache}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/locations", locHandler.List)
	mux.HandleFunc("/locations/nearby", locHandler.Nearby)
	mux.HandleFunc("/locations/within", locHandler.Within)
	mux.HandleFunc("/routes", routeHandler.Plan)
	mux.HandleFunc("/routes/score", routeHandler.Score)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	burst := deps.RateLimitBurst
	if burst < 1 {
		burst = 1
	}

	return requestIDMiddleware(loggingMiddleware(rateLimitMiddleware(deps.RateLimitRPS, burst, mux)))
}

package api

import (
	"net/http"

	"cargo-route-service/internal/adapters/catalog"
	"cargo-route-service/internal/api/handlers"
	"cargo-route-service/internal/config"
	"cargo-route-service/internal/metrics"
	"cargo-route-service/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters
// beyond the catalog store they share).
func NewRouter(store *catalog.Store, cfg *config.Config) http.Handler {
	optimizeHandler := &handlers.OptimizeHandler{
		Catalog: store,
		Optimizer: services.OptimizerConfig{
			ExhaustiveEventLimit: cfg.Optimizer.ExhaustiveEventLimit,
			TimeBudget:           cfg.Optimizer.TimeBudget,
			MaxIterations:        cfg.Optimizer.MaxIterations,
			MaxRefinePasses:      cfg.Optimizer.MaxRefinePasses,
		},
		DefaultCapacitySCU: cfg.Optimizer.DefaultShipCapacitySCU,
	}
	locationHandler := &handlers.LocationHandler{Catalog: store}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestMiddleware)

	r.Get("/health", handlers.Health)
	r.Get("/api/locations", locationHandler.List)
	r.Post("/api/catalog/reload", locationHandler.Reload)
	r.Get("/api/ships", handlers.Ships)
	r.Post("/api/optimize", optimizeHandler.Optimize)

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return r
}

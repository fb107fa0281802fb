package routers

import (
	"github.com/go-chi/chi/v5"

	"interviewprep/internal/handlers"
)

func HealthRoutes(r *chi.Mux, healthHandler *handlers.HealthHandler) {
	r.Get("/healthz", healthHandler.HealthzHandler)
	r.Get("/readyz", healthHandler.ReadyzHandler)
}

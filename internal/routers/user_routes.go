package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"interviewprep/internal/handlers"
	"interviewprep/internal/middleware"
	"interviewprep/internal/models"
)

// UserRoutes wires registration, login, and the token-guarded profile routes.
func UserRoutes(r *chi.Mux, authHandler *handlers.AuthHandler, userHandler *handlers.UserHandler, guard func(http.Handler) http.Handler) {
	r.Route("/api/v1/users", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.RegisterRequest]()).Post("/", authHandler.RegisterHandler)
		r.With(middleware.ValidateRequest[*models.LoginRequest]()).Post("/login", authHandler.LoginHandler)

		r.Group(func(r chi.Router) {
			r.Use(guard)
			r.Get("/{id}", userHandler.GetUserHandler)
			r.Get("/{id}/performance", userHandler.GetPerformanceHandler)
			r.Put("/{id}/last-active", userHandler.UpdateLastActiveHandler)
		})
	})
}

package routers

import (
	"github.com/go-chi/chi/v5"

	"interviewprep/internal/handlers"
)

func AdminRoutes(r *chi.Mux, adminHandler *handlers.AdminHandler) {
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Get("/stats", adminHandler.StatsHandler)
		r.Get("/users", adminHandler.ListUsersHandler)
		r.Delete("/users/{id}", adminHandler.DeleteUserHandler)
	})
}

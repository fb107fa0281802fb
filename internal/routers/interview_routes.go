package routers

import (
	"github.com/go-chi/chi/v5"

	"interviewprep/internal/handlers"
	"interviewprep/internal/middleware"
	"interviewprep/internal/models"
)

func InterviewRoutes(r *chi.Mux, interviewHandler *handlers.InterviewHandler) {
	r.Route("/api/v1/interviews", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.CreateInterviewRequest]()).Post("/", interviewHandler.CreateInterviewHandler)
		r.Get("/{id}", interviewHandler.GetInterviewHandler)
		r.Get("/{id}/details", interviewHandler.GetInterviewDetailsHandler)
		r.Get("/user/{user_id}", interviewHandler.GetUserInterviewsHandler)
		r.With(middleware.ValidateRequest[*models.UpdateStatusRequest]()).Put("/{id}/status", interviewHandler.UpdateStatusHandler)
		r.With(middleware.ValidateRequest[*models.UpdateScoreRequest]()).Put("/{id}/score", interviewHandler.UpdateScoreHandler)
	})
}

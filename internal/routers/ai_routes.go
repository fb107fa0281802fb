package routers

import (
	"github.com/go-chi/chi/v5"

	"interviewprep/internal/handlers"
	"interviewprep/internal/middleware"
	"interviewprep/internal/models"
)

func AIRoutes(r *chi.Mux, aiHandler *handlers.AIHandler) {
	r.Route("/api/v1/ai", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.GenerateQuestionsRequest]()).Post("/generate-questions", aiHandler.GenerateQuestionsHandler)
		r.With(middleware.ValidateRequest[*models.AnalyzeAnswersRequest]()).Post("/analyze-answers", aiHandler.AnalyzeAnswersHandler)
	})
}

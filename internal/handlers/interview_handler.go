package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"interviewprep/internal/middleware"
	"interviewprep/internal/models"
	"interviewprep/internal/repositories"
	"interviewprep/internal/utils"
)

// userInterviewsLimit caps the per-user listing; the listing is not paginated.
const userInterviewsLimit = 100

type InterviewHandler struct {
	interviews InterviewRepo
}

func NewInterviewHandler(interviews InterviewRepo) *InterviewHandler {
	return &InterviewHandler{interviews: interviews}
}

func (h *InterviewHandler) CreateInterviewHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.CreateInterviewRequest](r)

	iv := &models.Interview{
		UserID:          req.UserID,
		Role:            req.Role,
		ExperienceLevel: req.ExperienceLevel,
		Topics:          req.Topics,
		Duration:        req.Duration,
		Date:            req.Date,
		Status:          req.Status,
	}

	created, err := h.interviews.Create(r.Context(), iv)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to create interview",
		})
		return
	}

	utils.JSON(w, http.StatusCreated, created)
}

func (h *InterviewHandler) GetInterviewHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	iv, err := h.interviews.GetByID(r.Context(), id)
	if errors.Is(err, repositories.ErrInterviewNotFound) {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "interview_not_found",
			Message: "Interview not found",
		})
		return
	}
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to retrieve interview",
		})
		return
	}

	utils.JSON(w, http.StatusOK, iv)
}

func (h *InterviewHandler) GetInterviewDetailsHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := h.interviews.GetDetail(r.Context(), id)
	if errors.Is(err, repositories.ErrDetailNotFound) {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "details_not_found",
			Message: "Interview details not found",
		})
		return
	}
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to retrieve interview details",
		})
		return
	}

	utils.JSON(w, http.StatusOK, detail)
}

func (h *InterviewHandler) GetUserInterviewsHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	interviews, err := h.interviews.ListByUser(r.Context(), userID, userInterviewsLimit)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to retrieve interviews",
		})
		return
	}
	if interviews == nil {
		interviews = []models.Interview{}
	}

	utils.JSON(w, http.StatusOK, interviews)
}

func (h *InterviewHandler) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	req := middleware.GetValidatedRequest[*models.UpdateStatusRequest](r)

	err := h.interviews.UpdateStatus(r.Context(), id, req.Status)
	if errors.Is(err, repositories.ErrInterviewNotFound) {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "interview_not_found",
			Message: "Interview not found",
		})
		return
	}
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to update interview status",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.MessageResponse{Message: "Interview status updated successfully"})
}

func (h *InterviewHandler) UpdateScoreHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	req := middleware.GetValidatedRequest[*models.UpdateScoreRequest](r)

	err := h.interviews.UpdateScore(r.Context(), id, *req.Score)
	if errors.Is(err, repositories.ErrInterviewNotFound) {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "interview_not_found",
			Message: "Interview not found",
		})
		return
	}
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to update interview score",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.MessageResponse{Message: "Interview score updated successfully"})
}

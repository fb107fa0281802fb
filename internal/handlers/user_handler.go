package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"interviewprep/internal/models"
	"interviewprep/internal/repositories"
	"interviewprep/internal/utils"
)

// UserHandler serves profile and performance lookups for authenticated callers.
type UserHandler struct {
	users UserRepo
}

func NewUserHandler(users UserRepo) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	user, err := h.users.GetByID(r.Context(), userID)
	if errors.Is(err, repositories.ErrUserNotFound) {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "user_not_found",
			Message: "User not found",
		})
		return
	}
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to retrieve user",
		})
		return
	}

	utils.JSON(w, http.StatusOK, user)
}

func (h *UserHandler) GetPerformanceHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	perf, err := h.users.GetPerformance(r.Context(), userID)
	if errors.Is(err, repositories.ErrPerformanceNotFound) {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "performance_not_found",
			Message: "Performance data not found",
		})
		return
	}
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to retrieve performance data",
		})
		return
	}

	utils.JSON(w, http.StatusOK, perf)
}

func (h *UserHandler) UpdateLastActiveHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	err := h.users.UpdateLastActive(r.Context(), userID, time.Now().UTC())
	if errors.Is(err, repositories.ErrUserNotFound) {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "user_not_found",
			Message: "User not found",
		})
		return
	}
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to update last active",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.MessageResponse{Message: "Last active updated successfully"})
}

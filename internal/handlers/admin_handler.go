package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"interviewprep/internal/models"
	"interviewprep/internal/repositories"
	"interviewprep/internal/utils"
)

const (
	adminUserListLimit = 100
	topRolesLimit      = 5
	activeWindow       = 7 * 24 * time.Hour
)

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// AdminHandler serves platform statistics and user administration.
type AdminHandler struct {
	users      UserRepo
	interviews InterviewRepo
	logger     *zap.Logger
}

func NewAdminHandler(users UserRepo, interviews InterviewRepo, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{users: users, interviews: interviews, logger: logger}
}

// StatsHandler computes the platform snapshot fresh on every call. Empty
// collections produce zero counts and empty lists, never errors.
func (h *AdminHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	totalUsers, err := h.users.Count(ctx)
	if err != nil {
		h.statsError(w, err)
		return
	}

	activeUsers, err := h.users.CountActiveSince(ctx, time.Now().UTC().Add(-activeWindow))
	if err != nil {
		h.statsError(w, err)
		return
	}

	totalInterviews, err := h.interviews.Count(ctx)
	if err != nil {
		h.statsError(w, err)
		return
	}

	scores, err := h.interviews.Scores(ctx)
	if err != nil {
		h.statsError(w, err)
		return
	}
	averageScore := 0.0
	if len(scores) > 0 {
		sum := 0
		for _, s := range scores {
			sum += s
		}
		averageScore = float64(sum) / float64(len(scores))
	}

	roles, err := h.interviews.TopRoles(ctx, topRolesLimit)
	if err != nil {
		h.statsError(w, err)
		return
	}
	if roles == nil {
		roles = []models.RoleCount{}
	}

	growthRows, err := h.users.MonthlyGrowth(ctx)
	if err != nil {
		h.statsError(w, err)
		return
	}
	growth := make([]models.MonthlyGrowth, 0, len(growthRows))
	for _, row := range growthRows {
		growth = append(growth, models.MonthlyGrowth{
			Month: fmt.Sprintf("%04d-%02d", row.Year, row.Month),
			Users: row.Count,
		})
	}

	dayRows, err := h.interviews.CountByWeekday(ctx)
	if err != nil {
		h.statsError(w, err)
		return
	}
	days := make([]models.DayCount, 0, len(dayRows))
	for _, row := range dayRows {
		if row.Weekday < 1 || row.Weekday > 7 {
			continue
		}
		days = append(days, models.DayCount{
			Day:   dayNames[row.Weekday-1],
			Count: row.Count,
		})
	}

	utils.JSON(w, http.StatusOK, models.PlatformStats{
		TotalUsers:           totalUsers,
		ActiveUsersLast7Days: activeUsers,
		TotalInterviews:      totalInterviews,
		AverageScore:         averageScore,
		PopularRoles:         roles,
		UserGrowth:           growth,
		InterviewsByDay:      days,
	})
}

func (h *AdminHandler) statsError(w http.ResponseWriter, err error) {
	h.logger.Error("Failed to compute platform stats", zap.Error(err))
	utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
		Code:    "internal_error",
		Message: "Failed to compute platform stats",
	})
}

func (h *AdminHandler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context(), adminUserListLimit)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to list users",
		})
		return
	}
	if users == nil {
		users = []models.User{}
	}

	utils.JSON(w, http.StatusOK, users)
}

// DeleteUserHandler removes exactly one user record. The user's interviews
// are deliberately left in place.
func (h *AdminHandler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	err := h.users.Delete(r.Context(), userID)
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
			Message: "Failed to delete user",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.MessageResponse{Message: "User deleted successfully"})
}

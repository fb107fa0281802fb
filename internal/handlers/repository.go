package handlers

import (
	"context"
	"time"

	"interviewprep/internal/models"
)

// Repo interfaces live with the handlers that consume them; the mongo
// implementations satisfy them and tests swap in fakes.

type UserRepo interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateLastActive(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit int64) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
	CountActiveSince(ctx context.Context, since time.Time) (int64, error)
	GetPerformance(ctx context.Context, userID string) (*models.UserPerformance, error)
	MonthlyGrowth(ctx context.Context) ([]models.YearMonthCount, error)
}

type InterviewRepo interface {
	Create(ctx context.Context, iv *models.Interview) (*models.Interview, error)
	GetByID(ctx context.Context, id string) (*models.Interview, error)
	GetDetail(ctx context.Context, interviewID string) (*models.InterviewDetail, error)
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.Interview, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateScore(ctx context.Context, id string, score int) error
	Count(ctx context.Context) (int64, error)
	Scores(ctx context.Context) ([]int, error)
	TopRoles(ctx context.Context, limit int64) ([]models.RoleCount, error)
	CountByWeekday(ctx context.Context) ([]models.WeekdayCount, error)
}

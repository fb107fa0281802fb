package handlers_test

import (
	"context"
	"time"

	"interviewprep/internal/models"
	"interviewprep/internal/repositories"
)

// fakes follow the struct-of-funcs pattern: unset funcs fall back to an
// empty-database default.

type fakeUserRepo struct {
	createFn           func(context.Context, *models.User) (*models.User, error)
	getByEmailFn       func(context.Context, string) (*models.User, error)
	getByIDFn          func(context.Context, string) (*models.User, error)
	updateLastActiveFn func(context.Context, string, time.Time) error
	deleteFn           func(context.Context, string) error
	listFn             func(context.Context, int64) ([]models.User, error)
	countFn            func(context.Context) (int64, error)
	countActiveFn      func(context.Context, time.Time) (int64, error)
	getPerformanceFn   func(context.Context, string) (*models.UserPerformance, error)
	monthlyGrowthFn    func(context.Context) ([]models.YearMonthCount, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return u, nil
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, repositories.ErrUserNotFound
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, repositories.ErrUserNotFound
}
func (f *fakeUserRepo) UpdateLastActive(ctx context.Context, id string, at time.Time) error {
	if f.updateLastActiveFn != nil {
		return f.updateLastActiveFn(ctx, id, at)
	}
	return repositories.ErrUserNotFound
}
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return repositories.ErrUserNotFound
}
func (f *fakeUserRepo) List(ctx context.Context, limit int64) ([]models.User, error) {
	if f.listFn != nil {
		return f.listFn(ctx, limit)
	}
	return []models.User{}, nil
}
func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx)
	}
	return 0, nil
}
func (f *fakeUserRepo) CountActiveSince(ctx context.Context, since time.Time) (int64, error) {
	if f.countActiveFn != nil {
		return f.countActiveFn(ctx, since)
	}
	return 0, nil
}
func (f *fakeUserRepo) GetPerformance(ctx context.Context, userID string) (*models.UserPerformance, error) {
	if f.getPerformanceFn != nil {
		return f.getPerformanceFn(ctx, userID)
	}
	return nil, repositories.ErrPerformanceNotFound
}
func (f *fakeUserRepo) MonthlyGrowth(ctx context.Context) ([]models.YearMonthCount, error) {
	if f.monthlyGrowthFn != nil {
		return f.monthlyGrowthFn(ctx)
	}
	return []models.YearMonthCount{}, nil
}

type fakeInterviewRepo struct {
	createFn         func(context.Context, *models.Interview) (*models.Interview, error)
	getByIDFn        func(context.Context, string) (*models.Interview, error)
	getDetailFn      func(context.Context, string) (*models.InterviewDetail, error)
	listByUserFn     func(context.Context, string, int64) ([]models.Interview, error)
	updateStatusFn   func(context.Context, string, string) error
	updateScoreFn    func(context.Context, string, int) error
	countFn          func(context.Context) (int64, error)
	scoresFn         func(context.Context) ([]int, error)
	topRolesFn       func(context.Context, int64) ([]models.RoleCount, error)
	countByWeekdayFn func(context.Context) ([]models.WeekdayCount, error)
}

func (f *fakeInterviewRepo) Create(ctx context.Context, iv *models.Interview) (*models.Interview, error) {
	if f.createFn != nil {
		return f.createFn(ctx, iv)
	}
	return iv, nil
}
func (f *fakeInterviewRepo) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, repositories.ErrInterviewNotFound
}
func (f *fakeInterviewRepo) GetDetail(ctx context.Context, interviewID string) (*models.InterviewDetail, error) {
	if f.getDetailFn != nil {
		return f.getDetailFn(ctx, interviewID)
	}
	return nil, repositories.ErrDetailNotFound
}
func (f *fakeInterviewRepo) ListByUser(ctx context.Context, userID string, limit int64) ([]models.Interview, error) {
	if f.listByUserFn != nil {
		return f.listByUserFn(ctx, userID, limit)
	}
	return []models.Interview{}, nil
}
func (f *fakeInterviewRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, status)
	}
	return repositories.ErrInterviewNotFound
}
func (f *fakeInterviewRepo) UpdateScore(ctx context.Context, id string, score int) error {
	if f.updateScoreFn != nil {
		return f.updateScoreFn(ctx, id, score)
	}
	return repositories.ErrInterviewNotFound
}
func (f *fakeInterviewRepo) Count(ctx context.Context) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx)
	}
	return 0, nil
}
func (f *fakeInterviewRepo) Scores(ctx context.Context) ([]int, error) {
	if f.scoresFn != nil {
		return f.scoresFn(ctx)
	}
	return []int{}, nil
}
func (f *fakeInterviewRepo) TopRoles(ctx context.Context, limit int64) ([]models.RoleCount, error) {
	if f.topRolesFn != nil {
		return f.topRolesFn(ctx, limit)
	}
	return []models.RoleCount{}, nil
}
func (f *fakeInterviewRepo) CountByWeekday(ctx context.Context) ([]models.WeekdayCount, error) {
	if f.countByWeekdayFn != nil {
		return f.countByWeekdayFn(ctx)
	}
	return []models.WeekdayCount{}, nil
}

package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

const (
	WeekWindow  = 7 * 24 * time.Hour
	MonthWindow = 30 * 24 * time.Hour
)

type ProgressService struct {
	repo repository.ActivitiesRepositoryI
	now  func() time.Time
}

// NewProgressService takes the clock used for weekly and monthly windows.
// Nil clock means time.Now.
func NewProgressService(activitiesRepo repository.ActivitiesRepositoryI, now func() time.Time) *ProgressService {
	if activitiesRepo == nil {
		log.Fatal("provided nil activitiesRepo")
	}
	if now == nil {
		now = time.Now
	}
	return &ProgressService{
		repo: activitiesRepo,
		now:  now,
	}
}

func (ps *ProgressService) Progress(ctx context.Context, uid uuid.UUID, query ProgressQuery) (*entity.Progress, error) {
	verr := errorvalues.NewValidationError()
	from, to := parseDateRange(verr, query.StartDate, query.EndDate)
	if !verr.Empty() {
		return nil, verr
	}
	return ps.Compute(ctx, uid, from, to, ps.now())
}

// Compute sums activities within [from, to] and within the week and the month
// before now. Windows ignore the range.
func (ps *ProgressService) Compute(ctx context.Context, uid uuid.UUID, from, to *time.Time, now time.Time) (*entity.Progress, error) {
	total, err := ps.repo.Totals(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("activities repository error: " + err.Error())
	}
	weekStart := now.Add(-WeekWindow)
	weekly, err := ps.repo.Totals(ctx, uid, &weekStart, nil)
	if err != nil {
		return nil, errors.New("activities repository error: " + err.Error())
	}
	monthStart := now.Add(-MonthWindow)
	monthly, err := ps.repo.Totals(ctx, uid, &monthStart, nil)
	if err != nil {
		return nil, errors.New("activities repository error: " + err.Error())
	}
	return &entity.Progress{
		TotalDistance:   total.Distance,
		TotalCalories:   total.Calories,
		TotalDuration:   total.Duration,
		WeeklyProgress:  weekly,
		MonthlyProgress: monthly,
	}, nil
}

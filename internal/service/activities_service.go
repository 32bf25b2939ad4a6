package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type ActivitiesService struct {
	repo repository.ActivitiesRepositoryI
}

func NewActivitiesService(activitiesRepo repository.ActivitiesRepositoryI) *ActivitiesService {
	if activitiesRepo == nil {
		log.Fatal("provided nil activitiesRepo")
	}
	InitValidator()
	return &ActivitiesService{
		repo: activitiesRepo,
	}
}

func (as *ActivitiesService) Create(ctx context.Context, uid uuid.UUID, req *ActivityRequest) (*entity.Activity, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	activity := entity.Activity{
		UserID:         uid,
		ActivityType:   strings.TrimSpace(req.ActivityType),
		Duration:       *req.Duration,
		Distance:       *req.Distance,
		CaloriesBurned: *req.CaloriesBurned,
	}
	err := as.repo.Create(ctx, &activity)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("activities repository error: " + err.Error())
	}
	return &activity, nil
}

func (as *ActivitiesService) List(ctx context.Context, uid uuid.UUID) ([]*entity.Activity, error) {
	activities, err := as.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("activities repository error: " + err.Error())
	}
	return activities, nil
}

func (as *ActivitiesService) Get(ctx context.Context, id, uid uuid.UUID) (*entity.Activity, error) {
	activity, err := as.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrActivityNotFound) {
			return nil, err
		}
		return nil, errors.New("activities repository error: " + err.Error())
	}
	if activity.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return activity, nil
}

func (as *ActivitiesService) Update(ctx context.Context, id, uid uuid.UUID, req *ActivityRequest) (*entity.Activity, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	activity, err := as.Get(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	activity.ActivityType = strings.TrimSpace(req.ActivityType)
	activity.Duration = *req.Duration
	activity.Distance = *req.Distance
	activity.CaloriesBurned = *req.CaloriesBurned
	err = as.repo.Update(ctx, activity)
	if err != nil {
		if errors.Is(err, errorvalues.ErrActivityNotFound) {
			return nil, err
		}
		return nil, errors.New("activities repository error: " + err.Error())
	}
	return activity, nil
}

func (as *ActivitiesService) Delete(ctx context.Context, id, uid uuid.UUID) error {
	if _, err := as.Get(ctx, id, uid); err != nil {
		return err
	}
	err := as.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrActivityNotFound) {
			return err
		}
		return errors.New("activities repository error: " + err.Error())
	}
	return nil
}

func (as *ActivitiesService) History(ctx context.Context, uid uuid.UUID, query HistoryQuery) (*HistoryPage, error) {
	filter, page, pageSize, err := historyFilter(query)
	if err != nil {
		return nil, err
	}
	activities, total, err := as.repo.History(ctx, uid, filter)
	if err != nil {
		return nil, errors.New("activities repository error: " + err.Error())
	}
	return &HistoryPage{
		Count:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
		Results:    activities,
	}, nil
}

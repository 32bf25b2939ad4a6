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

type WorkoutPlansService struct {
	repo repository.WorkoutPlansRepositoryI
}

func NewWorkoutPlansService(plansRepo repository.WorkoutPlansRepositoryI) *WorkoutPlansService {
	if plansRepo == nil {
		log.Fatal("provided nil workoutPlansRepo")
	}
	InitValidator()
	return &WorkoutPlansService{
		repo: plansRepo,
	}
}

func (ws *WorkoutPlansService) Create(ctx context.Context, uid uuid.UUID, req *WorkoutPlanRequest) (*entity.WorkoutPlan, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	plan := entity.WorkoutPlan{
		UserID:      uid,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}
	if err := ws.repo.Create(ctx, &plan); err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("workout plans repository error: " + err.Error())
	}
	return &plan, nil
}

func (ws *WorkoutPlansService) List(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutPlan, error) {
	plans, err := ws.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("workout plans repository error: " + err.Error())
	}
	return plans, nil
}

func (ws *WorkoutPlansService) Get(ctx context.Context, id, uid uuid.UUID) (*entity.WorkoutPlan, error) {
	plan, err := ws.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutPlanNotFound) {
			return nil, err
		}
		return nil, errors.New("workout plans repository error: " + err.Error())
	}
	if plan.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return plan, nil
}

func (ws *WorkoutPlansService) Update(ctx context.Context, id, uid uuid.UUID, req *WorkoutPlanRequest) (*entity.WorkoutPlan, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	plan, err := ws.Get(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	plan.Name = strings.TrimSpace(req.Name)
	plan.Description = req.Description
	if err = ws.repo.Update(ctx, plan); err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutPlanNotFound) {
			return nil, err
		}
		return nil, errors.New("workout plans repository error: " + err.Error())
	}
	return plan, nil
}

func (ws *WorkoutPlansService) Delete(ctx context.Context, id, uid uuid.UUID) error {
	if _, err := ws.Get(ctx, id, uid); err != nil {
		return err
	}
	if err := ws.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutPlanNotFound) {
			return err
		}
		return errors.New("workout plans repository error: " + err.Error())
	}
	return nil
}

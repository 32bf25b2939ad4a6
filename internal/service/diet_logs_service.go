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

type DietLogsService struct {
	repo repository.DietLogsRepositoryI
}

func NewDietLogsService(dietRepo repository.DietLogsRepositoryI) *DietLogsService {
	if dietRepo == nil {
		log.Fatal("provided nil dietLogsRepo")
	}
	InitValidator()
	return &DietLogsService{
		repo: dietRepo,
	}
}

func (ds *DietLogsService) Create(ctx context.Context, uid uuid.UUID, req *DietLogRequest) (*entity.DietLog, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	dl := entity.DietLog{
		UserID:   uid,
		FoodItem: strings.TrimSpace(req.FoodItem),
		Calories: *req.Calories,
	}
	if err := ds.repo.Create(ctx, &dl); err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("diet logs repository error: " + err.Error())
	}
	return &dl, nil
}

func (ds *DietLogsService) List(ctx context.Context, uid uuid.UUID) ([]*entity.DietLog, error) {
	logs, err := ds.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("diet logs repository error: " + err.Error())
	}
	return logs, nil
}

func (ds *DietLogsService) Get(ctx context.Context, id, uid uuid.UUID) (*entity.DietLog, error) {
	dl, err := ds.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDietLogNotFound) {
			return nil, err
		}
		return nil, errors.New("diet logs repository error: " + err.Error())
	}
	if dl.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return dl, nil
}

func (ds *DietLogsService) Update(ctx context.Context, id, uid uuid.UUID, req *DietLogRequest) (*entity.DietLog, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	dl, err := ds.Get(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	dl.FoodItem = strings.TrimSpace(req.FoodItem)
	dl.Calories = *req.Calories
	if err = ds.repo.Update(ctx, dl); err != nil {
		if errors.Is(err, errorvalues.ErrDietLogNotFound) {
			return nil, err
		}
		return nil, errors.New("diet logs repository error: " + err.Error())
	}
	return dl, nil
}

func (ds *DietLogsService) Delete(ctx context.Context, id, uid uuid.UUID) error {
	if _, err := ds.Get(ctx, id, uid); err != nil {
		return err
	}
	if err := ds.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrDietLogNotFound) {
			return err
		}
		return errors.New("diet logs repository error: " + err.Error())
	}
	return nil
}

package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/fittrack/pkg/entity"
)

type RegisterRequest struct {
	Name     string `json:"username" validate:"required,alphanum_underscore,min=3,max=150"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
}

// Numeric fields are pointers so that a missing value is told apart from zero.
// Integer limits follow the INTEGER columns they are stored in.
type ActivityRequest struct {
	ActivityType   string   `json:"activity_type" validate:"required,notblank,max=50"`
	Duration       *int     `json:"duration" validate:"required,gt=0,max=2147483647"`
	Distance       *float64 `json:"distance" validate:"required,gte=0"`
	CaloriesBurned *int     `json:"calories_burned" validate:"required,gte=0,max=2147483647"`
}

type WorkoutPlanRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=100"`
	Description string `json:"description"`
}

type DietLogRequest struct {
	FoodItem string `json:"food_item" validate:"required,notblank,max=100"`
	Calories *int   `json:"calories" validate:"required,gte=0,max=2147483647"`
}

// HistoryQuery carries raw query parameters of the history listing.
// Empty values fall back to defaults.
type HistoryQuery struct {
	ActivityType string
	StartDate    string
	EndDate      string
	Ordering     string
	Page         string
	PageSize     string
}

type HistoryPage struct {
	Count      int                `json:"count"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
	Results    []*entity.Activity `json:"results"`
}

type ProgressQuery struct {
	StartDate string
	EndDate   string
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

// Every method is scoped to the calling user uid. Records of other users are
// reported with errorvalues.ErrWrongOwner.
type ActivitiesServiceI interface {
	Create(ctx context.Context, uid uuid.UUID, req *ActivityRequest) (*entity.Activity, error)
	List(ctx context.Context, uid uuid.UUID) ([]*entity.Activity, error)
	Get(ctx context.Context, id, uid uuid.UUID) (*entity.Activity, error)
	Update(ctx context.Context, id, uid uuid.UUID, req *ActivityRequest) (*entity.Activity, error)
	Delete(ctx context.Context, id, uid uuid.UUID) error
	History(ctx context.Context, uid uuid.UUID, query HistoryQuery) (*HistoryPage, error)
}

type WorkoutPlansServiceI interface {
	Create(ctx context.Context, uid uuid.UUID, req *WorkoutPlanRequest) (*entity.WorkoutPlan, error)
	List(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutPlan, error)
	Get(ctx context.Context, id, uid uuid.UUID) (*entity.WorkoutPlan, error)
	Update(ctx context.Context, id, uid uuid.UUID, req *WorkoutPlanRequest) (*entity.WorkoutPlan, error)
	Delete(ctx context.Context, id, uid uuid.UUID) error
}

type DietLogsServiceI interface {
	Create(ctx context.Context, uid uuid.UUID, req *DietLogRequest) (*entity.DietLog, error)
	List(ctx context.Context, uid uuid.UUID) ([]*entity.DietLog, error)
	Get(ctx context.Context, id, uid uuid.UUID) (*entity.DietLog, error)
	Update(ctx context.Context, id, uid uuid.UUID, req *DietLogRequest) (*entity.DietLog, error)
	Delete(ctx context.Context, id, uid uuid.UUID) error
}

type ProgressServiceI interface {
	// Sums user's activities in the optional range and over the last week and month
	Progress(ctx context.Context, uid uuid.UUID, query ProgressQuery) (*entity.Progress, error)
}

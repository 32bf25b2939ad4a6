package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/fittrack/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database, returns generated id
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// Deletes user with all owned records
	Delete(ctx context.Context, uid uuid.UUID) error
	// Lists users whose latest activity is older than cutoff, or who have none
	FindInactiveSince(ctx context.Context, cutoff time.Time) ([]entity.InactiveUser, error)
}

type ActivitiesRepositoryI interface {
	// Creates activity. ID and Date are filled from the database
	Create(ctx context.Context, activity *entity.Activity) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
	// Lists all activities of user, newest first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Activity, error)
	// Returns one page of filtered activities and the total count matching the filter
	History(ctx context.Context, uid uuid.UUID, filter HistoryFilter) ([]*entity.Activity, int, error)
	// Updates mutable fields of activity by ID
	Update(ctx context.Context, activity *entity.Activity) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Sums distance, calories and duration of user's activities with date in [from, to].
	// Nil bounds are open.
	Totals(ctx context.Context, uid uuid.UUID, from, to *time.Time) (entity.ActivityTotals, error)
}

type WorkoutPlansRepositoryI interface {
	Create(ctx context.Context, plan *entity.WorkoutPlan) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutPlan, error)
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutPlan, error)
	Update(ctx context.Context, plan *entity.WorkoutPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DietLogsRepositoryI interface {
	Create(ctx context.Context, log *entity.DietLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DietLog, error)
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.DietLog, error)
	Update(ctx context.Context, log *entity.DietLog) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RemindersRepositoryI interface {
	// Stores the moment user was last reminded
	MarkReminded(ctx context.Context, uid uuid.UUID, at time.Time) error
}

// HistoryFilter narrows the activity history. Zero values mean no restriction.
type HistoryFilter struct {
	ActivityType string
	From         *time.Time
	To           *time.Time
	// One of the keys of HistoryOrderings
	OrderBy    string
	Descending bool
	Limit      int
	Offset     int
}

// HistoryOrderings maps the accepted ordering names to columns.
var HistoryOrderings = map[string]string{
	"date":            "date",
	"duration":        "duration",
	"calories_burned": "calories_burned",
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}

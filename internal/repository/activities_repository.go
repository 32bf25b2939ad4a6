package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

const activityColumns = `id, user_id, activity_type, duration, distance, calories_burned, date`

type ActivitiesRepository struct {
	conn PgConnection
}

func NewActivitiesRepo(conn PgConnection) *ActivitiesRepository {
	if conn == nil {
		log.Fatal("provided nil connection for activitiesRepo")
	}
	return &ActivitiesRepository{
		conn: conn,
	}
}

func scanActivity(row pgx.Row, a *entity.Activity) error {
	return row.Scan(&a.ID, &a.UserID, &a.ActivityType, &a.Duration, &a.Distance, &a.CaloriesBurned, &a.Date)
}

func (ar *ActivitiesRepository) Create(ctx context.Context, activity *entity.Activity) error {
	row := ar.conn.QueryRow(ctx, `INSERT INTO activities (user_id, activity_type, duration, distance, calories_burned) VALUES ($1, $2, $3, $4, $5) RETURNING id, date;`,
		activity.UserID,
		activity.ActivityType,
		activity.Duration,
		activity.Distance,
		activity.CaloriesBurned,
	)
	if err := row.Scan(&activity.ID, &activity.Date); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrOwnerNotFound
			}
		}
		return errors.New("creating activity db error: " + err.Error())
	}
	return nil
}

func (ar *ActivitiesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	var activity entity.Activity
	row := ar.conn.QueryRow(ctx, `SELECT `+activityColumns+` FROM activities WHERE id = $1;`, id)
	if err := scanActivity(row, &activity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrActivityNotFound
		}
		return nil, errors.New("getting activity by id error: " + err.Error())
	}
	return &activity, nil
}

func (ar *ActivitiesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Activity, error) {
	rows, err := ar.conn.Query(ctx, `SELECT `+activityColumns+` FROM activities WHERE user_id = $1 ORDER BY date DESC, id;`, uid)
	if err != nil {
		return nil, errors.New("getting activities by uid error: " + err.Error())
	}
	return collectActivities(rows)
}

func (ar *ActivitiesRepository) History(ctx context.Context, uid uuid.UUID, filter HistoryFilter) ([]*entity.Activity, int, error) {
	column, ok := HistoryOrderings[filter.OrderBy]
	if !ok {
		column = HistoryOrderings["date"]
	}
	direction := "ASC"
	if filter.Descending {
		direction = "DESC"
	}
	where, args := historyConditions(uid, filter)

	var total int
	row := ar.conn.QueryRow(ctx, `SELECT COUNT(*) FROM activities `+where+`;`, args...)
	if err := row.Scan(&total); err != nil {
		return nil, 0, errors.New("counting activities history error: " + err.Error())
	}
	if total == 0 || filter.Offset >= total {
		return []*entity.Activity{}, total, nil
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM activities %s ORDER BY %s %s, id LIMIT $%d OFFSET $%d;`,
		activityColumns, where, column, direction, len(args)-1, len(args))
	rows, err := ar.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, errors.New("getting activities history error: " + err.Error())
	}
	activities, err := collectActivities(rows)
	if err != nil {
		return nil, 0, err
	}
	return activities, total, nil
}

func historyConditions(uid uuid.UUID, filter HistoryFilter) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{uid}
	if filter.ActivityType != "" {
		args = append(args, filter.ActivityType)
		conditions = append(conditions, fmt.Sprintf("activity_type = $%d", len(args)))
	}
	dateConds, args := dateRangeConditions(args, filter.From, filter.To)
	conditions = append(conditions, dateConds...)
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// dateRangeConditions appends inclusive bounds on the date column for each non-nil bound.
func dateRangeConditions(args []any, from, to *time.Time) ([]string, []any) {
	conditions := make([]string, 0, 2)
	if from != nil {
		args = append(args, *from)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}
	return conditions, args
}

func collectActivities(rows pgx.Rows) ([]*entity.Activity, error) {
	defer rows.Close()
	activities := make([]*entity.Activity, 0)
	for rows.Next() {
		a := entity.Activity{}
		if err := scanActivity(rows, &a); err != nil {
			return nil, errors.New("unmarshalling activity error: " + err.Error())
		}
		activities = append(activities, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning activities: " + err.Error())
	}
	return activities, nil
}

func (ar *ActivitiesRepository) Update(ctx context.Context, activity *entity.Activity) error {
	ct, err := ar.conn.Exec(ctx, `UPDATE activities SET activity_type = $1, duration = $2, distance = $3, calories_burned = $4 WHERE id = $5;`,
		activity.ActivityType, activity.Duration, activity.Distance, activity.CaloriesBurned, activity.ID,
	)
	if err != nil {
		return errors.New("error updating activity: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrActivityNotFound
	}
	return nil
}

func (ar *ActivitiesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := ar.conn.Exec(ctx, `DELETE FROM activities WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting activity: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrActivityNotFound
	}
	return nil
}

func (ar *ActivitiesRepository) Totals(ctx context.Context, uid uuid.UUID, from, to *time.Time) (entity.ActivityTotals, error) {
	var totals entity.ActivityTotals
	conditions, args := dateRangeConditions([]any{uid}, from, to)
	query := `SELECT COALESCE(SUM(distance), 0), COALESCE(SUM(calories_burned), 0), COALESCE(SUM(duration), 0) FROM activities WHERE user_id = $1`
	for _, cond := range conditions {
		query += " AND " + cond
	}
	row := ar.conn.QueryRow(ctx, query+";", args...)
	if err := row.Scan(&totals.Distance, &totals.Calories, &totals.Duration); err != nil {
		return entity.ActivityTotals{}, errors.New("summing activities error: " + err.Error())
	}
	return totals, nil
}

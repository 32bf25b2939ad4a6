package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

type WorkoutPlansRepository struct {
	conn PgConnection
}

func NewWorkoutPlansRepo(conn PgConnection) *WorkoutPlansRepository {
	if conn == nil {
		log.Fatal("provided nil connection for workoutPlansRepo")
	}
	return &WorkoutPlansRepository{
		conn: conn,
	}
}

func (wr *WorkoutPlansRepository) Create(ctx context.Context, plan *entity.WorkoutPlan) error {
	row := wr.conn.QueryRow(ctx, `INSERT INTO workout_plans (user_id, name, description) VALUES ($1, $2, $3) RETURNING id, created_at;`,
		plan.UserID, plan.Name, plan.Description)
	if err := row.Scan(&plan.ID, &plan.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrOwnerNotFound
		}
		return errors.New("creating workout plan db error: " + err.Error())
	}
	return nil
}

func (wr *WorkoutPlansRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutPlan, error) {
	var plan entity.WorkoutPlan
	row := wr.conn.QueryRow(ctx, `SELECT id, user_id, name, description, created_at FROM workout_plans WHERE id = $1;`, id)
	if err := row.Scan(&plan.ID, &plan.UserID, &plan.Name, &plan.Description, &plan.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWorkoutPlanNotFound
		}
		return nil, errors.New("getting workout plan by id error: " + err.Error())
	}
	return &plan, nil
}

func (wr *WorkoutPlansRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutPlan, error) {
	plans := make([]*entity.WorkoutPlan, 0)
	rows, err := wr.conn.Query(ctx, `SELECT id, user_id, name, description, created_at
		FROM workout_plans WHERE user_id = $1 ORDER BY created_at DESC, id;`, uid)
	if err != nil {
		return nil, errors.New("getting workout plans by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		p := entity.WorkoutPlan{}
		err = rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling workout plan error: " + err.Error())
		}
		plans = append(plans, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return plans, nil
}

func (wr *WorkoutPlansRepository) Update(ctx context.Context, plan *entity.WorkoutPlan) error {
	ct, err := wr.conn.Exec(ctx, `UPDATE workout_plans SET name = $1, description = $2 WHERE id = $3;`,
		plan.Name, plan.Description, plan.ID,
	)
	if err != nil {
		return errors.New("error updating workout plan: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrWorkoutPlanNotFound
	}
	return nil
}

func (wr *WorkoutPlansRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := wr.conn.Exec(ctx, `DELETE FROM workout_plans WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting workout plan: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrWorkoutPlanNotFound
	}
	return nil
}

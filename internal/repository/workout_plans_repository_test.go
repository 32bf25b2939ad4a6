package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWorkoutPlan(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewWorkoutPlansRepo(mock)
	plan := entity.WorkoutPlan{
		UserID:      userID,
		Name:        "Leg day",
		Description: "squats, lunges",
	}
	query := regexp.QuoteMeta(`INSERT INTO workout_plans (user_id, name, description) VALUES ($1, $2, $3) RETURNING id, created_at;`)
	ctx := context.Background()
	t.Run("successfully created", func(t *testing.T) {
		id, created := uuid.New(), time.Now()
		mock.ExpectQuery(query).
			WithArgs(plan.UserID, plan.Name, plan.Description).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, created))
		p := plan
		err := repo.Create(ctx, &p)
		assert.NoError(t, err)
		assert.Equal(t, id, p.ID)
		assert.Equal(t, created, p.CreatedAt)
	})
	t.Run("FK violation", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(plan.UserID, plan.Name, plan.Description).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		p := plan
		assert.ErrorIs(t, repo.Create(ctx, &p), errorvalues.ErrOwnerNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(plan.UserID, plan.Name, plan.Description).
			WillReturnError(errors.New("db error"))
		p := plan
		assert.EqualError(t, repo.Create(ctx, &p), "creating workout plan db error: db error")
	})
}

func TestGetWorkoutPlan(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWorkoutPlansRepo(mock)
	columns := []string{"id", "user_id", "name", "description", "created_at"}
	plan := entity.WorkoutPlan{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        "Cardio",
		Description: "",
		CreatedAt:   time.Now(),
	}
	ctx := context.Background()
	t.Run("by id", func(t *testing.T) {
		query := regexp.QuoteMeta(`SELECT id, user_id, name, description, created_at FROM workout_plans WHERE id = $1;`)
		mock.ExpectQuery(query).
			WithArgs(plan.ID).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(plan.ID, plan.UserID, plan.Name, plan.Description, plan.CreatedAt))
		result, err := repo.GetByID(ctx, plan.ID)
		require.NoError(t, err)
		assert.Equal(t, plan, *result)

		mock.ExpectQuery(query).WithArgs(plan.ID).WillReturnError(pgx.ErrNoRows)
		_, err = repo.GetByID(ctx, plan.ID)
		assert.ErrorIs(t, err, errorvalues.ErrWorkoutPlanNotFound)
	})
	t.Run("by user id", func(t *testing.T) {
		query := regexp.QuoteMeta(`FROM workout_plans WHERE user_id = $1 ORDER BY created_at DESC, id;`)
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(plan.ID, plan.UserID, plan.Name, plan.Description, plan.CreatedAt).
				AddRow(uuid.New(), userID, "Strength", "5x5", plan.CreatedAt.Add(-time.Hour)))
		result, err := repo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, plan, *result[0])
		assert.Equal(t, "Strength", result[1].Name)

		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
		_, err = repo.GetByUserID(ctx, userID)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAndDeleteWorkoutPlan(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWorkoutPlansRepo(mock)
	ctx := context.Background()
	plan := entity.WorkoutPlan{ID: uuid.New(), UserID: userID, Name: "Upper body", Description: "push-ups"}
	updateQuery := regexp.QuoteMeta(`UPDATE workout_plans SET name = $1, description = $2 WHERE id = $3;`)
	deleteQuery := regexp.QuoteMeta(`DELETE FROM workout_plans WHERE id = $1;`)
	t.Run("update", func(t *testing.T) {
		mock.ExpectExec(updateQuery).
			WithArgs(plan.Name, plan.Description, plan.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Update(ctx, &plan))
		mock.ExpectExec(updateQuery).
			WithArgs(plan.Name, plan.Description, plan.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Update(ctx, &plan), errorvalues.ErrWorkoutPlanNotFound)
	})
	t.Run("delete", func(t *testing.T) {
		mock.ExpectExec(deleteQuery).WithArgs(plan.ID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, plan.ID))
		mock.ExpectExec(deleteQuery).WithArgs(plan.ID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, plan.ID), errorvalues.ErrWorkoutPlanNotFound)
		mock.ExpectExec(deleteQuery).WithArgs(plan.ID).WillReturnError(errors.New("db error"))
		assert.EqualError(t, repo.Delete(ctx, plan.ID), "error deleting workout plan: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

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

func TestCreateDietLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDietLogsRepo(mock)
	query := regexp.QuoteMeta(`INSERT INTO diet_logs (user_id, food_item, calories) VALUES ($1, $2, $3) RETURNING id, date;`)
	ctx := context.Background()
	testCases := []struct {
		Desc      string
		Error     error
		PrepareFn func(dl *entity.DietLog)
	}{
		{
			Desc: "success",
			PrepareFn: func(dl *entity.DietLog) {
				mock.ExpectQuery(query).
					WithArgs(dl.UserID, dl.FoodItem, dl.Calories).
					WillReturnRows(pgxmock.NewRows([]string{"id", "date"}).AddRow(uuid.New(), time.Now()))
			},
		},
		{
			Desc:  "unknown owner",
			Error: errorvalues.ErrOwnerNotFound,
			PrepareFn: func(dl *entity.DietLog) {
				mock.ExpectQuery(query).
					WithArgs(dl.UserID, dl.FoodItem, dl.Calories).
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
		},
		{
			Desc:  "check violation reported as db error",
			Error: errors.New("creating diet log db error: : check violation (SQLSTATE 23514)"),
			PrepareFn: func(dl *entity.DietLog) {
				mock.ExpectQuery(query).
					WithArgs(dl.UserID, dl.FoodItem, dl.Calories).
					WillReturnError(&pgconn.PgError{Code: "23514", Message: "check violation"})
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			dl := entity.DietLog{UserID: userID, FoodItem: "Oatmeal", Calories: 150}
			tc.PrepareFn(&dl)
			err := repo.Create(ctx, &dl)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			assert.NoError(t, err)
			assert.NotEqual(t, uuid.UUID{}, dl.ID)
			assert.False(t, dl.Date.IsZero())
		})
	}
}

func TestGetDietLogs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDietLogsRepo(mock)
	columns := []string{"id", "user_id", "food_item", "calories", "date"}
	dl := entity.DietLog{ID: uuid.New(), UserID: userID, FoodItem: "Apple", Calories: 95, Date: time.Now()}
	ctx := context.Background()
	byID := regexp.QuoteMeta(`SELECT id, user_id, food_item, calories, date FROM diet_logs WHERE id = $1;`)
	byUser := regexp.QuoteMeta(`FROM diet_logs WHERE user_id = $1 ORDER BY date DESC, id;`)

	mock.ExpectQuery(byID).WithArgs(dl.ID).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(dl.ID, dl.UserID, dl.FoodItem, dl.Calories, dl.Date))
	result, err := repo.GetByID(ctx, dl.ID)
	require.NoError(t, err)
	assert.Equal(t, dl, *result)

	mock.ExpectQuery(byID).WithArgs(dl.ID).WillReturnError(pgx.ErrNoRows)
	_, err = repo.GetByID(ctx, dl.ID)
	assert.ErrorIs(t, err, errorvalues.ErrDietLogNotFound)

	mock.ExpectQuery(byUser).WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(dl.ID, dl.UserID, dl.FoodItem, dl.Calories, dl.Date))
	logs, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, dl, *logs[0])

	mock.ExpectQuery(byUser).WithArgs(userID).WillReturnRows(pgxmock.NewRows(columns))
	logs, err = repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, logs)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAndDeleteDietLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDietLogsRepo(mock)
	ctx := context.Background()
	dl := entity.DietLog{ID: uuid.New(), UserID: userID, FoodItem: "Rice", Calories: 200}
	updateQuery := regexp.QuoteMeta(`UPDATE diet_logs SET food_item = $1, calories = $2 WHERE id = $3;`)
	deleteQuery := regexp.QuoteMeta(`DELETE FROM diet_logs WHERE id = $1;`)

	mock.ExpectExec(updateQuery).WithArgs(dl.FoodItem, dl.Calories, dl.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Update(ctx, &dl))
	mock.ExpectExec(updateQuery).WithArgs(dl.FoodItem, dl.Calories, dl.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.Update(ctx, &dl), errorvalues.ErrDietLogNotFound)
	mock.ExpectExec(updateQuery).WithArgs(dl.FoodItem, dl.Calories, dl.ID).WillReturnError(errors.New("db error"))
	assert.EqualError(t, repo.Update(ctx, &dl), "error updating diet log: db error")

	mock.ExpectExec(deleteQuery).WithArgs(dl.ID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(ctx, dl.ID))
	mock.ExpectExec(deleteQuery).WithArgs(dl.ID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(ctx, dl.ID), errorvalues.ErrDietLogNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

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

type DietLogsRepository struct {
	conn PgConnection
}

func NewDietLogsRepo(conn PgConnection) *DietLogsRepository {
	if conn == nil {
		log.Fatal("provided nil connection for dietLogsRepo")
	}
	return &DietLogsRepository{
		conn: conn,
	}
}

func (dr *DietLogsRepository) Create(ctx context.Context, dl *entity.DietLog) error {
	row := dr.conn.QueryRow(ctx, `INSERT INTO diet_logs (user_id, food_item, calories) VALUES ($1, $2, $3) RETURNING id, date;`,
		dl.UserID, dl.FoodItem, dl.Calories)
	if err := row.Scan(&dl.ID, &dl.Date); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrOwnerNotFound
		}
		return errors.New("creating diet log db error: " + err.Error())
	}
	return nil
}

func (dr *DietLogsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DietLog, error) {
	var dl entity.DietLog
	row := dr.conn.QueryRow(ctx, `SELECT id, user_id, food_item, calories, date FROM diet_logs WHERE id = $1;`, id)
	if err := row.Scan(&dl.ID, &dl.UserID, &dl.FoodItem, &dl.Calories, &dl.Date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrDietLogNotFound
		}
		return nil, errors.New("getting diet log by id error: " + err.Error())
	}
	return &dl, nil
}

func (dr *DietLogsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.DietLog, error) {
	logs := make([]*entity.DietLog, 0)
	rows, err := dr.conn.Query(ctx, `SELECT id, user_id, food_item, calories, date
		FROM diet_logs WHERE user_id = $1 ORDER BY date DESC, id;`, uid)
	if err != nil {
		return nil, errors.New("getting diet logs by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		dl := entity.DietLog{}
		err = rows.Scan(&dl.ID, &dl.UserID, &dl.FoodItem, &dl.Calories, &dl.Date)
		if err != nil {
			return nil, errors.New("unmarshalling diet log error: " + err.Error())
		}
		logs = append(logs, &dl)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return logs, nil
}

func (dr *DietLogsRepository) Update(ctx context.Context, dl *entity.DietLog) error {
	ct, err := dr.conn.Exec(ctx, `UPDATE diet_logs SET food_item = $1, calories = $2 WHERE id = $3;`,
		dl.FoodItem, dl.Calories, dl.ID,
	)
	if err != nil {
		return errors.New("error updating diet log: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrDietLogNotFound
	}
	return nil
}

func (dr *DietLogsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := dr.conn.Exec(ctx, `DELETE FROM diet_logs WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting diet log: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrDietLogNotFound
	}
	return nil
}

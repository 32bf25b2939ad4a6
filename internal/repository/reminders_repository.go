package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
)

type RemindersRepository struct {
	conn PgConnection
}

func NewRemindersRepo(conn PgConnection) *RemindersRepository {
	if conn == nil {
		log.Fatal("provided nil connection for remindersRepo")
	}
	return &RemindersRepository{
		conn: conn,
	}
}

func (rr *RemindersRepository) MarkReminded(ctx context.Context, uid uuid.UUID, at time.Time) error {
	_, err := rr.conn.Exec(ctx, `INSERT INTO reminders (user_id, last_reminded) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET last_reminded = EXCLUDED.last_reminded;`, uid, at)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("marking user reminded error: " + err.Error())
	}
	return nil
}

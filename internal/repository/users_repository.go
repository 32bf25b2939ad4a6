package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(conn PgConnection) *UsersRepository {
	if conn == nil {
		log.Fatal("provided nil connection for usersRepo")
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	if user == nil {
		return uuid.UUID{}, errors.New("user is nil")
	}
	var id uuid.UUID
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id;`,
		user.Name, user.Email, user.PasswordHash)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrUserExists
			}
		}
		return uuid.UUID{}, errors.New("creating user db error: " + err.Error())
	}
	return id, nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, name, email, password_hash, created_at FROM users WHERE name = $1;`, name)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by name error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, name, email, password_hash, created_at FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := ur.conn.Query(ctx, `SELECT id, name, email, created_at FROM users ORDER BY name;`)
	if err != nil {
		return nil, errors.New("listing users error: " + err.Error())
	}
	defer rows.Close()
	users := make([]*entity.User, 0)
	for rows.Next() {
		u := entity.User{}
		if err = rows.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt); err != nil {
			return nil, errors.New("unmarshalling user error: " + err.Error())
		}
		users = append(users, &u)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning users: " + err.Error())
	}
	return users, nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) FindInactiveSince(ctx context.Context, cutoff time.Time) ([]entity.InactiveUser, error) {
	rows, err := ur.conn.Query(ctx, `SELECT u.id, u.name, u.email, COALESCE(MAX(a.date), to_timestamp(0)), COUNT(a.id)
		FROM users u LEFT JOIN activities a ON a.user_id = u.id
		GROUP BY u.id, u.name, u.email
		HAVING MAX(a.date) IS NULL OR MAX(a.date) < $1
		ORDER BY u.name;`, cutoff)
	if err != nil {
		return nil, errors.New("searching inactive users error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.InactiveUser, 0)
	for rows.Next() {
		var (
			iu    entity.InactiveUser
			last  time.Time
			count int
		)
		if err = rows.Scan(&iu.User.ID, &iu.User.Name, &iu.User.Email, &last, &count); err != nil {
			return nil, errors.New("unmarshalling inactive user error: " + err.Error())
		}
		if count > 0 {
			iu.LastActivity = &last
		}
		result = append(result, iu)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning inactive users: " + err.Error())
	}
	return result, nil
}

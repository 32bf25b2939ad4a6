package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		repo := &usersRepoMock{}
		us := service.NewUserService(repo)
		user, err := us.Register(ctx, &service.RegisterRequest{
			Name:     "testuser",
			Password: "testpassword",
			Email:    "test@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "testuser", user.Name)
		assert.Equal(t, "test@example.com", user.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("testpassword")))
	})
	t.Run("already exists", func(t *testing.T) {
		us := service.NewUserService(&usersRepoMock{state: stateUserExistsError})
		_, err := us.Register(ctx, &service.RegisterRequest{Name: "testuser", Password: "testpassword"})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		us := service.NewUserService(&usersRepoMock{state: stateDBError})
		_, err := us.Register(ctx, &service.RegisterRequest{Name: "testuser", Password: "testpassword"})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("validation", func(t *testing.T) {
		us := service.NewUserService(&usersRepoMock{})
		testCases := []struct {
			Desc  string
			Req   service.RegisterRequest
			Field string
		}{
			{"short username", service.RegisterRequest{Name: "ab", Password: "testpassword"}, "username"},
			{"username with spaces", service.RegisterRequest{Name: "test user", Password: "testpassword"}, "username"},
			{"username starting with digit", service.RegisterRequest{Name: "1user", Password: "testpassword"}, "username"},
			{"missing password", service.RegisterRequest{Name: "testuser"}, "password"},
			{"short password", service.RegisterRequest{Name: "testuser", Password: "short"}, "password"},
			{"bad email", service.RegisterRequest{Name: "testuser", Password: "testpassword", Email: "not-an-email"}, "email"},
		}
		for _, tc := range testCases {
			t.Run(tc.Desc, func(t *testing.T) {
				_, err := us.Register(ctx, &tc.Req)
				var verr *errorvalues.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Contains(t, verr.Fields, tc.Field)
			})
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := &usersRepoMock{}
	us := service.NewUserService(repo)
	_, err := us.Register(ctx, &service.RegisterRequest{Name: "testuser", Password: "testpassword"})
	require.NoError(t, err)
	t.Run("success", func(t *testing.T) {
		user, err := us.Login(ctx, "testuser", "testpassword")
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})
	t.Run("wrong password", func(t *testing.T) {
		_, err := us.Login(ctx, "testuser", "wrongpassword")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("unknown user", func(t *testing.T) {
		_, err := us.Login(ctx, "nobody", "testpassword")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("db error", func(t *testing.T) {
		repo.state = stateDBError
		defer func() { repo.state = stateSuccess }()
		_, err := us.Login(ctx, "testuser", "testpassword")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	repo := &usersRepoMock{}
	us := service.NewUserService(repo)
	_, err := us.Register(ctx, &service.RegisterRequest{Name: "testuser", Password: "testpassword"})
	require.NoError(t, err)
	assert.ErrorIs(t, us.DeleteAccount(ctx, userID, "wrongpassword"), errorvalues.ErrWrongCredentials)
	assert.NoError(t, us.DeleteAccount(ctx, userID, "testpassword"))
	assert.ErrorIs(t, us.DeleteAccount(ctx, userID, "testpassword"), errorvalues.ErrUserNotFound)
	_, err = us.GetByID(ctx, userID)
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	repo := &usersRepoMock{user: &entity.User{ID: userID, Name: "testuser"}}
	us := service.NewUserService(repo)
	users, err := us.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "testuser", users[0].Name)

	repo.state = stateDBError
	_, err = us.List(context.Background())
	assert.Error(t, err)
}

func TestUserServiceIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	dbCfg := setupUsersTestDB(t)
	repo := repository.NewUsersRepo(repository.NewPool(dbCfg))
	us := service.NewUserService(repo)
	ctx := context.Background()
	username := "test_user"
	password := "test_password"
	var user *entity.User
	var err error
	t.Run("registered user", func(t *testing.T) {
		user, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		require.NoError(t, err)
		assert.Equal(t, username, user.Name)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
	})
	t.Run("error registering already existed user", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("login", func(t *testing.T) {
		res, err := us.Login(ctx, username, password)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, res.ID)
	})
	t.Run("error login on unexisted user", func(t *testing.T) {
		_, err := us.Login(ctx, "aaaaaaa", "bbbbb")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("found by id", func(t *testing.T) {
		res, err := us.GetByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user.Name, res.Name)
	})
	t.Run("not found by id", func(t *testing.T) {
		_, err := us.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("failed to delete w/ wrong password", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, "dasdasd")
		assert.Error(t, err)
	})
	t.Run("deleted", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, password)
		assert.NoError(t, err)
	})
	t.Run("failed to delete unexist user", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, password)
		assert.Error(t, err)
	})
}

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupUsersTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("fittrack"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}

	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}

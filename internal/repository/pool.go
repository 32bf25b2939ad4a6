package repository

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/fittrack/pkg/cleanup"
)

const pingTimeout = 5 * time.Second

// NewPool opens the shared connection pool and registers its closing as a cleanup job.
// Repositories are built on top of it with their New*Repo constructors.
func NewPool(cfg DBConfig) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection pool error: " + err.Error())
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	err = pool.Ping(ctx)
	if err != nil {
		log.Fatal("error while pinging connection pool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

package main

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/limbo/fittrack/pkg/config"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrations(func(db *sql.DB, dir string) error {
			return goose.Up(db, dir)
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the latest migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrations(func(db *sql.DB, dir string) error {
			return goose.Down(db, dir)
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print applied and pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrations(func(db *sql.DB, dir string) error {
			return goose.Status(db, dir)
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
}

func withMigrations(run func(db *sql.DB, dir string) error) error {
	cfg := config.New()
	db, err := sql.Open("postgres", pgConfig(cfg).ConnString())
	if err != nil {
		return fmt.Errorf("opening db failed: %w", err)
	}
	defer db.Close()
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting dialect failed: %w", err)
	}
	if err := run(db, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

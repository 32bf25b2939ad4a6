package main

import (
	"log/slog"
	"os"

	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fitctl",
	Short: "Operator tool of the fitness tracker",
	Long: `Operator tool of the fitness tracker. Usage:

	fitctl migrate up
	fitctl remind --sink kafka
`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := config.New()
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: cfg.GetLogLevel("LOG_LEVEL"),
		})))
	},
}

func pgConfig(cfg *config.Config) *repository.PGCfg {
	return &repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
	}
}

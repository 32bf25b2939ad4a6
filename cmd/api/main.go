// @title Fitness tracker API
// @description API for logging activities, workout plans and meals, with progress reports
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"log"
	"log/slog"
	"os"

	_ "github.com/limbo/fittrack/docs"
	"github.com/limbo/fittrack/internal/api"
	"github.com/limbo/fittrack/internal/metrics"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/config"
	jwtservice "github.com/limbo/fittrack/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.GetLogLevel("LOG_LEVEL"),
	})))
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
	}
	secret := cfg.GetString("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	pool := repository.NewPool(&dbCfg)

	metricsManager := metrics.NewManager(metrics.Namespace, metrics.Subsystem, metrics.NewRegistry())
	err := metricsManager.RegisterPool(pool, dbCfg.DB)
	if err != nil {
		slog.Warn("pool metrics are not exported", slog.String("error", err.Error()))
	}

	activitiesRepo := repository.NewActivitiesRepo(pool)
	serv := api.New(&api.ServicesList{
		UserService:         service.NewUserService(repository.NewUsersRepo(pool)),
		ActivitiesService:   service.NewActivitiesService(activitiesRepo),
		WorkoutPlansService: service.NewWorkoutPlansService(repository.NewWorkoutPlansRepo(pool)),
		DietLogsService:     service.NewDietLogsService(repository.NewDietLogsRepo(pool)),
		ProgressService:     service.NewProgressService(activitiesRepo, nil),
		JwtService: jwtservice.New(
			secret,
			cfg.GetDuration("ACCESS_TOKEN_TTL", jwtservice.DefaultAccessTTL),
			cfg.GetDuration("REFRESH_TOKEN_TTL", jwtservice.DefaultRefreshTTL),
		),
		Metrics: metricsManager,
	})
	err = serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}

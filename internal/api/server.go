package api

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/fittrack/internal/metrics"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/cleanup"
	httpSwagger "github.com/swaggo/http-swagger"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx                  *chi.Mux
	userService         service.UserServiceI
	activitiesService   service.ActivitiesServiceI
	workoutPlansService service.WorkoutPlansServiceI
	dietLogsService     service.DietLogsServiceI
	progressService     service.ProgressServiceI
	jwtService          JWTServiceI
	metrics             *metrics.Manager
}

type ServicesList struct {
	UserService         service.UserServiceI
	ActivitiesService   service.ActivitiesServiceI
	WorkoutPlansService service.WorkoutPlansServiceI
	DietLogsService     service.DietLogsServiceI
	ProgressService     service.ProgressServiceI
	JwtService          JWTServiceI
	// Optional. Without it requests are not measured and /metrics is not mounted.
	Metrics *metrics.Manager
}

func New(servicesOptions *ServicesList) *Server {
	if servicesOptions == nil {
		log.Fatal("creating server error: nil services list")
	}
	s := &Server{
		mx:                  chi.NewMux(),
		userService:         servicesOptions.UserService,
		activitiesService:   servicesOptions.ActivitiesService,
		workoutPlansService: servicesOptions.WorkoutPlansService,
		dietLogsService:     servicesOptions.DietLogsService,
		progressService:     servicesOptions.ProgressService,
		jwtService:          servicesOptions.JwtService,
		metrics:             servicesOptions.Metrics,
	}
	s.mountEndpoints()
	return s
}

func (s *Server) mountEndpoints() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.RecoveryMiddleware, s.MetricsMiddleware)

	s.mx.Get("/", s.Home)
	s.mx.Post("/register/", s.Register)
	s.mx.Post("/login/", s.Login)
	s.mx.Post("/login/refresh/", s.RefreshToken)
	if s.metrics != nil {
		s.mx.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	s.mx.Group(func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

		r.Get("/activities/", s.ListActivities)
		r.Post("/activities/", s.CreateActivity)
		r.Get("/activities/history/", s.ActivityHistory)
		r.Get("/activities/{id}/", s.GetActivity)
		r.Put("/activities/{id}/", s.UpdateActivity)
		r.Delete("/activities/{id}/", s.DeleteActivity)

		r.Get("/workout-plans/", s.ListWorkoutPlans)
		r.Post("/workout-plans/", s.CreateWorkoutPlan)
		r.Get("/workout-plans/{id}/", s.GetWorkoutPlan)
		r.Put("/workout-plans/{id}/", s.UpdateWorkoutPlan)
		r.Delete("/workout-plans/{id}/", s.DeleteWorkoutPlan)

		for _, prefix := range []string{"/diet-logs/", "/diet/"} {
			r.Get(prefix, s.ListDietLogs)
			r.Post(prefix, s.CreateDietLog)
		}
		r.Get("/diet-logs/{id}/", s.GetDietLog)
		r.Put("/diet-logs/{id}/", s.UpdateDietLog)
		r.Delete("/diet-logs/{id}/", s.DeleteDietLog)

		r.Get("/progress/", s.Progress)
		r.Get("/users/", s.ListUsers)
		r.Delete("/account/", s.DeleteAccount)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until SIGINT or SIGTERM, then shuts down gracefully and runs cleanup jobs.
func (s *Server) Run(addr string) error {
	defer cleanup.CleanUp()
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
		WriteTimeout:      time.Minute,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		return errors.New("serving error: " + err.Error())
	case sig := <-stop:
		slog.Info("shutting down", slog.String("signal", sig.String()))
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(ctx)
	if err != nil {
		return errors.New("shutdown error: " + err.Error())
	}
	return nil
}

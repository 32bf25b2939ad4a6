package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/limbo/fittrack/pkg/httputil"
)

type contextKey string

const (
	requestIDContextKey contextKey = "Request-ID"
	loggerContextKey    contextKey = "Logger"
	uidContextKey       contextKey = "User-ID"
)

const unauthorizedMessage = "authentication credentials were not provided or are invalid"

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New().String()
		w.Header().Set("X-Request-ID", reqID)
		ctx := context.WithValue(r.Context(), requestIDContextKey, reqID)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr), slog.String("method", r.Method), slog.String("path", r.URL.Path))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		uid, err := GetUIDFromContext(r)
		if err == nil {
			logger = logger.With(slog.String("uid", uid.String()))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// RecoveryMiddleware turns a handler panic into a 500 response.
func (s *Server) RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger := GetLoggerFromCtx(r.Context())
				logger.Error("panic serving request", slog.Any("panic", rec), slog.String("stack", string(debug.Stack())))
				if s.metrics != nil {
					s.metrics.CounterHandleRequestPanic.Inc()
				}
				httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal server error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}
		s.metrics.GaugeRequests.Inc()
		defer s.metrics.GaugeRequests.Dec()

		begin := time.Now()
		resp := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(resp, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = routeLabel(rctx.RoutePattern(), r.URL.Path)
		}
		s.metrics.HistRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(begin).Seconds())
		s.metrics.CounterRequests.WithLabelValues(r.Method, route, strconv.Itoa(resp.statusCode)).Inc()
	})
}

// routeLabel restores the trailing slash chi trims from matched patterns,
// so labels read like the route table.
func routeLabel(pattern, path string) string {
	if strings.HasSuffix(path, "/") && !strings.HasSuffix(pattern, "/") && !strings.HasSuffix(pattern, "*") {
		return pattern + "/"
	}
	return pattern
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	rw.ResponseWriter.WriteHeader(statusCode)
	rw.statusCode = statusCode
}

// AuthMiddleware admits requests carrying a live access token of an existing user.
// Every rejection is answered with the same 401 body, the cause goes to the log only.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		uid, err := s.authenticate(r)
		if err != nil {
			logger.Error("auth failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, unauthorizedMessage, nil)
			return
		}
		r = r.WithContext(ContextWithUID(r.Context(), uid))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(r *http.Request) (uuid.UUID, error) {
	tokenString, err := GetTokenFromHeader(r)
	if err != nil {
		return uuid.UUID{}, err
	}
	claims, err := s.jwtService.ParseToken(tokenString)
	if err != nil {
		return uuid.UUID{}, err
	}
	if claims.TokenType != TokenTypeAccess {
		return uuid.UUID{}, errors.New("token of type " + strconv.Quote(claims.TokenType) + " used for access")
	}
	user, err := s.lookupUser(r.Context(), claims)
	if err != nil {
		return uuid.UUID{}, err
	}
	return user.ID, nil
}

// lookupUser makes sure the user named by the claims still exists.
func (s *Server) lookupUser(ctx context.Context, claims *JWTClaims) (*entity.User, error) {
	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, errors.New("invalid uid in token claims")
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.New("searching for token owner: " + err.Error())
	}
	return user, nil
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func ContextWithUID(ctx context.Context, uid uuid.UUID) context.Context {
	return context.WithValue(ctx, uidContextKey, uid)
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}

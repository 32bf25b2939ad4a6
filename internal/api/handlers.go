package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/httputil"
)

const requestTimeout = 10 * time.Second

// Home godoc
// @Summary Welcome message
// @Tags common
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Welcome to the Fitness Tracker API!"))
}

func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}

// callerID extracts the authenticated user. Routes behind AuthMiddleware always have one.
func callerID(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, unauthorizedMessage, nil)
		return uuid.UUID{}, false
	}
	return uid, true
}

// recordID parses {id} path value. A malformed id cannot name a record, so it is reported as 404.
func recordID(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op+" error: invalid id in path value", slog.String("id", r.PathValue("id")))
		httputil.WriteErrorResponse(w, http.StatusNotFound, "not found", nil)
		return uuid.UUID{}, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, op string, dst any) bool {
	err := httputil.DecodeJSON(r, dst)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op+" error: invalid body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	return true
}

// writeServiceError maps errors returned by record services to responses.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	var verr *errorvalues.ValidationError
	switch {
	case errors.As(err, &verr):
		logger.Error(op+" error: invalid payload", slog.String("error", verr.Error()))
		httputil.WriteFieldErrors(w, verr.Fields)
	case errors.Is(err, errorvalues.ErrActivityNotFound),
		errors.Is(err, errorvalues.ErrWorkoutPlanNotFound),
		errors.Is(err, errorvalues.ErrDietLogNotFound):
		logger.Error(op + " error: unexist record")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "not found", nil)
	case errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op + " error: record has different owner")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "not found", nil)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(op + " error: caller doesn't exist anymore")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, unauthorizedMessage, nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal server error", nil)
	}
}

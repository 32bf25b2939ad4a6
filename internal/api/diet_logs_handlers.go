package api

import (
	"log/slog"
	"net/http"

	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/httputil"
)

// ListDietLogs godoc
// @Summary List caller's diet logs
// @Tags diet-logs
// @Produce json
// @Success 200 {array} entity.DietLog
// @Security BearerAuth
// @Router /diet-logs/ [get]
func (s *Server) ListDietLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, "listing diet logs")
	if !ok {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	logs, err := s.dietLogsService.List(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "listing diet logs", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, logs)
}

// CreateDietLog godoc
// @Summary Log a meal
// @Tags diet-logs
// @Accept json
// @Produce json
// @Param request body service.DietLogRequest true "meal"
// @Success 201 {object} entity.DietLog
// @Failure 400 {object} map[string][]string
// @Security BearerAuth
// @Router /diet-logs/ [post]
func (s *Server) CreateDietLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, "create diet log")
	if !ok {
		return
	}
	var req service.DietLogRequest
	if !decodeBody(w, r, "create diet log", &req) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	dl, err := s.dietLogsService.Create(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "create diet log", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, dl)
	logger.Info("diet log created", slog.String("diet_log_id", dl.ID.String()))
}

// GetDietLog godoc
// @Summary Get caller's diet log
// @Tags diet-logs
// @Produce json
// @Param id path string true "diet log id"
// @Success 200 {object} entity.DietLog
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /diet-logs/{id}/ [get]
func (s *Server) GetDietLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, "get diet log")
	if !ok {
		return
	}
	id, ok := recordID(w, r, "get diet log")
	if !ok {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	dl, err := s.dietLogsService.Get(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get diet log", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dl)
}

// UpdateDietLog godoc
// @Summary Replace caller's diet log
// @Tags diet-logs
// @Accept json
// @Produce json
// @Param id path string true "diet log id"
// @Param request body service.DietLogRequest true "meal"
// @Success 200 {object} entity.DietLog
// @Failure 400 {object} map[string][]string
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /diet-logs/{id}/ [put]
func (s *Server) UpdateDietLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, "update diet log")
	if !ok {
		return
	}
	id, ok := recordID(w, r, "update diet log")
	if !ok {
		return
	}
	var req service.DietLogRequest
	if !decodeBody(w, r, "update diet log", &req) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	dl, err := s.dietLogsService.Update(ctx, id, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "update diet log", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dl)
	logger.Info("diet log updated", slog.String("diet_log_id", id.String()))
}

// DeleteDietLog godoc
// @Summary Delete caller's diet log
// @Tags diet-logs
// @Param id path string true "diet log id"
// @Success 204
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /diet-logs/{id}/ [delete]
func (s *Server) DeleteDietLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, "diet log deletion")
	if !ok {
		return
	}
	id, ok := recordID(w, r, "diet log deletion")
	if !ok {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	err := s.dietLogsService.Delete(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "diet log deletion", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("diet log deleted", slog.String("diet_log_id", id.String()))
}

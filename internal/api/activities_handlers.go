package api

import (
	"log/slog"
	"net/http"

	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/httputil"
)

// ListActivities godoc
// @Summary List caller's activities, newest first
// @Tags activities
// @Produce json
// @Success 200 {array} entity.Activity
// @Failure 401 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /activities/ [get]
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, "listing activities")
	if !ok {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	activities, err := s.activitiesService.List(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "listing activities", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, activities)
}

// CreateActivity godoc
// @Summary Log an activity
// @Tags activities
// @Accept json
// @Produce json
// @Param request body service.ActivityRequest true "activity"
// @Success 201 {object} entity.Activity
// @Failure 400 {object} map[string][]string
// @Failure 401 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /activities/ [post]
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, "create activity")
	if !ok {
		return
	}
	var req service.ActivityRequest
	if !decodeBody(w, r, "create activity", &req) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	activity, err := s.activitiesService.Create(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "create activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, activity)
	logger.Info("activity created", slog.String("activity_id", activity.ID.String()))
}

// GetActivity godoc
// @Summary Get caller's activity
// @Tags activities
// @Produce json
// @Param id path string true "activity id"
// @Success 200 {object} entity.Activity
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /activities/{id}/ [get]
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, "get activity")
	if !ok {
		return
	}
	id, ok := recordID(w, r, "get activity")
	if !ok {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	activity, err := s.activitiesService.Get(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, activity)
}

// UpdateActivity godoc
// @Summary Replace caller's activity
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "activity id"
// @Param request body service.ActivityRequest true "activity"
// @Success 200 {object} entity.Activity
// @Failure 400 {object} map[string][]string
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /activities/{id}/ [put]
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, "update activity")
	if !ok {
		return
	}
	id, ok := recordID(w, r, "update activity")
	if !ok {
		return
	}
	var req service.ActivityRequest
	if !decodeBody(w, r, "update activity", &req) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	activity, err := s.activitiesService.Update(ctx, id, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "update activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, activity)
	logger.Info("activity updated", slog.String("activity_id", id.String()))
}

// DeleteActivity godoc
// @Summary Delete caller's activity
// @Tags activities
// @Param id path string true "activity id"
// @Success 204
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /activities/{id}/ [delete]
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, "activity deletion")
	if !ok {
		return
	}
	id, ok := recordID(w, r, "activity deletion")
	if !ok {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	err := s.activitiesService.Delete(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "activity deletion", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("activity deleted", slog.String("activity_id", id.String()))
}

// ActivityHistory godoc
// @Summary Filtered, ordered and paginated activity history
// @Tags activities
// @Produce json
// @Param activity_type query string false "exact activity type"
// @Param start_date query string false "YYYY-MM-DD or RFC 3339, inclusive"
// @Param end_date query string false "YYYY-MM-DD or RFC 3339, inclusive"
// @Param ordering query string false "date, duration or calories_burned, '-' prefix for descending"
// @Param page query int false "page number" default(1)
// @Param page_size query int false "page size, at most 100" default(10)
// @Success 200 {object} service.HistoryPage
// @Failure 400 {object} map[string][]string
// @Security BearerAuth
// @Router /activities/history/ [get]
func (s *Server) ActivityHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, "activity history")
	if !ok {
		return
	}
	q := r.URL.Query()
	ctx, cancel := requestContext(r)
	defer cancel()
	page, err := s.activitiesService.History(ctx, uid, service.HistoryQuery{
		ActivityType: q.Get("activity_type"),
		StartDate:    q.Get("start_date"),
		EndDate:      q.Get("end_date"),
		Ordering:     q.Get("ordering"),
		Page:         q.Get("page"),
		PageSize:     q.Get("page_size"),
	})
	if err != nil {
		writeServiceError(w, logger, "activity history", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, page)
}

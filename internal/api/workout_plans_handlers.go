package api

import (
	"log/slog"
	"net/http"

	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/httputil"
)

// ListWorkoutPlans godoc
// @Summary List caller's workout plans
// @Tags workout-plans
// @Produce json
// @Success 200 {array} entity.WorkoutPlan
// @Security BearerAuth
// @Router /workout-plans/ [get]
func (s *Server) ListWorkoutPlans(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, "listing workout plans")
	if !ok {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	plans, err := s.workoutPlansService.List(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "listing workout plans", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plans)
}

// CreateWorkoutPlan godoc
// @Summary Create workout plan
// @Tags workout-plans
// @Accept json
// @Produce json
// @Param request body service.WorkoutPlanRequest true "plan"
// @Success 201 {object} entity.WorkoutPlan
// @Failure 400 {object} map[string][]string
// @Security BearerAuth
// @Router /workout-plans/ [post]
func (s *Server) CreateWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, "create workout plan")
	if !ok {
		return
	}
	var req service.WorkoutPlanRequest
	if !decodeBody(w, r, "create workout plan", &req) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	plan, err := s.workoutPlansService.Create(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "create workout plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, plan)
	logger.Info("workout plan created", slog.String("plan_id", plan.ID.String()))
}

// GetWorkoutPlan godoc
// @Summary Get caller's workout plan
// @Tags workout-plans
// @Produce json
// @Param id path string true "plan id"
// @Success 200 {object} entity.WorkoutPlan
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /workout-plans/{id}/ [get]
func (s *Server) GetWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, "get workout plan")
	if !ok {
		return
	}
	id, ok := recordID(w, r, "get workout plan")
	if !ok {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	plan, err := s.workoutPlansService.Get(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get workout plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
}

// UpdateWorkoutPlan godoc
// @Summary Replace caller's workout plan
// @Tags workout-plans
// @Accept json
// @Produce json
// @Param id path string true "plan id"
// @Param request body service.WorkoutPlanRequest true "plan"
// @Success 200 {object} entity.WorkoutPlan
// @Failure 400 {object} map[string][]string
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /workout-plans/{id}/ [put]
func (s *Server) UpdateWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, "update workout plan")
	if !ok {
		return
	}
	id, ok := recordID(w, r, "update workout plan")
	if !ok {
		return
	}
	var req service.WorkoutPlanRequest
	if !decodeBody(w, r, "update workout plan", &req) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	plan, err := s.workoutPlansService.Update(ctx, id, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "update workout plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
	logger.Info("workout plan updated", slog.String("plan_id", id.String()))
}

// DeleteWorkoutPlan godoc
// @Summary Delete caller's workout plan
// @Tags workout-plans
// @Param id path string true "plan id"
// @Success 204
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /workout-plans/{id}/ [delete]
func (s *Server) DeleteWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, "workout plan deletion")
	if !ok {
		return
	}
	id, ok := recordID(w, r, "workout plan deletion")
	if !ok {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	err := s.workoutPlansService.Delete(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "workout plan deletion", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("workout plan deleted", slog.String("plan_id", id.String()))
}

package api

import (
	"net/http"

	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/httputil"
)

// Progress godoc
// @Summary Totals over the optional range plus weekly and monthly sums
// @Tags progress
// @Produce json
// @Param start_date query string false "YYYY-MM-DD or RFC 3339, inclusive"
// @Param end_date query string false "YYYY-MM-DD or RFC 3339, inclusive"
// @Success 200 {object} entity.Progress
// @Failure 400 {object} map[string][]string
// @Security BearerAuth
// @Router /progress/ [get]
func (s *Server) Progress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, "progress")
	if !ok {
		return
	}
	q := r.URL.Query()
	ctx, cancel := requestContext(r)
	defer cancel()
	progress, err := s.progressService.Progress(ctx, uid, service.ProgressQuery{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	})
	if err != nil {
		writeServiceError(w, logger, "progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, progress)
}

package service

import (
	"math"
	"strconv"
	"strings"
	"time"

	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	dateLayout = "2006-01-02"
)

// parseDate accepts YYYY-MM-DD or an RFC 3339 timestamp. A date-only upper
// bound is moved to the last microsecond of that day.
func parseDate(value string, upper bool) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, true
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, false
	}
	if upper {
		d = d.Add(24*time.Hour - time.Microsecond)
	}
	return &d, true
}

func parseDateRange(verr *errorvalues.ValidationError, start, end string) (from, to *time.Time) {
	from, ok := parseDate(start, false)
	if !ok {
		verr.Add("start_date", "Enter a valid date. Use one of these formats instead: YYYY-MM-DD, RFC 3339.")
	}
	to, ok = parseDate(end, true)
	if !ok {
		verr.Add("end_date", "Enter a valid date. Use one of these formats instead: YYYY-MM-DD, RFC 3339.")
	}
	return from, to
}

func parsePositive(verr *errorvalues.ValidationError, field, value string, fallback int) int {
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		verr.Add(field, "A positive integer is required.")
		return fallback
	}
	return n
}

// parseOrdering splits "-field" into the column key and direction.
func parseOrdering(verr *errorvalues.ValidationError, value string) (string, bool) {
	if value == "" {
		return "date", false
	}
	desc := strings.HasPrefix(value, "-")
	key := strings.TrimPrefix(value, "-")
	if _, ok := repository.HistoryOrderings[key]; !ok {
		verr.Add("ordering", "Select a valid ordering: date, duration or calories_burned, optionally prefixed with '-'.")
		return "date", false
	}
	return key, desc
}

// historyFilter turns raw query parameters into a repository filter.
func historyFilter(q HistoryQuery) (repository.HistoryFilter, int, int, error) {
	verr := errorvalues.NewValidationError()
	from, to := parseDateRange(verr, q.StartDate, q.EndDate)
	orderBy, desc := parseOrdering(verr, q.Ordering)
	page := parsePositive(verr, "page", q.Page, DefaultPage)
	pageSize := min(parsePositive(verr, "page_size", q.PageSize, DefaultPageSize), MaxPageSize)
	if page > math.MaxInt/pageSize {
		verr.Add("page", "Invalid page.")
	}
	if !verr.Empty() {
		return repository.HistoryFilter{}, 0, 0, verr
	}
	return repository.HistoryFilter{
		ActivityType: q.ActivityType,
		From:         from,
		To:           to,
		OrderBy:      orderBy,
		Descending:   desc,
		Limit:        pageSize,
		Offset:       (page - 1) * pageSize,
	}, page, pageSize, nil
}

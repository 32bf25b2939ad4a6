package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func validActivity() *service.ActivityRequest {
	return &service.ActivityRequest{
		ActivityType:   "Running",
		Duration:       intPtr(30),
		Distance:       floatPtr(5.0),
		CaloriesBurned: intPtr(300),
	}
}

func fieldErrors(t *testing.T, err error) map[string][]string {
	t.Helper()
	var verr *errorvalues.ValidationError
	require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
	return verr.Fields
}

func TestCreateActivity(t *testing.T) {
	ctx := context.Background()
	t.Run("owned by caller", func(t *testing.T) {
		repo := &activitiesRepoMock{}
		s := service.NewActivitiesService(repo)
		a, err := s.Create(ctx, userID, validActivity())
		require.NoError(t, err)
		assert.Equal(t, userID, a.UserID)
		assert.NotEqual(t, uuid.UUID{}, a.ID)
		assert.Equal(t, "Running", a.ActivityType)
		assert.Equal(t, 30, a.Duration)
		assert.Equal(t, 5.0, a.Distance)
		assert.Equal(t, 300, a.CaloriesBurned)
		require.Len(t, repo.activities, 1)
		assert.Equal(t, userID, repo.activities[0].UserID)
	})
	t.Run("zero distance and calories are valid", func(t *testing.T) {
		s := service.NewActivitiesService(&activitiesRepoMock{})
		req := validActivity()
		req.Distance = floatPtr(0)
		req.CaloriesBurned = intPtr(0)
		_, err := s.Create(ctx, userID, req)
		assert.NoError(t, err)
	})
	t.Run("validation", func(t *testing.T) {
		repo := &activitiesRepoMock{}
		s := service.NewActivitiesService(repo)
		testCases := []struct {
			Desc   string
			Modify func(r *service.ActivityRequest)
			Field  string
		}{
			{"negative duration", func(r *service.ActivityRequest) { r.Duration = intPtr(-10) }, "duration"},
			{"zero duration", func(r *service.ActivityRequest) { r.Duration = intPtr(0) }, "duration"},
			{"missing duration", func(r *service.ActivityRequest) { r.Duration = nil }, "duration"},
			{"blank type", func(r *service.ActivityRequest) { r.ActivityType = "   " }, "activity_type"},
			{"empty type", func(r *service.ActivityRequest) { r.ActivityType = "" }, "activity_type"},
			{"long type", func(r *service.ActivityRequest) {
				r.ActivityType = "Running with a very long description that surely exceeds fifty"
			}, "activity_type"},
			{"negative distance", func(r *service.ActivityRequest) { r.Distance = floatPtr(-1) }, "distance"},
			{"negative calories", func(r *service.ActivityRequest) { r.CaloriesBurned = intPtr(-5) }, "calories_burned"},
			{"duration above integer column", func(r *service.ActivityRequest) { r.Duration = intPtr(3000000000) }, "duration"},
			{"calories above integer column", func(r *service.ActivityRequest) { r.CaloriesBurned = intPtr(2147483648) }, "calories_burned"},
		}
		for _, tc := range testCases {
			t.Run(tc.Desc, func(t *testing.T) {
				req := validActivity()
				tc.Modify(req)
				_, err := s.Create(ctx, userID, req)
				fields := fieldErrors(t, err)
				assert.Contains(t, fields, tc.Field)
				assert.Len(t, fields, 1)
			})
		}
		assert.Empty(t, repo.activities)
	})
	t.Run("negative duration message", func(t *testing.T) {
		s := service.NewActivitiesService(&activitiesRepoMock{})
		req := validActivity()
		req.Duration = intPtr(-10)
		_, err := s.Create(ctx, userID, req)
		assert.Equal(t, []string{"Ensure this value is greater than 0."}, fieldErrors(t, err)["duration"])
	})
	t.Run("duration limit message", func(t *testing.T) {
		s := service.NewActivitiesService(&activitiesRepoMock{})
		req := validActivity()
		req.Duration = intPtr(3000000000)
		_, err := s.Create(ctx, userID, req)
		assert.Equal(t, []string{"Ensure this value is less than or equal to 2147483647."}, fieldErrors(t, err)["duration"])
		req.Duration = intPtr(2147483647)
		_, err = s.Create(ctx, userID, req)
		assert.NoError(t, err)
	})
	t.Run("owner not found", func(t *testing.T) {
		s := service.NewActivitiesService(&activitiesRepoMock{state: stateOwnerNotFoundError})
		_, err := s.Create(ctx, userID, validActivity())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		s := service.NewActivitiesService(&activitiesRepoMock{state: stateDBError})
		_, err := s.Create(ctx, userID, validActivity())
		assert.Error(t, err)
	})
}

func TestActivityOwnership(t *testing.T) {
	ctx := context.Background()
	repo := &activitiesRepoMock{}
	s := service.NewActivitiesService(repo)
	mine, err := s.Create(ctx, userID, validActivity())
	require.NoError(t, err)
	theirs, err := s.Create(ctx, otherUser, validActivity())
	require.NoError(t, err)

	t.Run("get own", func(t *testing.T) {
		a, err := s.Get(ctx, mine.ID, userID)
		require.NoError(t, err)
		assert.Equal(t, *mine, *a)
	})
	t.Run("get foreign", func(t *testing.T) {
		_, err := s.Get(ctx, theirs.ID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("list only own", func(t *testing.T) {
		list, err := s.List(ctx, userID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, mine.ID, list[0].ID)
	})
	t.Run("update keeps date and owner", func(t *testing.T) {
		req := validActivity()
		req.ActivityType = "Cycling"
		req.Duration = intPtr(90)
		a, err := s.Update(ctx, mine.ID, userID, req)
		require.NoError(t, err)
		assert.Equal(t, "Cycling", a.ActivityType)
		assert.Equal(t, 90, a.Duration)
		assert.Equal(t, mine.Date, a.Date)
		assert.Equal(t, userID, a.UserID)
	})
	t.Run("update foreign", func(t *testing.T) {
		_, err := s.Update(ctx, theirs.ID, userID, validActivity())
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("update invalid", func(t *testing.T) {
		req := validActivity()
		req.Duration = intPtr(-10)
		_, err := s.Update(ctx, mine.ID, userID, req)
		assert.Contains(t, fieldErrors(t, err), "duration")
	})
	t.Run("delete foreign", func(t *testing.T) {
		assert.ErrorIs(t, s.Delete(ctx, theirs.ID, userID), errorvalues.ErrWrongOwner)
	})
	t.Run("delete then get", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, mine.ID, userID))
		_, err := s.Get(ctx, mine.ID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrActivityNotFound)
		list, err := s.List(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, list)
		assert.ErrorIs(t, s.Delete(ctx, mine.ID, userID), errorvalues.ErrActivityNotFound)
	})
}

func TestActivityHistory(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 10, 10, 12, 0, 0, 0, time.UTC)
	repo := &activitiesRepoMock{activities: []*entity.Activity{
		{ID: uuid.New(), UserID: userID, ActivityType: "Running", Duration: 30, Distance: 5, CaloriesBurned: 300, Date: base},
		{ID: uuid.New(), UserID: userID, ActivityType: "Cycling", Duration: 60, Distance: 20, CaloriesBurned: 500, Date: base.Add(24 * time.Hour)},
		{ID: uuid.New(), UserID: userID, ActivityType: "Running", Duration: 45, Distance: 8, CaloriesBurned: 450, Date: base.Add(48 * time.Hour)},
		{ID: uuid.New(), UserID: otherUser, ActivityType: "Running", Duration: 10, Distance: 1, CaloriesBurned: 50, Date: base},
	}}
	s := service.NewActivitiesService(repo)

	t.Run("defaults", func(t *testing.T) {
		page, err := s.History(ctx, userID, service.HistoryQuery{})
		require.NoError(t, err)
		assert.Equal(t, 3, page.Count)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, service.DefaultPageSize, page.PageSize)
		assert.Equal(t, 1, page.TotalPages)
		require.Len(t, page.Results, 3)
		assert.True(t, page.Results[0].Date.Before(page.Results[1].Date))
		assert.Equal(t, "date", repo.filter.OrderBy)
		assert.False(t, repo.filter.Descending)
	})
	t.Run("type filter and descending ordering", func(t *testing.T) {
		page, err := s.History(ctx, userID, service.HistoryQuery{ActivityType: "Running", Ordering: "-duration"})
		require.NoError(t, err)
		assert.Equal(t, 2, page.Count)
		require.Len(t, page.Results, 2)
		assert.Equal(t, 45, page.Results[0].Duration)
		assert.Equal(t, 30, page.Results[1].Duration)
	})
	t.Run("date only end covers whole day", func(t *testing.T) {
		page, err := s.History(ctx, userID, service.HistoryQuery{StartDate: "2024-10-11", EndDate: "2024-10-11"})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Count)
		assert.Equal(t, "Cycling", page.Results[0].ActivityType)
		require.NotNil(t, repo.filter.To)
		assert.Equal(t, time.Date(2024, 10, 11, 23, 59, 59, 999999000, time.UTC), *repo.filter.To)
	})
	t.Run("range excluding everything", func(t *testing.T) {
		page, err := s.History(ctx, userID, service.HistoryQuery{StartDate: "2030-01-01"})
		require.NoError(t, err)
		assert.Equal(t, 0, page.Count)
		assert.Equal(t, 0, page.TotalPages)
		assert.NotNil(t, page.Results)
		assert.Empty(t, page.Results)
	})
	t.Run("rfc3339 bounds", func(t *testing.T) {
		page, err := s.History(ctx, userID, service.HistoryQuery{EndDate: base.Format(time.RFC3339)})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Count)
	})
	t.Run("pagination", func(t *testing.T) {
		page, err := s.History(ctx, userID, service.HistoryQuery{Page: "2", PageSize: "2"})
		require.NoError(t, err)
		assert.Equal(t, 3, page.Count)
		assert.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Results, 1)
		assert.Equal(t, 2, repo.filter.Offset)
		assert.Equal(t, 2, repo.filter.Limit)
	})
	t.Run("page size clamped", func(t *testing.T) {
		page, err := s.History(ctx, userID, service.HistoryQuery{PageSize: "1000"})
		require.NoError(t, err)
		assert.Equal(t, service.MaxPageSize, page.PageSize)
	})
	t.Run("invalid parameters", func(t *testing.T) {
		_, err := s.History(ctx, userID, service.HistoryQuery{
			StartDate: "yesterday",
			EndDate:   "2024-13-45",
			Ordering:  "-id",
			Page:      "0",
			PageSize:  "abc",
		})
		fields := fieldErrors(t, err)
		for _, name := range []string{"start_date", "end_date", "ordering", "page", "page_size"} {
			assert.Contains(t, fields, name)
		}
	})
	t.Run("page beyond addressable offset", func(t *testing.T) {
		_, err := s.History(ctx, userID, service.HistoryQuery{Page: "92233720368547760", PageSize: "100"})
		fields := fieldErrors(t, err)
		assert.Contains(t, fields, "page")
		assert.Len(t, fields, 1)
	})
	t.Run("db error", func(t *testing.T) {
		s := service.NewActivitiesService(&activitiesRepoMock{state: stateDBError})
		_, err := s.History(ctx, userID, service.HistoryQuery{})
		assert.Error(t, err)
	})
}

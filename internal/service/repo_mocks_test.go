package service_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type mockState int

const (
	stateSuccess mockState = iota
	stateDBError
	stateNotFoundError
	stateOwnerNotFoundError
	stateUserExistsError
)

// Variables for tests
var (
	userID    = uuid.New()
	otherUser = uuid.New()
)

// activitiesRepoMock keeps activities in memory so that sums and filters can be checked.
type activitiesRepoMock struct {
	state      mockState
	activities []*entity.Activity
	// Last filter passed to History
	filter repository.HistoryFilter
}

func (m *activitiesRepoMock) Create(ctx context.Context, a *entity.Activity) error {
	switch m.state {
	case stateDBError:
		return errors.New("db error")
	case stateOwnerNotFoundError:
		return errorvalues.ErrOwnerNotFound
	}
	a.ID = uuid.New()
	if a.Date.IsZero() {
		a.Date = time.Now()
	}
	stored := *a
	m.activities = append(m.activities, &stored)
	return nil
}

func (m *activitiesRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	for _, a := range m.activities {
		if a.ID == id {
			found := *a
			return &found, nil
		}
	}
	return nil, errorvalues.ErrActivityNotFound
}

func (m *activitiesRepoMock) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Activity, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	result := make([]*entity.Activity, 0)
	for _, a := range m.activities {
		if a.UserID == uid {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *activitiesRepoMock) History(ctx context.Context, uid uuid.UUID, filter repository.HistoryFilter) ([]*entity.Activity, int, error) {
	m.filter = filter
	if m.state == stateDBError {
		return nil, 0, errors.New("db error")
	}
	matched := make([]*entity.Activity, 0)
	for _, a := range m.activities {
		if a.UserID != uid || !inRange(a.Date, filter.From, filter.To) {
			continue
		}
		if filter.ActivityType != "" && a.ActivityType != filter.ActivityType {
			continue
		}
		matched = append(matched, a)
	}
	less := func(a, b *entity.Activity) bool {
		switch filter.OrderBy {
		case "duration":
			return a.Duration < b.Duration
		case "calories_burned":
			return a.CaloriesBurned < b.CaloriesBurned
		}
		return a.Date.Before(b.Date)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if filter.Descending {
			return less(matched[j], matched[i])
		}
		return less(matched[i], matched[j])
	})
	total := len(matched)
	if filter.Offset >= total {
		return []*entity.Activity{}, total, nil
	}
	end := min(filter.Offset+filter.Limit, total)
	return matched[filter.Offset:end], total, nil
}

func (m *activitiesRepoMock) Update(ctx context.Context, a *entity.Activity) error {
	switch m.state {
	case stateDBError:
		return errors.New("db error")
	case stateNotFoundError:
		return errorvalues.ErrActivityNotFound
	}
	for i, stored := range m.activities {
		if stored.ID == a.ID {
			updated := *a
			m.activities[i] = &updated
			return nil
		}
	}
	return errorvalues.ErrActivityNotFound
}

func (m *activitiesRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.state == stateDBError {
		return errors.New("db error")
	}
	for i, a := range m.activities {
		if a.ID == id {
			m.activities = append(m.activities[:i], m.activities[i+1:]...)
			return nil
		}
	}
	return errorvalues.ErrActivityNotFound
}

func (m *activitiesRepoMock) Totals(ctx context.Context, uid uuid.UUID, from, to *time.Time) (entity.ActivityTotals, error) {
	if m.state == stateDBError {
		return entity.ActivityTotals{}, errors.New("db error")
	}
	var totals entity.ActivityTotals
	for _, a := range m.activities {
		if a.UserID != uid || !inRange(a.Date, from, to) {
			continue
		}
		totals.Distance += a.Distance
		totals.Calories += int64(a.CaloriesBurned)
		totals.Duration += int64(a.Duration)
	}
	return totals, nil
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

type usersRepoMock struct {
	state    mockState
	user     *entity.User
	inactive []entity.InactiveUser
	deleted  bool
}

func (m *usersRepoMock) Create(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	switch m.state {
	case stateUserExistsError:
		return uuid.UUID{}, errorvalues.ErrUserExists
	case stateDBError:
		return uuid.UUID{}, errors.New("db error")
	}
	stored := *user
	stored.ID = userID
	stored.CreatedAt = time.Now()
	m.user = &stored
	return userID, nil
}

func (m *usersRepoMock) find() (*entity.User, error) {
	switch m.state {
	case stateDBError:
		return nil, errors.New("db error")
	case stateNotFoundError:
		return nil, errorvalues.ErrUserNotFound
	}
	if m.user == nil || m.deleted {
		return nil, errorvalues.ErrUserNotFound
	}
	found := *m.user
	return &found, nil
}

func (m *usersRepoMock) FindByName(ctx context.Context, name string) (*entity.User, error) {
	u, err := m.find()
	if err != nil {
		return nil, err
	}
	if u.Name != name {
		return nil, errorvalues.ErrUserNotFound
	}
	return u, nil
}

func (m *usersRepoMock) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	u, err := m.find()
	if err != nil {
		return nil, err
	}
	if u.ID != uid {
		return nil, errorvalues.ErrUserNotFound
	}
	return u, nil
}

func (m *usersRepoMock) List(ctx context.Context) ([]*entity.User, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	if m.user == nil || m.deleted {
		return []*entity.User{}, nil
	}
	return []*entity.User{m.user}, nil
}

func (m *usersRepoMock) Delete(ctx context.Context, uid uuid.UUID) error {
	if m.state == stateDBError {
		return errors.New("db error")
	}
	if m.user == nil || m.deleted || m.user.ID != uid {
		return errorvalues.ErrUserNotFound
	}
	m.deleted = true
	return nil
}

func (m *usersRepoMock) FindInactiveSince(ctx context.Context, cutoff time.Time) ([]entity.InactiveUser, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	return m.inactive, nil
}

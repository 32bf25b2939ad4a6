package errorvalues

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrOwnerNotFound    = errors.New("owner of the record doesn't exist")
	ErrWrongOwner       = errors.New("record belongs to another user")

	ErrActivityNotFound    = errors.New("activity doesn't exist")
	ErrWorkoutPlanNotFound = errors.New("workout plan doesn't exist")
	ErrDietLogNotFound     = errors.New("diet log doesn't exist")
)

// ValidationError maps a field name (as seen by API clients) to the list of
// violated constraints on it.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func (ve *ValidationError) Add(field, message string) {
	ve.Fields[field] = append(ve.Fields[field], message)
}

func (ve *ValidationError) Empty() bool {
	return len(ve.Fields) == 0
}

func (ve *ValidationError) Error() string {
	names := make([]string, 0, len(ve.Fields))
	for name := range ve.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation error on fields: " + strings.Join(names, ", ")
}

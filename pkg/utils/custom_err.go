package utils

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrReference           = errors.New("referenced entity does not exist")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrDatabaseError       = errors.New("database error")

	ErrUserNotFound          = fmt.Errorf("user %w", ErrNotFound)
	ErrProjectNotFound       = fmt.Errorf("project %w", ErrNotFound)
	ErrTaskNotFound          = fmt.Errorf("task %w", ErrNotFound)
	ErrHabitNotFound         = fmt.Errorf("habit %w", ErrNotFound)
	ErrChallengeNotFound     = fmt.Errorf("challenge %w", ErrNotFound)
	ErrParticipationNotFound = fmt.Errorf("challenge participation %w", ErrNotFound)

	ErrProjectReference = fmt.Errorf("project: %w", ErrReference)
	ErrHabitReference   = fmt.Errorf("habit: %w", ErrReference)

	ErrInvalidSession = fmt.Errorf("session: %w", ErrUnauthenticated)
	ErrInvalidToken   = fmt.Errorf("identity token: %w", ErrUnauthenticated)
)

// ValidationError carries field level detail for a rejected request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// DatabaseError wraps a datastore failure so it maps to ErrDatabaseError
// while keeping the cause for the server log.
func DatabaseError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrDatabaseError, err)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

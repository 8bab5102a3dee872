package errorvalues

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrEmptyCredentials = fmt.Errorf("%w: username and password must not be empty", ErrInvalidInput)
	ErrEmptyName        = fmt.Errorf("%w: event name must not be empty", ErrInvalidInput)
	ErrUnprintableName  = fmt.Errorf("%w: event name contains control characters", ErrInvalidInput)
	ErrEmptyDate        = fmt.Errorf("%w: date must not be empty", ErrInvalidInput)

	ErrDuplicateUser = errors.New("this username is already taken")
	ErrUserNotFound  = errors.New("user doesn't exists")
	ErrInvalidToken  = errors.New("invalid session token")
	ErrWrongPassword = errors.New("wrong username or password")

	ErrAlreadyExists    = errors.New("an event with this name already exists")
	ErrLastCategory     = errors.New("the last event cannot be deleted")
	ErrCategoryNotFound = errors.New("event not found")
	ErrDuplicateDate    = errors.New("this date is already recorded")
	ErrDateNotFound     = errors.New("date not found")
	ErrNoData           = errors.New("no dates recorded for this selection")
	ErrYearRequired     = errors.New("choose a year with --year")

	// Persisted JSON could not be parsed. Callers recover by starting empty.
	ErrCorruptStore = errors.New("stored data is corrupt")
	ErrNotLoaded    = errors.New("catalog is not loaded")
)

// IsNotFound reports whether err belongs to the not-found family.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound) || errors.Is(err, ErrDateNotFound) || errors.Is(err, ErrUserNotFound)
}

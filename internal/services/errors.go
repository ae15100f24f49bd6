package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/home-inventory-api/internal/access"
)

var (
	ErrNotFoundOrForbidden   = access.ErrNotFoundOrForbidden
	ErrInvalidLocation       = errors.New("must provide exactly one of home, room or item")
	ErrInvalidRecurrence     = errors.New("recurring tasks require interval, unit and due date")
	ErrInvalidAssignee       = errors.New("assignee does not have access to the task location")
	ErrInvalidRecurrenceUnit = errors.New("invalid recurrence unit")
	ErrTransientStore        = errors.New("store temporarily unavailable")

	ErrTitleRequired    = errors.New("title is required")
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrInvalidPriority  = errors.New("invalid task priority")
	ErrInvalidShareRole = errors.New("share role must be READ or WRITE")
	ErrCannotShareOwner = errors.New("cannot share a home with its owner")
	ErrInvalidPrice     = errors.New("invalid price")

	ErrImportConflict = errors.New("import reuses an id that already exists")
)

// ValidationError describes which input field failed and why. It unwraps to
// one of the package sentinels so callers can match with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Reason: err.Error(), Err: err}
}

// IsValidation reports whether err is a user-correctable input error.
func IsValidation(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	for _, target := range []error{
		ErrInvalidLocation,
		ErrInvalidRecurrence,
		ErrInvalidAssignee,
		ErrTitleRequired,
		ErrNameRequired,
		ErrInvalidStatus,
		ErrInvalidPriority,
		ErrInvalidShareRole,
		ErrCannotShareOwner,
		ErrInvalidPrice,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// storeErr leaves domain errors untouched and marks everything else as a
// retryable store failure.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrTransientStore) ||
		errors.Is(err, ErrNotFoundOrForbidden) ||
		errors.Is(err, ErrInvalidRecurrenceUnit) ||
		errors.Is(err, ErrImportConflict) ||
		IsValidation(err) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s timed out: %w", ErrTransientStore, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrTransientStore, op, err)
}

package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrEmptyTitle        = errors.New("note title cannot be empty")
	ErrEmptyCategoryName = errors.New("category name cannot be empty")
	ErrInvalidColor      = errors.New("invalid color hex")
	ErrUnknownIcon       = errors.New("unknown category icon")
	ErrUnknownSortOrder  = errors.New("unknown sort order")
	ErrNoteNotFound      = errors.New("note not found")
	ErrCategoryNotFound  = errors.New("category not found")
)

// ValidationError reports input rejected by a use case before any repository call.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// UserMessage converts an error into a message fit for an end user.
// Validation and not-found errors keep their own text; anything else
// (backend or I/O failures) collapses into fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Err.Error()
	case errors.Is(err, ErrNoteNotFound), errors.Is(err, ErrCategoryNotFound):
		return err.Error()
	default:
		return fallback
	}
}

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidField is matched by every [FieldError].
	ErrInvalidField = errors.New("invalid field")

	ErrNothingToUpdate = errors.New("at least one field must be provided for update")
)

// FieldError reports a single rejected field. Its message is safe to return
// to API clients.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidField
}

func required(field string) error {
	return &FieldError{Field: field, Reason: "is required"}
}

func tooLong(field string, limit int) error {
	return &FieldError{Field: field, Reason: fmt.Sprintf("must be at most %d characters", limit)}
}

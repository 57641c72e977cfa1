package errs

import "fmt"

// FieldError reports an input-shape violation on a named field. Handlers
// translate these into form-level messages; the field name is stable API.
type FieldError struct {
	Field  string
	Reason string
}

func NewFieldError(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is lets callers match any field error via errors.Is(err, ErrDomainValidation).
func (e *FieldError) Is(target error) bool {
	return target == ErrDomainValidation
}

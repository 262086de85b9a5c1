package validation

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldRequired is returned when a required field is absent or blank.
	ErrFieldRequired = errors.New("field is required")

	// ErrFieldInvalid is the sentinel matched by every InvalidFieldError.
	ErrFieldInvalid = errors.New("field is invalid")
)

// InvalidFieldError reports a value that is present but does not satisfy a
// format, policy or equality rule.
type InvalidFieldError struct {
	Field string
}

func (e InvalidFieldError) Error() string {
	return fmt.Sprintf("field %s is invalid", e.Field)
}

// Is lets errors.Is(err, ErrFieldInvalid) match any field.
func (e InvalidFieldError) Is(target error) bool {
	return target == ErrFieldInvalid
}

// IsRequired reports whether err is a missing-value failure.
func IsRequired(err error) bool {
	return errors.Is(err, ErrFieldRequired)
}

// IsInvalid reports whether err is an invalid-value failure.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrFieldInvalid)
}

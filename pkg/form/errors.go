package form

import "errors"

var (
	ErrFormInvalid      = errors.New("form has invalid fields")
	ErrSubmitInProgress = errors.New("form is already being submitted")
)

package validator

import "errors"

// ErrInvalidPasswordRules is the panic value of NewPasswordChecker for
// inconsistent policies.
var ErrInvalidPasswordRules = errors.New("invalid password rules")

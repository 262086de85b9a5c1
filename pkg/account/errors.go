package account

import "errors"

// Domain errors returned by the account use cases. Transport and decoding
// failures are joined to ErrUnexpected, so errors.Is is the way to branch.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnexpected         = errors.New("something went wrong, check your connection and try again")
	ErrEmailInUse         = errors.New("this email is already in use")
)

// Message returns the user-facing text of the domain error wrapped in err,
// hiding transport details. Unknown errors read as ErrUnexpected.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCredentials):
		return ErrInvalidCredentials.Error()
	case errors.Is(err, ErrEmailInUse):
		return ErrEmailInUse.Error()
	default:
		return ErrUnexpected.Error()
	}
}

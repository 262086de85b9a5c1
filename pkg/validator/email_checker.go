package validator

import (
	"net/mail"
	"strings"
)

// EmailChecker accepts RFC 5322 addresses restricted to the shape expected in
// web sign-in forms: a bare address (no display name) with a dotted domain.
type EmailChecker struct{}

// NewEmailChecker returns a ready-to-use EmailChecker.
func NewEmailChecker() EmailChecker {
	return EmailChecker{}
}

// Validate implements validation.EmailValidator.
func (EmailChecker) Validate(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	// "John <john@example.com>" parses fine but is not something a user types
	// into an email input.
	if addr.Name != "" || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

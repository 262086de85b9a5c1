package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

var (
	letterRegex  = regexp.MustCompile(`[A-Za-z]`)
	numberRegex  = regexp.MustCompile(`[0-9]`)
	specialRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)
)

// PasswordRules is the password policy handed to PasswordChecker.
type PasswordRules struct {
	Min     int  // minimum length in characters
	Max     int  // maximum length in characters
	Symbols bool // require at least one letter, one digit and one special character
}

// DefaultSignUpPasswordRules is the policy used by the signup form.
func DefaultSignUpPasswordRules() PasswordRules {
	return PasswordRules{Min: 5, Max: 20, Symbols: true}
}

func (r PasswordRules) validate() error {
	if r.Min <= 0 {
		return fmt.Errorf("%w: min must be positive, got %d", ErrInvalidPasswordRules, r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%w: max %d is lower than min %d", ErrInvalidPasswordRules, r.Max, r.Min)
	}
	return nil
}

// PasswordChecker validates passwords against a fixed PasswordRules policy.
type PasswordChecker struct {
	rules PasswordRules
}

// NewPasswordChecker panics when rules are inconsistent: a broken policy is a
// configuration bug and should stop the program at start-up.
func NewPasswordChecker(rules PasswordRules) PasswordChecker {
	if err := rules.validate(); err != nil {
		panic(err)
	}
	return PasswordChecker{rules: rules}
}

// Rules returns the policy the checker enforces.
func (c PasswordChecker) Rules() PasswordRules {
	return c.rules
}

// Validate implements validation.PasswordValidator.
func (c PasswordChecker) Validate(value string) bool {
	n := utf8.RuneCountInString(value)
	if n < c.rules.Min || n > c.rules.Max {
		return false
	}
	if !c.rules.Symbols {
		return true
	}
	return letterRegex.MatchString(value) &&
		numberRegex.MatchString(value) &&
		specialRegex.MatchString(value)
}

// Package validator provides the concrete checkers plugged into the
// validation package: an email address checker and a password policy checker.
//
// Checkers answer a single yes/no question about a non-empty value. Deciding
// whether a value is required, and which message to show, is left to the
// field validators in package validation, so checkers can be swapped without
// touching the rule composition.
//
// # Usage
//
//	emails := validator.NewEmailChecker()
//	passwords := validator.NewPasswordChecker(validator.PasswordRules{
//	    Min:     5,
//	    Max:     20,
//	    Symbols: true,
//	})
//
//	rules := validation.Flatten(
//	    validation.Field("email").Required().Email(emails).Build(),
//	    validation.Field("password").Required().Password(passwords).Build(),
//	)
//
// # Error Handling
//
// NewPasswordChecker panics with an error wrapping ErrInvalidPasswordRules
// when Min is not positive or Max is lower than Min.
//
// Both checkers are stateless values and safe for concurrent use.
package validator

package validation

// Input is a snapshot of every form field at the moment of validation.
// Absent keys read as the empty string.
type Input map[string]string

// FieldValidation is a single rule scoped to one field.
type FieldValidation interface {
	// Field returns the name of the field the rule is attached to.
	Field() string
	// Validate returns nil when the rule passes for the given snapshot.
	Validate(input Input) error
}

// EmailValidator checks that a non-empty value is a well-formed email address.
type EmailValidator interface {
	Validate(value string) bool
}

// PasswordValidator checks that a non-empty value satisfies a password policy.
type PasswordValidator interface {
	Validate(value string) bool
}

// CheckerFunc adapts an ordinary function to EmailValidator and PasswordValidator.
type CheckerFunc func(value string) bool

func (f CheckerFunc) Validate(value string) bool { return f(value) }

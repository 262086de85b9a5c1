package validation

import (
	"strings"
	"unicode/utf8"
)

func mustField(field string) {
	if strings.TrimSpace(field) == "" {
		panic("validation: field name cannot be empty")
	}
}

type requiredField struct {
	field string
}

// Required fails with ErrFieldRequired when the field is absent, empty or
// whitespace-only.
func Required(field string) FieldValidation {
	mustField(field)
	return requiredField{field: field}
}

func (v requiredField) Field() string { return v.field }

func (v requiredField) Validate(input Input) error {
	if strings.TrimSpace(input[v.field]) == "" {
		return ErrFieldRequired
	}
	return nil
}

type minLength struct {
	field string
	min   int
}

// MinLength fails with InvalidFieldError when a non-empty value is shorter than
// min characters. Empty values pass; pair it with Required when needed.
func MinLength(field string, min int) FieldValidation {
	mustField(field)
	if min <= 0 {
		panic("validation: min length must be positive")
	}
	return minLength{field: field, min: min}
}

func (v minLength) Field() string { return v.field }

func (v minLength) Validate(input Input) error {
	value := input[v.field]
	if value == "" {
		return nil
	}
	if utf8.RuneCountInString(value) < v.min {
		return InvalidFieldError{Field: v.field}
	}
	return nil
}

type emailField struct {
	field   string
	checker EmailValidator
}

// Email delegates non-blank values to checker and fails with InvalidFieldError
// when it rejects them. Blank values pass.
func Email(field string, checker EmailValidator) FieldValidation {
	mustField(field)
	if checker == nil {
		panic("validation: email checker cannot be nil")
	}
	return emailField{field: field, checker: checker}
}

func (v emailField) Field() string { return v.field }

func (v emailField) Validate(input Input) error {
	value := input[v.field]
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if !v.checker.Validate(value) {
		return InvalidFieldError{Field: v.field}
	}
	return nil
}

type passwordField struct {
	field   string
	checker PasswordValidator
}

// Password delegates non-empty values to a password policy checker and fails
// with InvalidFieldError when the policy is not met. Empty values pass.
func Password(field string, checker PasswordValidator) FieldValidation {
	mustField(field)
	if checker == nil {
		panic("validation: password checker cannot be nil")
	}
	return passwordField{field: field, checker: checker}
}

func (v passwordField) Field() string { return v.field }

func (v passwordField) Validate(input Input) error {
	value := input[v.field]
	if value == "" {
		return nil
	}
	if !v.checker.Validate(value) {
		return InvalidFieldError{Field: v.field}
	}
	return nil
}

type sameAsField struct {
	field string
	other string
}

// SameAs fails with InvalidFieldError when the field differs from other.
// Comparison is exact: no trimming, no case folding.
func SameAs(field, other string) FieldValidation {
	mustField(field)
	mustField(other)
	return sameAsField{field: field, other: other}
}

func (v sameAsField) Field() string { return v.field }

func (v sameAsField) Validate(input Input) error {
	if input[v.field] != input[v.other] {
		return InvalidFieldError{Field: v.field}
	}
	return nil
}

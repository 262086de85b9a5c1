package authform

import (
	"github.com/dmitrymomot/authform/pkg/form"
	"github.com/dmitrymomot/authform/pkg/validation"
	"github.com/dmitrymomot/authform/pkg/validator"
)

// Form names accepted by the validate endpoint.
const (
	FormLogin  = "login"
	FormSignUp = "signup"
)

// LoginPasswordMinLength is the minimum password length on login.
const LoginPasswordMinLength = 5

// MakeLoginValidation builds the login rules: a required valid email and a
// required password of at least LoginPasswordMinLength runes.
func MakeLoginValidation() *validation.Composite {
	return validation.Build(validation.Flatten(
		validation.Field(form.FieldEmail).Required().Email(validator.NewEmailChecker()).Build(),
		validation.Field(form.FieldPassword).Required().Min(LoginPasswordMinLength).Build(),
	))
}

// MakeSignUpValidation builds the signup rules. The password follows
// validator.DefaultSignUpPasswordRules and the confirmation must match it.
func MakeSignUpValidation() *validation.Composite {
	return validation.Build(validation.Flatten(
		validation.Field(form.FieldName).Required().Build(),
		validation.Field(form.FieldEmail).Required().Email(validator.NewEmailChecker()).Build(),
		validation.Field(form.FieldPassword).Required().
			Password(validator.NewPasswordChecker(validator.DefaultSignUpPasswordRules())).Build(),
		validation.Field(form.FieldPasswordConfirmation).Required().SameAs(form.FieldPassword).Build(),
	))
}

// Validations returns the composite of every known form by name.
func Validations() map[string]*validation.Composite {
	return map[string]*validation.Composite{
		FormLogin:  MakeLoginValidation(),
		FormSignUp: MakeSignUpValidation(),
	}
}

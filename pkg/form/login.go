package form

import (
	"context"

	"github.com/dmitrymomot/authform/pkg/account"
)

const (
	FieldName                 = "name"
	FieldEmail                = "email"
	FieldPassword             = "password"
	FieldPasswordConfirmation = "passwordConfirmation"
)

// LoginPresenter drives the login form.
type LoginPresenter struct {
	*submitter
	auth account.Authentication
}

// NewLoginPresenter panics if auth or save is nil.
func NewLoginPresenter(v Validator, auth account.Authentication, save account.SaveAccessToken, opts ...Option) *LoginPresenter {
	if auth == nil {
		panic("form: authentication use case cannot be nil")
	}
	f := New(v, FieldEmail, FieldPassword)
	return &LoginPresenter{submitter: newSubmitter(f, save, opts), auth: auth}
}

// Form returns the email and password form.
func (p *LoginPresenter) Form() *Form { return p.form }

// Submit authenticates with the current email and password.
func (p *LoginPresenter) Submit(ctx context.Context) (Result, error) {
	return p.submit(ctx, func(ctx context.Context) (account.Account, error) {
		return p.auth.Auth(ctx, account.AuthenticationParams{
			Email:    p.form.Value(FieldEmail),
			Password: p.form.Value(FieldPassword),
		})
	})
}

package form

import (
	"context"

	"github.com/dmitrymomot/authform/pkg/account"
)

// SignUpPresenter drives the signup form.
type SignUpPresenter struct {
	*submitter
	add account.AddAccount
}

// NewSignUpPresenter panics if add or save is nil.
func NewSignUpPresenter(v Validator, add account.AddAccount, save account.SaveAccessToken, opts ...Option) *SignUpPresenter {
	if add == nil {
		panic("form: add account use case cannot be nil")
	}
	f := New(v, FieldName, FieldEmail, FieldPassword, FieldPasswordConfirmation)
	return &SignUpPresenter{submitter: newSubmitter(f, save, opts), add: add}
}

// Form returns the signup form.
func (p *SignUpPresenter) Form() *Form { return p.form }

// Submit registers an account from the current field values.
func (p *SignUpPresenter) Submit(ctx context.Context) (Result, error) {
	return p.submit(ctx, func(ctx context.Context) (account.Account, error) {
		return p.add.Add(ctx, account.AddAccountParams{
			Name:                 p.form.Value(FieldName),
			Email:                p.form.Value(FieldEmail),
			Password:             p.form.Value(FieldPassword),
			PasswordConfirmation: p.form.Value(FieldPasswordConfirmation),
		})
	})
}

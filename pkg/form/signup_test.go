package form_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authform/pkg/account"
	"github.com/dmitrymomot/authform/pkg/form"
	"github.com/dmitrymomot/authform/pkg/validation"
	"github.com/dmitrymomot/authform/pkg/validator"
)

func signUpValidation() *validation.Composite {
	return validation.Build(validation.Flatten(
		validation.Field(form.FieldName).Required().Build(),
		validation.Field(form.FieldEmail).Required().Email(validator.NewEmailChecker()).Build(),
		validation.Field(form.FieldPassword).Required().
			Password(validator.NewPasswordChecker(validator.DefaultSignUpPasswordRules())).Build(),
		validation.Field(form.FieldPasswordConfirmation).Required().SameAs(form.FieldPassword).Build(),
	))
}

func fillSignUp(p *form.SignUpPresenter) {
	p.Form().Set(form.FieldName, "Ann")
	p.Form().Set(form.FieldEmail, "ann@example.com")
	p.Form().Set(form.FieldPassword, "abc12!")
	p.Form().Set(form.FieldPasswordConfirmation, "abc12!")
}

func TestSignUpPresenter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	acc := account.Account{AccessToken: "tok", Name: "Ann"}
	params := account.AddAccountParams{
		Name:                 "Ann",
		Email:                "ann@example.com",
		Password:             "abc12!",
		PasswordConfirmation: "abc12!",
	}

	t.Run("starts with required errors", func(t *testing.T) {
		t.Parallel()

		p := form.NewSignUpPresenter(signUpValidation(), &MockAddAccount{}, &MockSaveAccessToken{})
		for _, field := range []string{form.FieldName, form.FieldEmail, form.FieldPassword, form.FieldPasswordConfirmation} {
			assert.Equal(t, "field is required", p.Form().Error(field), field)
		}
	})

	t.Run("shows field errors as values change", func(t *testing.T) {
		t.Parallel()

		p := form.NewSignUpPresenter(signUpValidation(), &MockAddAccount{}, &MockSaveAccessToken{})
		assert.Equal(t, "field email is invalid", p.Form().Set(form.FieldEmail, "nope"))
		assert.Equal(t, "field password is invalid", p.Form().Set(form.FieldPassword, "abcdef"))
		assert.Equal(t, "field passwordConfirmation is invalid", p.Form().Set(form.FieldPasswordConfirmation, "abc"))
	})

	t.Run("adds account and saves token", func(t *testing.T) {
		t.Parallel()

		add := &MockAddAccount{}
		save := &MockSaveAccessToken{}
		add.On("Add", mock.Anything, params).Return(acc, nil).Once()
		save.On("Save", mock.Anything, "tok").Return(nil).Once()

		p := form.NewSignUpPresenter(signUpValidation(), add, save)
		fillSignUp(p)
		require.True(t, p.Form().IsValid())

		res, err := p.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, "/", res.Redirect)
		add.AssertExpectations(t)
		save.AssertExpectations(t)
	})

	t.Run("rechecks confirmation when password changes afterwards", func(t *testing.T) {
		t.Parallel()

		add := &MockAddAccount{}
		p := form.NewSignUpPresenter(signUpValidation(), add, &MockSaveAccessToken{})
		fillSignUp(p)
		p.Form().Set(form.FieldPassword, "xyz98?")

		_, err := p.Submit(ctx)
		assert.ErrorIs(t, err, form.ErrFormInvalid)
		assert.Equal(t, "field passwordConfirmation is invalid", p.Form().Error(form.FieldPasswordConfirmation))
		add.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("presents email in use", func(t *testing.T) {
		t.Parallel()

		add := &MockAddAccount{}
		save := &MockSaveAccessToken{}
		add.On("Add", mock.Anything, params).Return(account.Account{}, account.ErrEmailInUse).Once()

		p := form.NewSignUpPresenter(signUpValidation(), add, save)
		fillSignUp(p)

		_, err := p.Submit(ctx)
		assert.ErrorIs(t, err, account.ErrEmailInUse)
		assert.Equal(t, account.ErrEmailInUse.Error(), p.Form().MainError())
		save.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

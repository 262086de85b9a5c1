package form_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authform/pkg/account"
	"github.com/dmitrymomot/authform/pkg/form"
)

func fillLogin(p *form.LoginPresenter) {
	p.Form().Set(form.FieldEmail, "user@example.com")
	p.Form().Set(form.FieldPassword, "secret")
}

func TestLoginPresenter_Submit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	acc := account.Account{AccessToken: "tok", Name: "Ann"}
	params := account.AuthenticationParams{Email: "user@example.com", Password: "secret"}

	t.Run("authenticates saves token and redirects", func(t *testing.T) {
		t.Parallel()

		auth := &MockAuthentication{}
		save := &MockSaveAccessToken{}
		auth.On("Auth", mock.Anything, params).Return(acc, nil).Once()
		savedFor := mock.MatchedBy(func(ctx context.Context) bool {
			return account.SubjectFromContext(ctx) == "user@example.com"
		})
		save.On("Save", savedFor, "tok").Return(nil).Once()

		p := form.NewLoginPresenter(&validationSpy{}, auth, save)
		fillLogin(p)

		res, err := p.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, form.Result{Account: acc, Redirect: "/"}, res)
		assert.Empty(t, p.Form().MainError())
		auth.AssertExpectations(t)
		save.AssertExpectations(t)
	})

	t.Run("does not call authentication when form is invalid", func(t *testing.T) {
		t.Parallel()

		auth := &MockAuthentication{}
		save := &MockSaveAccessToken{}
		p := form.NewLoginPresenter(&validationSpy{message: "field is required"}, auth, save)

		_, err := p.Submit(ctx)
		assert.ErrorIs(t, err, form.ErrFormInvalid)
		auth.AssertNotCalled(t, "Auth", mock.Anything, mock.Anything)
		save.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("calls authentication only once while loading", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		started := make(chan struct{})
		auth := &MockAuthentication{}
		save := &MockSaveAccessToken{}
		auth.On("Auth", mock.Anything, params).
			Run(func(mock.Arguments) {
				close(started)
				<-release
			}).
			Return(acc, nil).Once()
		save.On("Save", mock.Anything, "tok").Return(nil).Once()

		p := form.NewLoginPresenter(&validationSpy{}, auth, save)
		fillLogin(p)

		done := make(chan error, 1)
		go func() {
			_, err := p.Submit(ctx)
			done <- err
		}()

		<-started
		_, err := p.Submit(ctx)
		assert.ErrorIs(t, err, form.ErrSubmitInProgress)

		close(release)
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("first submit did not finish")
		}
		auth.AssertNumberOfCalls(t, "Auth", 1)
	})

	t.Run("presents authentication failure as main error", func(t *testing.T) {
		t.Parallel()

		auth := &MockAuthentication{}
		save := &MockSaveAccessToken{}
		auth.On("Auth", mock.Anything, params).Return(account.Account{}, account.ErrInvalidCredentials).Twice()

		p := form.NewLoginPresenter(&validationSpy{}, auth, save)
		fillLogin(p)

		_, err := p.Submit(ctx)
		assert.ErrorIs(t, err, account.ErrInvalidCredentials)
		assert.Equal(t, account.ErrInvalidCredentials.Error(), p.Form().MainError())

		_, err = p.Submit(ctx)
		assert.ErrorIs(t, err, account.ErrInvalidCredentials, "a failed submit releases the form")
		auth.AssertNumberOfCalls(t, "Auth", 2)
		save.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("presents save failure as main error", func(t *testing.T) {
		t.Parallel()

		auth := &MockAuthentication{}
		save := &MockSaveAccessToken{}
		auth.On("Auth", mock.Anything, params).Return(acc, nil).Once()
		save.On("Save", mock.Anything, "tok").Return(account.ErrUnexpected).Once()

		p := form.NewLoginPresenter(&validationSpy{}, auth, save)
		fillLogin(p)

		_, err := p.Submit(ctx)
		assert.ErrorIs(t, err, account.ErrUnexpected)
		assert.Equal(t, account.ErrUnexpected.Error(), p.Form().MainError())
	})

	t.Run("clears main error on retry and honours options", func(t *testing.T) {
		t.Parallel()

		auth := &MockAuthentication{}
		save := &MockSaveAccessToken{}
		auth.On("Auth", mock.Anything, params).Return(account.Account{}, account.ErrUnexpected).Once()
		auth.On("Auth", mock.Anything, params).Return(acc, nil).Once()
		save.On("Save", mock.Anything, "tok").Return(nil).Once()

		p := form.NewLoginPresenter(&validationSpy{}, auth, save,
			form.WithMessage(func(error) string { return "Algum erro ocorreu" }),
			form.WithRedirect("/dashboard"),
		)
		fillLogin(p)

		_, err := p.Submit(ctx)
		require.Error(t, err)
		assert.Equal(t, "Algum erro ocorreu", p.Form().MainError())

		res, err := p.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, "/dashboard", res.Redirect)
		assert.Empty(t, p.Form().MainError())
	})

	t.Run("panics without use cases", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { form.NewLoginPresenter(&validationSpy{}, nil, &MockSaveAccessToken{}) })
		assert.Panics(t, func() { form.NewLoginPresenter(&validationSpy{}, &MockAuthentication{}, nil) })
	})
}

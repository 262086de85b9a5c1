package form

import (
	"context"
	"sync/atomic"

	"github.com/dmitrymomot/authform/pkg/account"
)

// DefaultRedirect is where a successful submit sends the user.
const DefaultRedirect = "/"

// Result is the outcome of a successful submit.
type Result struct {
	Account  account.Account
	Redirect string
}

type options struct {
	message  func(error) string
	redirect string
}

// Option configures a presenter.
type Option func(*options)

// WithMessage renders use case errors as the form's main error.
// Defaults to account.Message.
func WithMessage(fn func(error) string) Option {
	return func(o *options) {
		if fn != nil {
			o.message = fn
		}
	}
}

// WithRedirect changes the redirect target of a successful submit.
func WithRedirect(path string) Option {
	return func(o *options) {
		if path != "" {
			o.redirect = path
		}
	}
}

// submitter runs the shared submit flow of the login and signup presenters.
type submitter struct {
	form    *Form
	save    account.SaveAccessToken
	opts    options
	loading atomic.Bool
}

func newSubmitter(f *Form, save account.SaveAccessToken, opts []Option) *submitter {
	if save == nil {
		panic("form: save access token use case cannot be nil")
	}
	o := options{message: account.Message, redirect: DefaultRedirect}
	for _, opt := range opts {
		opt(&o)
	}
	return &submitter{form: f, save: save, opts: o}
}

// submit gates on loading and validity, runs the use case, then saves the
// token keyed by the submitted email. Any failure becomes the form's main error.
func (s *submitter) submit(ctx context.Context, run func(ctx context.Context) (account.Account, error)) (Result, error) {
	if !s.loading.CompareAndSwap(false, true) {
		return Result{}, ErrSubmitInProgress
	}
	defer s.loading.Store(false)

	s.form.Revalidate()
	if !s.form.IsValid() {
		return Result{}, ErrFormInvalid
	}
	s.form.setMainError("")

	acc, err := run(ctx)
	if err != nil {
		s.form.setMainError(s.opts.message(err))
		return Result{}, err
	}
	if err := s.save.Save(account.WithSubject(ctx, s.form.Value(FieldEmail)), acc.AccessToken); err != nil {
		s.form.setMainError(s.opts.message(err))
		return Result{}, err
	}

	return Result{Account: acc, Redirect: s.opts.redirect}, nil
}

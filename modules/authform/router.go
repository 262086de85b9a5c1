package authform

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/authform/handler"
	"github.com/dmitrymomot/authform/pkg/account"
	"github.com/dmitrymomot/authform/pkg/binder"
	"github.com/dmitrymomot/authform/pkg/clientip"
	"github.com/dmitrymomot/authform/pkg/httpserver"
	"github.com/dmitrymomot/authform/pkg/i18n"
	"github.com/dmitrymomot/authform/pkg/logger"
	"github.com/dmitrymomot/authform/pkg/ratelimit"
	"github.com/dmitrymomot/authform/pkg/requestid"
)

// RouterOptions holds the collaborators of the BFF routes. The use cases and
// the translator are required; the rest have defaults.
type RouterOptions struct {
	Authentication  account.Authentication
	AddAccount      account.AddAccount
	SaveAccessToken account.SaveAccessToken
	Translator      *i18n.Translator
	Logger          *slog.Logger
	HealthChecks    []httpserver.Check
	Limiter         ratelimit.Limiter
	RedirectPath    string
	MaxBodySize     int64
}

// Router builds the BFF:
//
//	POST /validate/{form}  validate one field of the login or signup form
//	POST /login            authenticate and save the access token
//	POST /signup           create an account and save the access token
//	GET  /health           storage readiness
//
// Login and signup share a per-client, per-path token bucket when a Limiter
// is set.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Mount("/", authform.Router(authform.RouterOptions{
//		Authentication:  account.NewRemoteAuthentication(cfg.APIEndpoint("/login"), client),
//		AddAccount:      account.NewRemoteAddAccount(cfg.APIEndpoint("/signup"), client),
//		SaveAccessToken: account.NewLocalSaveAccessToken(storage),
//		Translator:      translator,
//	}))
func Router(opts RouterOptions) chi.Router {
	switch {
	case opts.Authentication == nil:
		panic("authform: authentication use case cannot be nil")
	case opts.AddAccount == nil:
		panic("authform: add account use case cannot be nil")
	case opts.SaveAccessToken == nil:
		panic("authform: save access token use case cannot be nil")
	case opts.Translator == nil:
		panic("authform: translator cannot be nil")
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With(logger.Component("authform"))

	h := &handlers{
		auth:        opts.Authentication,
		add:         opts.AddAccount,
		save:        opts.SaveAccessToken,
		t:           opts.Translator,
		log:         log,
		redirect:    opts.RedirectPath,
		validations: Validations(),
	}

	errorHandler := handler.NewErrorHandler(log, func(ctx context.Context, key string) string {
		return opts.Translator.Tc(ctx, key)
	})
	bind := binder.JSON(binder.WithMaxSize(opts.MaxBodySize))

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware,
		logger.Middleware(log),
		i18n.Middleware(opts.Translator),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errorHandler(handler.NewContext(w, r), handler.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		errorHandler(handler.NewContext(w, r), handler.ErrMethodNotAllowed)
	})

	r.Get("/health", httpserver.HealthCheckHandler(log, opts.HealthChecks...))

	r.Post("/validate/{form}", handler.Wrap(h.validate,
		handler.WithBinder[validateRequest](bind),
		handler.WithErrorHandler[validateRequest](errorHandler),
	))

	r.Group(func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(ratelimit.Middleware(opts.Limiter, ratelimit.Composite(ratelimit.ByIP, ratelimit.ByPath),
				ratelimit.WithLimitedHandler(func(w http.ResponseWriter, r *http.Request, _ ratelimit.Result) {
					errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
				}),
				ratelimit.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
					errorHandler(handler.NewContext(w, r), errors.Join(handler.ErrInternalServerError, err))
				}),
			))
		}
		r.Post("/login", handler.Wrap(h.login,
			handler.WithBinder[loginRequest](bind),
			handler.WithErrorHandler[loginRequest](errorHandler),
		))
		r.Post("/signup", handler.Wrap(h.signUp,
			handler.WithBinder[signUpRequest](bind),
			handler.WithErrorHandler[signUpRequest](errorHandler),
		))
	})

	return r
}

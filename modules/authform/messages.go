package authform

import (
	"context"
	"embed"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authform/handler"
	"github.com/dmitrymomot/authform/pkg/account"
	"github.com/dmitrymomot/authform/pkg/form"
	"github.com/dmitrymomot/authform/pkg/i18n"
	"github.com/dmitrymomot/authform/pkg/validation"
)

//go:embed translations/*.yaml
var translationsFS embed.FS

// NewTranslator loads the embedded en and pt-BR translations.
func NewTranslator(ctx context.Context, defaultLang string, log *slog.Logger) (*i18n.Translator, error) {
	data, err := i18n.LoadFS(ctx, translationsFS, "translations")
	if err != nil {
		return nil, err
	}
	if defaultLang == "" {
		defaultLang = i18n.DefaultLanguage
	}
	return i18n.NewTranslator(data, i18n.WithDefaultLanguage(defaultLang), i18n.WithLogger(log))
}

// Errors the BFF answers use case failures with.
var (
	ErrInvalidCredentials = handler.NewHTTPError(http.StatusUnauthorized, "invalid_credentials")
	ErrEmailInUse         = handler.NewHTTPError(http.StatusForbidden, "email_in_use")
	ErrUnexpected         = handler.NewHTTPError(http.StatusBadGateway, "unexpected")
	ErrSubmitInProgress   = handler.NewHTTPError(http.StatusConflict, "submit_in_progress")
	ErrUnknownForm        = handler.NewHTTPError(http.StatusNotFound, "unknown_form")
	ErrUnknownField       = handler.NewHTTPError(http.StatusBadRequest, "unknown_field")
)

// ValidationMessages renders validation errors in lang with the field's
// translated label.
func ValidationMessages(t *i18n.Translator, lang string) validation.MessageFunc {
	return func(field string, err error) string {
		label := t.Td(lang, "fields."+field, field)
		switch {
		case validation.IsRequired(err):
			return t.T(lang, "validation.required", "field", label)
		case validation.IsInvalid(err):
			return t.T(lang, "validation.invalid", "field", label)
		default:
			return err.Error()
		}
	}
}

// accountMessage renders a use case error in lang, for the presenter's
// main error.
func accountMessage(t *i18n.Translator, lang string) func(error) string {
	return func(err error) string {
		return t.T(lang, handler.ErrorKeyPrefix+httpError(err).Key)
	}
}

// httpError maps presenter and use case errors to HTTP errors. Anything
// unknown is treated as an upstream failure.
func httpError(err error) handler.HTTPError {
	switch {
	case errors.Is(err, account.ErrInvalidCredentials):
		return ErrInvalidCredentials
	case errors.Is(err, account.ErrEmailInUse):
		return ErrEmailInUse
	case errors.Is(err, form.ErrSubmitInProgress):
		return ErrSubmitInProgress
	default:
		return ErrUnexpected
	}
}

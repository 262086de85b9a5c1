package authform

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/authform/handler"
	"github.com/dmitrymomot/authform/pkg/account"
	"github.com/dmitrymomot/authform/pkg/form"
	"github.com/dmitrymomot/authform/pkg/i18n"
	"github.com/dmitrymomot/authform/pkg/logger"
	"github.com/dmitrymomot/authform/pkg/validation"
)

type validateRequest struct {
	Field string         `json:"field"`
	Input map[string]any `json:"input"`
}

// input flattens the JSON values to the strings the rules read.
// Strings pass through, null becomes "" and anything else is its JSON text.
func (r validateRequest) input() validation.Input {
	in := make(validation.Input, len(r.Input))
	for k, v := range r.Input {
		switch v := v.(type) {
		case string:
			in[k] = v
		case nil:
			in[k] = ""
		default:
			b, err := json.Marshal(v)
			if err != nil {
				continue
			}
			in[k] = string(b)
		}
	}
	return in
}

type validateResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

type submitResponse struct {
	Name        string `json:"name"`
	AccessToken string `json:"accessToken"`
	Redirect    string `json:"redirect"`
}

type handlers struct {
	auth        account.Authentication
	add         account.AddAccount
	save        account.SaveAccessToken
	t           *i18n.Translator
	log         *slog.Logger
	redirect    string
	validations map[string]*validation.Composite
}

// localized returns the named form's rules rendering messages in lang.
func (h *handlers) localized(name, lang string) (*validation.Composite, bool) {
	v, ok := h.validations[name]
	if !ok {
		return nil, false
	}
	return v.WithMessages(ValidationMessages(h.t, lang)), true
}

func (h *handlers) presenterOptions(lang string) []form.Option {
	return []form.Option{
		form.WithMessage(accountMessage(h.t, lang)),
		form.WithRedirect(h.redirect),
	}
}

func (h *handlers) validate(ctx handler.Context, req validateRequest) handler.Response {
	name := chi.URLParam(ctx.Request(), "form")
	v, ok := h.localized(name, i18n.GetLocale(ctx))
	if !ok {
		return handler.Error(ErrUnknownForm)
	}
	if !slices.Contains(v.Fields(), req.Field) {
		return handler.Error(ErrUnknownField)
	}

	return handler.JSON(validateResponse{
		Field:   req.Field,
		Message: v.Validate(req.Field, req.input()),
	})
}

func (h *handlers) login(ctx handler.Context, req loginRequest) handler.Response {
	lang := i18n.GetLocale(ctx)
	v, _ := h.localized(FormLogin, lang)

	p := form.NewLoginPresenter(v, h.auth, h.save, h.presenterOptions(lang)...)
	p.Form().SetAll(map[string]string{
		form.FieldEmail:    req.Email,
		form.FieldPassword: req.Password,
	})
	res, err := p.Submit(ctx)
	return h.result(ctx, FormLogin, p.Form(), res, err)
}

func (h *handlers) signUp(ctx handler.Context, req signUpRequest) handler.Response {
	lang := i18n.GetLocale(ctx)
	v, _ := h.localized(FormSignUp, lang)

	p := form.NewSignUpPresenter(v, h.add, h.save, h.presenterOptions(lang)...)
	p.Form().SetAll(map[string]string{
		form.FieldName:                 req.Name,
		form.FieldEmail:                req.Email,
		form.FieldPassword:             req.Password,
		form.FieldPasswordConfirmation: req.PasswordConfirmation,
	})
	res, err := p.Submit(ctx)
	return h.result(ctx, FormSignUp, p.Form(), res, err)
}

func (h *handlers) result(ctx context.Context, name string, f *form.Form, res form.Result, err error) handler.Response {
	switch {
	case err == nil:
		h.log.InfoContext(ctx, "form submitted", logger.Form(name))
		return handler.JSON(submitResponse{
			Name:        res.Account.Name,
			AccessToken: res.Account.AccessToken,
			Redirect:    res.Redirect,
		})
	case errors.Is(err, form.ErrFormInvalid):
		return handler.Error(handler.FromMessages(f.Errors()))
	default:
		h.log.WarnContext(ctx, "form submit failed",
			logger.Form(name),
			slog.String("main_error", f.MainError()),
			logger.Error(err),
		)
		return handler.Error(errors.Join(httpError(err), err))
	}
}

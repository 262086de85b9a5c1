package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authform/pkg/logger"
)

// Translate resolves a message key for the language of ctx.
type Translate func(ctx context.Context, key string) string

// ErrorKeyPrefix namespaces the translation keys of HTTPError values.
const ErrorKeyPrefix = "errors."

// NewErrorHandler renders errors as JSON:
// ValidationError is 422 with per-field details, HTTPError uses its own code
// and translated key, anything else is 500. Client errors log at warn level,
// server errors at error level. Nil arguments fall back to the discard
// logger and untranslated keys.
func NewErrorHandler(log *slog.Logger, translate Translate) ErrorHandler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if translate == nil {
		translate = func(_ context.Context, key string) string { return key }
	}

	return func(ctx Context, err error) {
		status, detail := classify(ctx, err, translate)

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.LogAttrs(ctx, level, "request failed",
			logger.Status(status),
			slog.String("code", detail.Code),
			logger.Error(err),
		)

		if rerr := JSONError(status, detail).Render(ctx.ResponseWriter(), ctx.Request()); rerr != nil {
			log.ErrorContext(ctx, "failed to render error response", logger.Error(rerr))
		}
	}
}

func classify(ctx context.Context, err error, translate Translate) (int, ErrorDetail) {
	var verr ValidationError
	if errors.As(err, &verr) {
		return http.StatusUnprocessableEntity, ErrorDetail{
			Code:    "validation_error",
			Message: translate(ctx, ErrorKeyPrefix+"validation_error"),
			Details: verr,
		}
	}

	var herr HTTPError
	if errors.As(err, &herr) {
		return herr.Code, ErrorDetail{
			Code:    herr.Key,
			Message: translate(ctx, ErrorKeyPrefix+herr.Key),
		}
	}

	return http.StatusInternalServerError, ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: translate(ctx, ErrorKeyPrefix+ErrInternalServerError.Key),
	}
}

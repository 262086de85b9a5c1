package i18n

import "context"

// DefaultLanguage is used when nothing else is negotiated.
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the header parsed per request.
const maxAcceptLanguageLength = 4096

type localeContextKey struct{}

// SetLocale stores the negotiated language in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the language stored in ctx, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return DefaultLanguage
	}
	return locale
}

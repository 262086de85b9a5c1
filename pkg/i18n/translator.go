package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Translator resolves dot-separated keys to localized strings.
// It is read-only after construction and safe for concurrent use.
type Translator struct {
	translations map[string]map[string]any
	defaultLang  string
	logger       *slog.Logger

	langs   []string
	matcher language.Matcher
}

// NewTranslator validates translations and prepares language negotiation.
// The default language must be among the loaded ones.
func NewTranslator(translations map[string]map[string]any, opts ...Option) (*Translator, error) {
	if len(translations) == 0 {
		return nil, ErrNoTranslations
	}

	t := &Translator{
		translations: translations,
		defaultLang:  DefaultLanguage,
		logger:       discardLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}

	langs := make([]string, 0, len(translations))
	for lang := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		if lang != t.defaultLang {
			langs = append(langs, lang)
		}
	}
	if _, ok := translations[t.defaultLang]; !ok {
		return nil, fmt.Errorf("default language %q has no translations: %w", t.defaultLang, ErrNoTranslations)
	}
	sort.Strings(langs)
	// The matcher falls back to its first tag.
	t.langs = append([]string{t.defaultLang}, langs...)

	tags := make([]language.Tag, 0, len(t.langs))
	for _, lang := range t.langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("language %q: %w", lang, err)
		}
		tags = append(tags, tag)
	}
	t.matcher = language.NewMatcher(tags)

	return t, nil
}

// SupportedLanguages lists loaded languages, default first.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.langs)
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match negotiates an Accept-Language header (or a bare language tag)
// against the loaded languages. It never returns an unsupported language.
func (t *Translator) Match(accept string) string {
	if strings.TrimSpace(accept) == "" {
		return t.defaultLang
	}
	if len(accept) > maxAcceptLanguageLength {
		accept = accept[:maxAcceptLanguageLength]
	}
	_, idx := language.MatchStrings(t.matcher, accept)
	if idx < 0 || idx >= len(t.langs) {
		return t.defaultLang
	}
	return t.langs[idx]
}

// Has reports whether key resolves to a string in lang.
func (t *Translator) Has(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from args
// given as name, value pairs. Missing keys fall back to the default
// language and then to the key itself.
//
//	// "validation.invalid": "Field %{field} is invalid"
//	t.T("en", "validation.invalid", "field", "email") // Field email is invalid
func (t *Translator) T(lang, key string, args ...string) string {
	if s, ok := t.lookup(lang, key); ok {
		return substitute(s, args)
	}
	if lang != t.defaultLang {
		if s, ok := t.lookup(t.defaultLang, key); ok {
			return substitute(s, args)
		}
	}
	t.logger.Warn("translation not found", "lang", lang, "key", key)
	return substitute(key, args)
}

// Td is T with an explicit fallback instead of the key.
func (t *Translator) Td(lang, key, fallback string, args ...string) string {
	if s, ok := t.lookup(lang, key); ok {
		return substitute(s, args)
	}
	return substitute(fallback, args)
}

// Tc translates using the language stored in ctx by Middleware.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	current, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		next, ok := val.(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} with the matching value from name, value
// pairs; unknown placeholders are kept.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

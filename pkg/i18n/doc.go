// Package i18n localizes user-facing messages.
//
// Translations are nested maps keyed by language and loaded from JSON or
// YAML files in any fs.FS, including embed.FS:
//
//	//go:embed translations
//	var files embed.FS
//
//	data, err := i18n.LoadFS(ctx, files, "translations")
//	if err != nil {
//		return err
//	}
//	tr, err := i18n.NewTranslator(data, i18n.WithDefaultLanguage("en"))
//
//	tr.T("pt-BR", "validation.invalid", "field", "email")
//
// Middleware negotiates the request language from the Accept-Language header
// with golang.org/x/text/language, so "pt-BR,pt;q=0.9" and "pt" both select
// pt-BR when it is loaded. Handlers read it back with GetLocale or translate
// directly with Translator.Tc.
package i18n

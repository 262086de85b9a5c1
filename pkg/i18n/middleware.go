package i18n

import "net/http"

// LangQueryParam overrides the Accept-Language header when present.
const LangQueryParam = "lang"

// Middleware negotiates the request language and stores it with SetLocale.
// The "lang" query parameter wins over the Accept-Language header.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accept := r.URL.Query().Get(LangQueryParam)
			if accept == "" {
				accept = r.Header.Get("Accept-Language")
			}
			lang := t.Match(accept)
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}

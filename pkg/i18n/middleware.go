package i18n

import "net/http"

// Middleware negotiates the request language against the loaded catalogs and
// stores it in the request context (see GetLocale). A nil extractor uses
// DefaultLangExtractor.
func Middleware(c *Catalogs, extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := c.Match(extr(r))
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}

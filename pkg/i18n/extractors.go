package i18n

import (
	"net/http"
	"strings"
)

// maxPreferenceLength bounds what is read from a cookie, query or header.
const maxPreferenceLength = 4096

// LangExtractor returns the raw language preference of a request: a tag such
// as "tr" or an Accept-Language value. Catalogs.Match turns it into a
// supported language.
type LangExtractor func(r *http.Request) string

type extractorConfig struct {
	cookieName     string
	queryParamName string
}

// ExtractorOption configures DefaultLangExtractor.
type ExtractorOption func(*extractorConfig)

// WithCookieName sets the cookie checked for a language. Empty disables it.
func WithCookieName(name string) ExtractorOption {
	return func(c *extractorConfig) { c.cookieName = name }
}

// WithQueryParamName sets the query parameter checked for a language. Empty
// disables it.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *extractorConfig) { c.queryParamName = name }
}

// DefaultLangExtractor checks, in order, the "lang" cookie, the "lang" query
// parameter and the Accept-Language header.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &extractorConfig{cookieName: "lang", queryParamName: "lang"}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(r *http.Request) string {
		if cfg.cookieName != "" {
			if cookie, err := r.Cookie(cfg.cookieName); err == nil {
				if lang := clean(cookie.Value); lang != "" {
					return lang
				}
			}
		}

		if cfg.queryParamName != "" {
			if lang := clean(r.URL.Query().Get(cfg.queryParamName)); lang != "" {
				return lang
			}
		}

		return clean(r.Header.Get("Accept-Language"))
	}
}

func clean(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxPreferenceLength {
		s = s[:maxPreferenceLength]
	}
	return s
}

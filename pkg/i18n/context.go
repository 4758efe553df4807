package i18n

import (
	"context"
	"log/slog"
)

type localeContextKey struct{}

// SetLocale stores the negotiated language in the context.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the language stored in the context, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if ctx == nil {
		return DefaultLanguage
	}
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return DefaultLanguage
	}
	return locale
}

// LoggerExtractor adds the request locale to log records as "lang".
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ctx == nil {
			return slog.Attr{}, false
		}
		if locale, ok := ctx.Value(localeContextKey{}).(string); ok && locale != "" {
			return slog.String("lang", locale), true
		}
		return slog.Attr{}, false
	}
}

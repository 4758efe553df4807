package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// NewErrorHandler renders errors as JSON and logs them: client errors at
// warn level, server errors at error level.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = logger.Noop()
	}
	log = log.With(logger.Component("http"))

	return func(ctx Context, err error) {
		resp := JSONError(err)
		status := resp.(*jsonResponse).status

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		r := ctx.Request()
		log.LogAttrs(r.Context(), level, "request failed",
			logger.Error(err),
			slog.Int("status", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response", logger.Error(renderErr))
		}
	}
}

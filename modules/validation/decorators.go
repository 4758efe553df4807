package validation

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/rulekit/handler"
	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// logged logs every call of a route at debug level with its duration.
func logged[R any](log *slog.Logger, route string) handler.Decorator[handler.Context, R] {
	return func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
		return func(ctx handler.Context, req R) handler.Response {
			start := time.Now()
			resp := next(ctx, req)
			log.DebugContext(ctx, "request handled",
				slog.String("route", route),
				logger.Duration(time.Since(start)),
			)
			return resp
		}
	}
}

// Package logger builds slog loggers with a consistent shape across the
// service.
//
// New returns a *slog.Logger configured through options: output format
// (JSON or text), level, static attributes and ContextExtractor callbacks
// that pull request-scoped values (request id, environment, language) out of
// the context on every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.AppEnv), cfg.AppName),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        i18n.LoggerExtractor(),
//	    ),
//	)
//
// Attribute helpers (Error, Field, Rule, Lang, RequestID, ...) keep key names
// uniform. Error and Errors return an empty Attr for nil errors, so
//
//	log.Info("catalogs loaded", logger.Error(err))
//
// needs no nil check.
package logger

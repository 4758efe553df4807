// Package environment carries the deployment stage (development, staging,
// production) through contexts, requests and log records.
//
//	env := environment.Parse(cfg.AppEnv)
//	r.Use(environment.Middleware(env))
//
//	if environment.IsProduction(r.Context()) {
//	    // hide internal error details
//	}
//
// LoggerExtractor plugs into logger.WithContextExtractors.
package environment

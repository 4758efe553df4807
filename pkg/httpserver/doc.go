// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled, SIGINT/SIGTERM arrives or the listener
// fails. Liveness and Readiness provide probe handlers.
package httpserver

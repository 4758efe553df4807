// Package requestid tags every request with an identifier that is echoed in
// the X-Request-ID response header and attached to log records.
//
// Middleware reuses a well-formed client supplied id or generates a UUID,
// stores it in the request context and sets the response header. WithContext
// and FromContext read and write the id; LoggerExtractor adds it to slog
// records as "request_id":
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid

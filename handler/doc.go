// Package handler provides typed HTTP handlers with JSON responses.
//
// A HandlerFunc receives a Context and a request value already bound by the
// configured binders, and returns a Response:
//
//	type CheckRequest struct {
//		Value string `json:"value"`
//		Rules string `json:"rules"`
//	}
//
//	func check(ctx handler.Context, req CheckRequest) handler.Response {
//		ok, err := validator.Check(req.Value, req.Rules)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(map[string]bool{"valid": ok})
//	}
//
//	r.Post("/check", handler.Wrap(check,
//		handler.WithBinder[handler.Context, CheckRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, CheckRequest](handler.NewErrorHandler(log)),
//	))
//
// Every JSON body uses the JSONResponse envelope: "data" on success, "error"
// on failure and optional "meta". ErrorToDetail decides the status code:
// validation failures become 422 with per-field details, malformed input 400
// or 415, HTTPError keeps its code, anything else is a 500 whose text is not
// exposed.
package handler

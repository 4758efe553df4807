package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/rulekit/pkg/binder"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// JSONResponse is the envelope of every JSON response.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details holds per-field messages
// for validation failures.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j *jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

type JSONOption func(*jsonResponse)

// WithJSONMeta merges meta into the response meta.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		if r.body.Meta == nil {
			r.body.Meta = make(map[string]any, len(meta))
		}
		for k, v := range meta {
			r.body.Meta[k] = v
		}
	}
}

// JSON responds 200 with v as data. A JSONResponse is sent as is and an
// error is rendered like JSONError.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case error:
		r.status, r.body.Error = ErrorToDetail(val)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError responds with the status and detail ErrorToDetail derives from err.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{}
	r.status, r.body.Error = ErrorToDetail(err)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ErrorToDetail maps an error to a status code and error detail:
//
//   - validation failures: 422 validation_error with per-field details
//   - unknown rules: 400 unknown_rule
//   - malformed rules or input: 400 invalid_rules / bad_request
//   - unsupported or missing content type: 415
//   - oversized bodies: 413
//   - HTTPError: its code and key
//   - anything else: 500 internal_server_error, without the error text
func ErrorToDetail(err error) (int, *ErrorDetail) {
	if ve := validator.ExtractValidationErrors(err); ve != nil || errors.Is(err, validator.ErrValidationFailed) {
		detail := &ErrorDetail{Code: "validation_error", Message: validator.ErrValidationFailed.Error()}
		if len(ve) > 0 {
			detail.Details = ve.Details()
		}
		return http.StatusUnprocessableEntity, detail
	}

	var unknown *validator.UnknownRuleError
	switch {
	case errors.As(err, &unknown):
		return http.StatusBadRequest, &ErrorDetail{Code: "unknown_rule", Message: unknown.Error()}
	case errors.Is(err, validator.ErrUnknownRule):
		return http.StatusBadRequest, &ErrorDetail{Code: "unknown_rule", Message: err.Error()}
	case errors.Is(err, validator.ErrInvalidRules):
		return http.StatusBadRequest, &ErrorDetail{Code: "invalid_rules", Message: err.Error()}
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return http.StatusUnsupportedMediaType, &ErrorDetail{Code: ErrUnsupportedMediaType.Key, Message: err.Error()}
	case errors.Is(err, binder.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, &ErrorDetail{Code: ErrRequestEntityTooLarge.Key, Message: err.Error()}
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrUnsupportedValue):
		return http.StatusBadRequest, &ErrorDetail{Code: ErrBadRequest.Key, Message: err.Error()}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	return http.StatusInternalServerError, &ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

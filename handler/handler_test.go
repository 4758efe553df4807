package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/handler"
	"github.com/dmitrymomot/rulekit/pkg/binder"
	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/requestid"
)

type checkRequest struct {
	Value string `json:"value"`
	Rules string `json:"rules"`
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) handler.JSONResponse {
	t.Helper()
	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(ctx handler.Context, req checkRequest) handler.Response {
			return handler.JSON(map[string]string{"value": req.Value, "rules": req.Rules})
		}, handler.WithBinder[handler.Context, checkRequest](binder.JSON()))

		r := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(`{"value":"abc","rules":"alpha"}`))
		r.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h(rec, r)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]any{"value": "abc", "rules": "alpha"}, decodeBody(t, rec).Data)
	})

	t.Run("binder error", func(t *testing.T) {
		t.Parallel()
		called := false
		h := handler.Wrap(func(ctx handler.Context, req checkRequest) handler.Response {
			called = true
			return handler.EmptyWithStatus(http.StatusNoContent)
		}, handler.WithBinders[handler.Context, checkRequest](binder.JSON()))

		r := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(`{`))
		r.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h(rec, r)

		assert.False(t, called)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad_request", decodeBody(t, rec).Error.Code)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response { return nil },
			handler.WithErrorHandler[handler.Context, struct{}](func(ctx handler.Context, err error) { got = err }))

		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, got, handler.ErrNilResponse)
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		t.Parallel()
		var order []string
		mark := func(name string) handler.Decorator[handler.Context, struct{}] {
			return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
				return func(ctx handler.Context, req struct{}) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}

		h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
			order = append(order, "handler")
			return handler.EmptyWithStatus(http.StatusNoContent)
		}, handler.WithDecorators(mark("outer"), mark("inner")))

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, []string{"outer", "inner", "handler"}, order)
	})

	t.Run("context exposes locale and request id", func(t *testing.T) {
		t.Parallel()
		var locale, id string
		h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
			locale, id = ctx.Locale(), ctx.RequestID()
			return handler.EmptyWithStatus(http.StatusAccepted)
		})

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := i18n.SetLocale(r.Context(), "tr")
		ctx = requestid.WithContext(ctx, "req-1")
		rec := httptest.NewRecorder()
		h(rec, r.WithContext(ctx))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "tr", locale)
		assert.Equal(t, "req-1", id)
	})

	t.Run("render error goes to error handler", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
			return failingResponse{}
		})
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

type failingResponse struct{}

func (failingResponse) Render(http.ResponseWriter, *http.Request) error {
	return errors.New("render failed")
}

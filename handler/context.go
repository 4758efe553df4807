package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/requestid"
)

// Context gives handlers the request, the response writer and the request
// context in one value.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter

	// Locale is the language negotiated by i18n.Middleware.
	Locale() string
	// RequestID is the id assigned by requestid.Middleware.
	RequestID() string
}

func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{w: w, r: r}
}

type httpContext struct {
	w http.ResponseWriter
	r *http.Request
}

func (c *httpContext) Request() *http.Request              { return c.r }
func (c *httpContext) ResponseWriter() http.ResponseWriter { return c.w }
func (c *httpContext) Locale() string                      { return i18n.GetLocale(c.r.Context()) }
func (c *httpContext) RequestID() string                   { return requestid.FromContext(c.r.Context()) }

func (c *httpContext) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }
func (c *httpContext) Done() <-chan struct{}       { return c.r.Context().Done() }
func (c *httpContext) Err() error                  { return c.r.Context().Err() }
func (c *httpContext) Value(key any) any           { return c.r.Context().Value(key) }

package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	c := testCatalogs(t)

	serve := func(r *http.Request) string {
		var got string
		h := i18n.Middleware(c, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = i18n.GetLocale(r.Context())
		}))
		h.ServeHTTP(httptest.NewRecorder(), r)
		return got
	}

	t.Run("accept language", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "tr-TR,tr;q=0.9")
		assert.Equal(t, "tr", serve(r))
	})

	t.Run("query beats header", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/?lang=de", nil)
		r.Header.Set("Accept-Language", "tr")
		assert.Equal(t, "de", serve(r))
	})

	t.Run("cookie beats query", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/?lang=de", nil)
		r.AddCookie(&http.Cookie{Name: "lang", Value: "tr"})
		assert.Equal(t, "tr", serve(r))
	})

	t.Run("unsupported falls back", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/?lang=ja", nil)
		assert.Equal(t, "en", serve(r))
	})
}

func TestDefaultLangExtractor(t *testing.T) {
	t.Parallel()

	t.Run("custom names", func(t *testing.T) {
		t.Parallel()
		extr := i18n.DefaultLangExtractor(i18n.WithQueryParamName("locale"), i18n.WithCookieName(""))
		r := httptest.NewRequest(http.MethodGet, "/?locale=tr&lang=de", nil)
		r.AddCookie(&http.Cookie{Name: "lang", Value: "en"})
		assert.Equal(t, "tr", extr(r))
	})

	t.Run("trims values", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "  en-US ")
		assert.Equal(t, "en-US", i18n.DefaultLangExtractor()(r))
	})

	t.Run("nothing set", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, i18n.DefaultLangExtractor()(r))
	})
}

func TestLocaleContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(context.Background()))

	ctx := i18n.SetLocale(context.Background(), "tr")
	assert.Equal(t, "tr", i18n.GetLocale(ctx))

	attr, ok := i18n.LoggerExtractor()(ctx)
	assert.True(t, ok)
	assert.Equal(t, "lang", attr.Key)
	assert.Equal(t, "tr", attr.Value.String())

	_, ok = i18n.LoggerExtractor()(context.Background())
	assert.False(t, ok)
}

package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no option overrides it.
const DefaultLanguage = "en"

// Catalogs holds flat message maps per language and negotiates which one a
// client gets. It is read-only after construction and safe for concurrent use.
type Catalogs struct {
	messages    map[string]map[string]string
	langs       []string // default language first, matcher indexes into it
	defaultLang string
	prefix      string
	matcher     language.Matcher
	logger      *slog.Logger
}

// Option configures Catalogs.
type Option func(*Catalogs)

// WithDefaultLanguage sets the fallback language. Its messages fill the gaps
// of every other language.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalogs) {
		if lang != "" {
			c.defaultLang = strings.ToLower(lang)
		}
	}
}

// WithPrefix selects a subtree of every catalog. With prefix "validation"
// the key "validation.required" is exposed as "required".
func WithPrefix(prefix string) Option {
	return func(c *Catalogs) {
		c.prefix = strings.Trim(prefix, ".")
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalogs) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCatalogs loads catalogs through the adapter. The default language must
// be present.
func NewCatalogs(ctx context.Context, adapter Adapter, opts ...Option) (*Catalogs, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	c := &Catalogs{
		messages:    make(map[string]map[string]string),
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	raw, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	for lang, tree := range raw {
		code := strings.ToLower(strings.TrimSpace(lang))
		if _, err := language.Parse(code); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidLanguage, lang, err)
		}

		flat := make(map[string]string)
		flatten("", tree, flat)
		if c.prefix != "" {
			flat = subtree(flat, c.prefix)
		}
		c.messages[code] = flat
	}

	if _, ok := c.messages[c.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrDefaultLanguageMissing, c.defaultLang)
	}

	c.langs = append(c.langs, c.defaultLang)
	for _, code := range slices.Sorted(maps.Keys(c.messages)) {
		if code != c.defaultLang {
			c.langs = append(c.langs, code)
		}
	}
	tags := make([]language.Tag, 0, len(c.langs))
	for _, code := range c.langs {
		tags = append(tags, language.MustParse(code))
	}
	c.matcher = language.NewMatcher(tags)

	c.logger.InfoContext(ctx, "message catalogs loaded", slog.Any("languages", c.langs))
	return c, nil
}

// Languages returns the loaded language codes, default first.
func (c *Catalogs) Languages() []string {
	return slices.Clone(c.langs)
}

// DefaultLanguage returns the fallback language code.
func (c *Catalogs) DefaultLanguage() string {
	return c.defaultLang
}

// Has reports whether a language was loaded.
func (c *Catalogs) Has(lang string) bool {
	_, ok := c.messages[strings.ToLower(lang)]
	return ok
}

// Match picks the best loaded language for a preference, which may be a
// single tag ("tr", "en-GB") or a full Accept-Language value. Anything that
// does not match falls back to the default language.
func (c *Catalogs) Match(preference string) string {
	preference = strings.TrimSpace(preference)
	if preference == "" {
		return c.defaultLang
	}
	if c.Has(preference) {
		return strings.ToLower(preference)
	}

	tags, _, err := language.ParseAcceptLanguage(preference)
	if err != nil || len(tags) == 0 {
		return c.defaultLang
	}

	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(c.langs) {
		return c.defaultLang
	}
	return c.langs[idx]
}

// Messages returns a copy of the messages for the best match of lang, with
// missing keys filled from the default language.
func (c *Catalogs) Messages(lang string) map[string]string {
	code := c.Match(lang)
	out := maps.Clone(c.messages[c.defaultLang])
	if code != c.defaultLang {
		maps.Copy(out, c.messages[code])
	}
	return out
}

// Message returns one message, falling back to the default language.
func (c *Catalogs) Message(lang, key string) (string, bool) {
	if msg, ok := c.messages[c.Match(lang)][key]; ok {
		return msg, true
	}
	msg, ok := c.messages[c.defaultLang][key]
	return msg, ok
}

// flatten turns nested maps into dot separated keys. Non-string leaves are
// formatted with fmt.
func flatten(prefix string, tree map[string]any, out map[string]string) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case map[any]any:
			converted := make(map[string]any, len(val))
			for mk, mv := range val {
				converted[fmt.Sprint(mk)] = mv
			}
			flatten(key, converted, out)
		case string:
			out[key] = val
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

func subtree(flat map[string]string, prefix string) map[string]string {
	out := make(map[string]string)
	p := prefix + "."
	for k, v := range flat {
		if rest, ok := strings.CutPrefix(k, p); ok {
			out[rest] = v
		}
	}
	return out
}

package validator

import "log/slog"

// Option configures a Validator.
type Option func(*Validator)

// WithCatalog replaces the message catalog. A nil catalog is ignored.
func WithCatalog(c Catalog) Option {
	return func(v *Validator) {
		if c != nil {
			v.catalog = c
		}
	}
}

// WithMessages overrides individual templates of the current catalog, e.g. a
// localized set loaded from YAML.
func WithMessages(messages map[string]string) Option {
	return func(v *Validator) {
		v.catalog = v.catalog.Merge(messages)
	}
}

// WithFieldMessages sets templates for single field and rule pairs, keyed
// "field.rule" (e.g. "email.required"). They take precedence over the catalog.
func WithFieldMessages(messages map[string]string) Option {
	return func(v *Validator) {
		for key, tmpl := range messages {
			if tmpl == "" {
				continue
			}
			if v.overrides == nil {
				v.overrides = make(map[string]string, len(messages))
			}
			v.overrides[key] = tmpl
		}
	}
}

// WithRegistry sets the rule registry. A nil registry is ignored.
func WithRegistry(r *Registry) Option {
	return func(v *Validator) {
		if r != nil {
			v.registry = r
			v.ownRegistry = false
		}
	}
}

// WithRule registers a custom rule and its message template on this validator
// only. The registry is copied first so shared registries stay untouched.
func WithRule(name string, p Predicate, template string) Option {
	return func(v *Validator) {
		if name == "" || name == RuleName || p == nil {
			return
		}
		if !v.ownRegistry {
			v.registry = v.registry.Clone()
			v.ownRegistry = true
		}
		v.registry.Register(name, p)
		if template != "" {
			v.catalog = v.catalog.Merge(map[string]string{name: template})
		}
	}
}

// WithLogger sets the logger used for debug output. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithSeparator sets the default separator of ErrorsString.
func WithSeparator(sep string) Option {
	return func(v *Validator) {
		v.separator = sep
	}
}

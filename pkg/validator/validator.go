package validator

import (
	"context"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// Validator is a validation session. It owns the rules, input, field labels
// and errors of a pass, so every request should use its own instance (or call
// Reset between passes). A Validator is not safe for concurrent use.
type Validator struct {
	registry    *Registry
	ownRegistry bool
	catalog     Catalog
	overrides   map[string]string
	logger      *slog.Logger
	separator   string

	fields []string
	rules  map[string]RuleSet
	labels map[string]string
	data   Data

	bag      *Bag
	injected []Entry
}

// New returns an empty validator using the default registry and English catalog.
func New(opts ...Option) *Validator {
	v := &Validator{
		registry:  DefaultRegistry(),
		catalog:   DefaultCatalog(),
		logger:    logger.Noop(),
		separator: DefaultSeparator,
		rules:     make(map[string]RuleSet),
		labels:    make(map[string]string),
		data:      make(Data),
		bag:       NewBag(),
	}
	v.ownRegistry = true
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs a single pass on a fresh validator.
func Validate(rules Rules, data Data, opts ...Option) (*Validator, bool) {
	v := New(opts...)
	return v, v.Validate(rules, data)
}

// SetRules parses and adds rules. Calls accumulate; setting a field again
// replaces its rules but keeps its position in the pass.
func (v *Validator) SetRules(rules Rules) *Validator {
	for _, fr := range rules {
		rs := ParseRules(fr.Rules)
		if _, exists := v.rules[fr.Field]; !exists {
			v.fields = append(v.fields, fr.Field)
		}
		v.rules[fr.Field] = rs

		delete(v.labels, fr.Field)
		if label, ok := rs.Param(RuleName); ok && label != "" {
			v.labels[fr.Field] = label
		}
	}
	return v
}

// SetData stores a copy of the input for the next pass.
func (v *Validator) SetData(data Data) *Validator {
	v.data = maps.Clone(data)
	if v.data == nil {
		v.data = make(Data)
	}
	return v
}

// Validate is SetRules, SetData and IsValid in one call.
func (v *Validator) Validate(rules Rules, data Data) bool {
	return v.SetRules(rules).SetData(data).IsValid()
}

// IsValid runs every rule of every field and reports whether no error was
// recorded. Fields run in declaration order and so do their rules. When
// several rules of a field fail, the last one's message is kept.
//
// Unknown rule names are skipped without error. Messages added with AddError
// are kept across passes.
func (v *Validator) IsValid() bool {
	v.bag = NewBag()
	for _, e := range v.injected {
		if e.Keyed {
			v.bag.Put(e.Field, "", e.Message)
		} else {
			v.bag.Append(e.Message)
		}
	}

	for _, field := range v.fields {
		v.validateField(field)
	}

	v.logger.LogAttrs(context.Background(), slog.LevelDebug, "validation pass finished",
		logger.Count("fields", len(v.fields)),
		logger.Count("errors", v.bag.Len()),
	)

	return v.bag.Empty()
}

func (v *Validator) validateField(field string) {
	rs := v.rules[field]
	value, present := v.data[field]
	f := Field{Key: field, Value: value, Present: present, Data: v.data}

	for _, rule := range rs.Names {
		if rule == RuleName {
			continue
		}

		check, ok := v.registry.Lookup(rule)
		if !ok {
			v.logger.LogAttrs(context.Background(), slog.LevelDebug, "skipping unknown rule",
				logger.Field(field),
				logger.Rule(rule),
			)
			continue
		}

		param, _ := rs.Param(rule)
		if !check(f, param) {
			v.bag.PutEntry(Entry{
				Field:   field,
				Rule:    rule,
				Message: v.Message(field, rule, param),
				Label:   v.Label(field),
				Param:   v.paramLabel(param),
			})
		}
	}
}

// Reset clears rules, input, labels and errors so the validator can be reused.
func (v *Validator) Reset() {
	v.fields = nil
	v.rules = make(map[string]RuleSet)
	v.labels = make(map[string]string)
	v.data = make(Data)
	v.bag = NewBag()
	v.injected = nil
}

// Label returns the human-readable name of a field: the parameter of its
// "name" rule, or the key itself.
func (v *Validator) Label(field string) string {
	if label, ok := v.labels[field]; ok {
		return label
	}
	return field
}

// Message renders the message for a failed rule. A template set for the
// field and rule with SetMessage or WithFieldMessages takes precedence over
// the catalog. When the parameter is the key of a known field (as in
// "same:password"), that field's label is used in place of the raw parameter.
func (v *Validator) Message(field, rule, param string) string {
	tmpl, ok := v.overrides[messageKey(field, rule)]
	if !ok {
		tmpl = v.catalog.Template(rule)
	}
	return render(tmpl, v.Label(field), v.paramLabel(param))
}

// SetMessage sets the template used when rule fails on field. An empty
// template removes the override. Overrides are kept across Reset.
func (v *Validator) SetMessage(field, rule, template string) *Validator {
	key := messageKey(field, rule)
	if template == "" {
		delete(v.overrides, key)
		return v
	}
	if v.overrides == nil {
		v.overrides = make(map[string]string)
	}
	v.overrides[key] = template
	return v
}

func messageKey(field, rule string) string {
	return field + "." + rule
}

func (v *Validator) paramLabel(param string) string {
	if v.isKnownField(param) {
		return v.Label(param)
	}
	return param
}

func (v *Validator) isKnownField(key string) bool {
	if key == "" {
		return false
	}
	if _, ok := v.rules[key]; ok {
		return true
	}
	_, ok := v.data[key]
	return ok
}

// Rules returns the parsed rules of a field.
func (v *Validator) Rules(field string) (RuleSet, bool) {
	rs, ok := v.rules[field]
	return rs, ok
}

// Fields returns the fields with rules in declaration order.
func (v *Validator) Fields() []string {
	return append([]string(nil), v.fields...)
}

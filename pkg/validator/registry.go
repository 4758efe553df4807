package validator

import (
	"maps"
	"slices"
	"sync"
)

// Data is the flat input of a validation pass. A missing key and an empty
// value are different things: only the former fails "required".
type Data map[string]string

// Field is the view of one input field handed to a predicate.
type Field struct {
	Key     string
	Value   string
	Present bool
	// Data is the whole input, used by rules that compare fields.
	Data Data
}

// Other returns another field's value from the same input.
func (f Field) Other(key string) (string, bool) {
	v, ok := f.Data[key]
	return v, ok
}

// Predicate reports whether a field satisfies a rule. The parameter is the
// text after ":" in the rule string, or "" when none was given.
type Predicate func(f Field, param string) bool

// Registry maps rule names to predicates. It is safe for concurrent use, so a
// single registry can be shared by many validators.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Predicate
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Predicate)}
}

// DefaultRegistry returns a new registry holding every built-in rule.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for name, p := range builtinRules() {
		r.Register(name, p)
	}
	return r
}

// Register adds or replaces a rule. Empty names and nil predicates are ignored.
func (r *Registry) Register(name string, p Predicate) {
	if name == "" || p == nil {
		return
	}
	r.mu.Lock()
	r.rules[name] = p
	r.mu.Unlock()
}

// Lookup resolves a rule name.
func (r *Registry) Lookup(name string) (Predicate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.rules[name]
	return p, ok
}

// Names returns the registered rule names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.rules))
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return &Registry{rules: maps.Clone(r.rules)}
}

// builtinRules lists the predicates every default registry starts with.
// "name" is deliberately absent: it labels a field and is handled by the
// validator itself.
func builtinRules() map[string]Predicate {
	return map[string]Predicate{
		RuleRequired:     required,
		RuleNotNull:      notNull,
		RuleEmpty:        notNull,
		RuleMin:          minLength,
		RuleMax:          maxLength,
		RuleSame:         same,
		RuleTime:         validTime,
		RuleEmail:        validEmail,
		RuleURL:          validURL,
		RuleIP:           validIP,
		RuleFloat:        validFloat,
		RuleNumeric:      numeric,
		RuleAlpha:        alpha,
		RuleAlnum:        alnum,
		RuleAlphanumeric: alnum,
		RuleUpper:        upper,
		RuleLower:        lower,
	}
}

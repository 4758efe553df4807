package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// FieldRule binds a rule string to a field.
type FieldRule struct {
	Field string `json:"field"`
	Rules string `json:"rules"`
}

// Rules is an ordered list of field rules. Fields are validated in this order.
//
// In JSON it is accepted either as an object, whose key order is preserved:
//
//	{"name": "required|min:3", "email": "required|email"}
//
// or as an array of {"field": ..., "rules": ...} objects.
type Rules []FieldRule

// RulesFromMap builds Rules from a map. Map iteration order is random, so
// fields are sorted by key to keep passes deterministic.
func RulesFromMap(m map[string]string) Rules {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rules := make(Rules, 0, len(keys))
	for _, k := range keys {
		rules = append(rules, FieldRule{Field: k, Rules: m[k]})
	}
	return rules
}

// Map returns the rules keyed by field. Later duplicates win.
func (r Rules) Map() map[string]string {
	m := make(map[string]string, len(r))
	for _, fr := range r {
		m[fr.Field] = fr.Rules
	}
	return m
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Rules) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = nil
		return nil
	}

	if b[0] == '[' {
		var list []FieldRule
		if err := json.Unmarshal(b, &list); err != nil {
			return errors.Join(ErrInvalidRules, err)
		}
		*r = list
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return errors.Join(ErrInvalidRules, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: expected object or array", ErrInvalidRules)
	}

	var out Rules
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return errors.Join(ErrInvalidRules, err)
		}
		field, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: unexpected key %v", ErrInvalidRules, tok)
		}

		var rules string
		if err := dec.Decode(&rules); err != nil {
			return fmt.Errorf("%w: field %q: %v", ErrInvalidRules, field, err)
		}
		out = append(out, FieldRule{Field: field, Rules: rules})
	}

	if _, err := dec.Token(); err != nil {
		return errors.Join(ErrInvalidRules, err)
	}

	*r = out
	return nil
}

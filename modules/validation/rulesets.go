package validation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// RuleSets maps a name to an ordered rule list.
type RuleSets map[string]validator.Rules

// ParseRuleSets reads rule sets from YAML. Each top-level key names a set
// whose fields keep their document order:
//
//	signup:
//	  username: name:Username|required|alnum|min:3|max:20
//	  email: name:E-mail|required|email
//	  password: required|min:8
//	  password_confirm: name:Password confirmation|same:password
func ParseRuleSets(content []byte) (RuleSets, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrInvalidRuleSets, err)
	}
	if len(doc.Content) == 0 {
		return RuleSets{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping of rule sets", ErrInvalidRuleSets, root.Line)
	}

	sets := make(RuleSets, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name, body := root.Content[i], root.Content[i+1]
		if body.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: set %q (line %d): expected field: rules pairs", ErrInvalidRuleSets, name.Value, body.Line)
		}

		rules := make(validator.Rules, 0, len(body.Content)/2)
		for j := 0; j+1 < len(body.Content); j += 2 {
			field, value := body.Content[j], body.Content[j+1]
			if value.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: set %q field %q (line %d): rules must be a string",
					ErrInvalidRuleSets, name.Value, field.Value, value.Line)
			}
			rules = append(rules, validator.FieldRule{Field: field.Value, Rules: value.Value})
		}
		sets[name.Value] = rules
	}

	return sets, nil
}

// LoadRuleSets reads a YAML rule set file from fsys.
func LoadRuleSets(fsys fs.FS, name string) (RuleSets, error) {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Join(ErrInvalidRuleSets, err)
	}
	return ParseRuleSets(content)
}

// LoadRuleSetsFile reads a YAML rule set file from disk.
func LoadRuleSetsFile(path string) (RuleSets, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidRuleSets, err)
	}
	return ParseRuleSets(content)
}

// Get returns a copy of the named rule set.
func (s RuleSets) Get(name string) (validator.Rules, error) {
	rules, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRuleSetNotFound, name)
	}
	return append(validator.Rules(nil), rules...), nil
}

// Unknown lists "set.field: rule" for every rule name reg cannot resolve.
// Batch validation skips such rules, so this is the place to catch typos.
func (s RuleSets) Unknown(reg *validator.Registry) []string {
	var out []string
	for _, name := range sortedKeys(s) {
		for _, fr := range s[name] {
			for _, rule := range validator.ParseRules(fr.Rules).Names {
				if rule == validator.RuleName {
					continue
				}
				if _, ok := reg.Lookup(rule); !ok {
					out = append(out, fmt.Sprintf("%s.%s: %q", name, fr.Field, rule))
				}
			}
		}
	}
	return out
}

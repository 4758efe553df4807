package validator

import "strings"

const (
	ruleSeparator  = "|"
	paramSeparator = ":"
)

// RuleSet is the parsed form of a single rule string.
type RuleSet struct {
	// Names holds rule names in declaration order. Duplicates are kept and
	// each one is evaluated independently.
	Names []string
	// Params maps a rule name to its parameter. Only rules written as
	// "name:param" have an entry; a later parameter for the same name wins.
	Params map[string]string
}

// Param returns the parameter declared for the rule.
func (rs RuleSet) Param(rule string) (string, bool) {
	p, ok := rs.Params[rule]
	return p, ok
}

// Has reports whether the rule set contains the rule.
func (rs RuleSet) Has(rule string) bool {
	for _, name := range rs.Names {
		if name == rule {
			return true
		}
	}
	return false
}

// ParseRules splits a rule string such as "required|min:3|same:password".
//
// Tokens are separated by "|". A token is either a bare rule name or
// "name:param", split on the first ":" only, so the parameter may itself contain
// ":" but never "|". There is no escaping. Empty tokens produce a rule named ""
// which no registry resolves.
func ParseRules(s string) RuleSet {
	tokens := strings.Split(s, ruleSeparator)
	rs := RuleSet{
		Names:  make([]string, 0, len(tokens)),
		Params: make(map[string]string),
	}

	for _, token := range tokens {
		name, param, hasParam := strings.Cut(token, paramSeparator)
		rs.Names = append(rs.Names, name)
		if hasParam {
			rs.Params[name] = param
		}
	}

	return rs
}

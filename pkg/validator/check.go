package validator

// Check evaluates a rule string against a single value outside of any field
// set. Unlike IsValid it does not tolerate unknown rules: the first rule that
// does not resolve makes Check return false and an *UnknownRuleError.
//
// The value is stored under the synthetic key "_data" in a scratch validator
// that shares this validator's registry; the receiver's state is not touched.
func (v *Validator) Check(value, rules string) (bool, error) {
	rs := ParseRules(rules)
	for _, rule := range rs.Names {
		if rule == RuleName {
			continue
		}
		if _, ok := v.registry.Lookup(rule); !ok {
			return false, &UnknownRuleError{Rule: rule}
		}
	}

	scratch := New(WithRegistry(v.registry), WithCatalog(v.catalog), WithLogger(v.logger))
	return scratch.Validate(Rules{{Field: CheckField, Rules: rules}}, Data{CheckField: value}), nil
}

// Check evaluates a rule string against a value using the built-in rules.
func Check(value, rules string) (bool, error) {
	return New().Check(value, rules)
}

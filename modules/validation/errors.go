package validation

import "errors"

var (
	ErrInvalidRuleSets     = errors.New("invalid rule sets")
	ErrRuleSetNotFound     = errors.New("rule set not found")
	ErrMetricsRegistration = errors.New("failed to register validation metrics")
)

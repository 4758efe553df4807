package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed is matched by every ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownRule is returned by Check when a rule name does not resolve.
	// Batch validation never returns it: unknown rules are skipped there.
	ErrUnknownRule = errors.New("unknown validation rule")

	// ErrInvalidRules is returned when rules cannot be decoded from JSON.
	ErrInvalidRules = errors.New("invalid rules definition")
)

// UnknownRuleError names the rule Check could not resolve.
type UnknownRuleError struct {
	Rule string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownRule, e.Rule)
}

func (e *UnknownRuleError) Unwrap() error {
	return ErrUnknownRule
}

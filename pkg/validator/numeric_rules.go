package validator

import (
	"regexp"
	"strconv"
	"strings"
)

// numericRegex matches integers and decimals with an optional sign and
// exponent, e.g. "42", "-1.5", ".5", "1e10". Surrounding whitespace is allowed.
var numericRegex = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?\s*$`)

func numeric(f Field, _ string) bool {
	return f.Present && numericRegex.MatchString(f.Value)
}

func validFloat(f Field, _ string) bool {
	if !f.Present {
		return false
	}
	s := strings.TrimSpace(f.Value)
	if s == "" {
		return false
	}
	// ParseFloat also accepts "NaN", "Inf" and hex floats; those are not numbers
	// a form user would type.
	if !numericRegex.MatchString(s) {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

package validator

// same passes when both fields are present and hold identical values.
// The error is reported on the field declaring the rule, never on the other one.
func same(f Field, other string) bool {
	if !f.Present {
		return false
	}
	v, ok := f.Other(other)
	return ok && v == f.Value
}

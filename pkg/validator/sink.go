package validator

// AddError records a message. With a field it overwrites that field's
// message; without one it is appended to the unkeyed list. Added messages
// survive later passes until Reset.
func (v *Validator) AddError(message string, field ...string) {
	if len(field) > 0 {
		e := Entry{Field: field[0], Keyed: true, Message: message}
		v.injected = append(v.injected, e)
		v.bag.Put(e.Field, "", message)
		return
	}
	v.injected = append(v.injected, Entry{Message: message})
	v.bag.Append(message)
}

// Errors returns the keyed messages of the last pass.
func (v *Validator) Errors() map[string]string {
	return v.bag.Map()
}

// Unkeyed returns messages added without a field.
func (v *Validator) Unkeyed() []string {
	return v.bag.Unkeyed()
}

// Entries returns every message of the last pass in insertion order.
func (v *Validator) Entries() []Entry {
	return v.bag.Entries()
}

// FieldError returns the message for a field.
func (v *Validator) FieldError(field string) (string, bool) {
	return v.bag.Get(field)
}

// Messages returns every message in insertion order.
func (v *Validator) Messages() []string {
	return v.bag.Messages()
}

// ErrorsString joins all messages in insertion order. Without an argument the
// validator's separator ("<br>" by default) is used.
func (v *Validator) ErrorsString(sep ...string) string {
	s := v.separator
	if len(sep) > 0 {
		s = sep[0]
	}
	return v.bag.Join(s)
}

// Err returns the errors of the last pass as ValidationErrors, or nil.
func (v *Validator) Err() error {
	return v.bag.Err()
}

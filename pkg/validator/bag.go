package validator

import "strings"

// DefaultSeparator joins messages in ErrorsString when no separator is given.
const DefaultSeparator = "<br>"

// Entry is a single message held by a Bag. Unkeyed entries come from AddError
// calls without a field.
type Entry struct {
	Field   string
	Keyed   bool
	Rule    string
	Message string

	// Label and Param are the field label and rule parameter the message was
	// rendered with. Both are empty for entries added with AddError.
	Label string
	Param string
}

// Bag collects the messages of one validation pass in insertion order.
// A keyed message replaces the previous one for the same key but keeps its
// original position.
type Bag struct {
	entries []Entry
	index   map[string]int
}

// NewBag returns an empty bag.
func NewBag() *Bag {
	return &Bag{index: make(map[string]int)}
}

// Put stores a keyed message, overwriting any earlier message for the field.
func (b *Bag) Put(field, rule, message string) {
	b.PutEntry(Entry{Field: field, Rule: rule, Message: message})
}

// PutEntry stores e under e.Field, overwriting any earlier entry for the field
// but keeping its position.
func (b *Bag) PutEntry(e Entry) {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	e.Keyed = true
	if i, ok := b.index[e.Field]; ok {
		b.entries[i] = e
		return
	}
	b.index[e.Field] = len(b.entries)
	b.entries = append(b.entries, e)
}

// Append stores an unkeyed message.
func (b *Bag) Append(message string) {
	b.entries = append(b.entries, Entry{Message: message})
}

// Get returns the message stored for a field.
func (b *Bag) Get(field string) (string, bool) {
	i, ok := b.index[field]
	if !ok {
		return "", false
	}
	return b.entries[i].Message, true
}

// Has reports whether a field has a message.
func (b *Bag) Has(field string) bool {
	_, ok := b.index[field]
	return ok
}

// Map returns the keyed messages.
func (b *Bag) Map() map[string]string {
	m := make(map[string]string, len(b.index))
	for _, e := range b.entries {
		if e.Keyed {
			m[e.Field] = e.Message
		}
	}
	return m
}

// Unkeyed returns the messages added without a field, in order.
func (b *Bag) Unkeyed() []string {
	var out []string
	for _, e := range b.entries {
		if !e.Keyed {
			out = append(out, e.Message)
		}
	}
	return out
}

// Entries returns a copy of all entries in insertion order.
func (b *Bag) Entries() []Entry {
	return append([]Entry(nil), b.entries...)
}

// Fields returns the keyed fields in insertion order.
func (b *Bag) Fields() []string {
	fields := make([]string, 0, len(b.index))
	for _, e := range b.entries {
		if e.Keyed {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// Messages returns every message in insertion order.
func (b *Bag) Messages() []string {
	msgs := make([]string, 0, len(b.entries))
	for _, e := range b.entries {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// Join concatenates every message in insertion order.
func (b *Bag) Join(sep string) string {
	return strings.Join(b.Messages(), sep)
}

func (b *Bag) Len() int { return len(b.entries) }

func (b *Bag) Empty() bool { return len(b.entries) == 0 }

// Err converts the bag into ValidationErrors, or nil when it is empty.
func (b *Bag) Err() error {
	if b.Empty() {
		return nil
	}
	errs := make(ValidationErrors, 0, len(b.entries))
	for _, e := range b.entries {
		ve := ValidationError{
			Field:   e.Field,
			Rule:    e.Rule,
			Message: e.Message,
		}
		if e.Rule != "" {
			label := e.Label
			if label == "" {
				label = e.Field
			}
			ve.TranslationKey = "validation." + e.Rule
			ve.TranslationValues = map[string]any{"field": label}
			if e.Param != "" {
				ve.TranslationValues["param"] = e.Param
			}
		}
		errs = append(errs, ve)
	}
	return errs
}

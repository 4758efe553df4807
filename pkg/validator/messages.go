package validator

import (
	"maps"
	"strings"
)

// DefaultTemplateKey is the catalog entry used when a rule has no template.
const DefaultTemplateKey = "default"

const fallbackTemplate = "The %s field is invalid"

// Catalog maps rule names to message templates. Templates use positional
// "%s" placeholders: the first receives the field label, the second (if any)
// the rule parameter or the label of the field it names. "%[1]s" and "%[2]s"
// address the slots out of order and "%%" writes a percent sign.
type Catalog map[string]string

// DefaultCatalog returns a fresh copy of the English catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		DefaultTemplateKey: "The %s field is invalid",
		RuleRequired:       "The %s field is required",
		RuleNotNull:        "The %s field cannot be empty",
		RuleEmpty:          "The %s field cannot be empty",
		RuleEmail:          "The %s field must be a valid email address",
		RuleURL:            "The %s field must be a valid URL",
		RuleSame:           "The %s field must match %s",
		RuleIP:             "The %s field must be a valid IP address",
		RuleMin:            "The %s field is too short, it must contain at least %s characters",
		RuleMax:            "The %s field is too long, it may contain at most %s characters",
		RuleAlpha:          "The %s field may only contain letters",
		RuleAlnum:          "The %s field may only contain letters and numbers",
		RuleAlphanumeric:   "The %s field may only contain letters and numbers",
		RuleNumeric:        "The %s field must be numeric",
		RuleFloat:          "The %s field must be a decimal number",
		RuleTime:           "The %s field must be a valid date or time",
		RuleUpper:          "The %s field may only contain uppercase letters",
		RuleLower:          "The %s field may only contain lowercase letters",
	}
}

// Merge returns a new catalog with the entries of other laid over c.
// Empty templates in other are ignored.
func (c Catalog) Merge(other map[string]string) Catalog {
	out := maps.Clone(c)
	if out == nil {
		out = make(Catalog, len(other))
	}
	for k, v := range other {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// Template returns the template for a rule, falling back to the "default"
// entry and then to a built-in English sentence.
func (c Catalog) Template(rule string) string {
	if t, ok := c[rule]; ok && t != "" {
		return t
	}
	if t, ok := c[DefaultTemplateKey]; ok && t != "" {
		return t
	}
	return fallbackTemplate
}

// render substitutes the two message slots. "%s" takes the next slot in
// order, "%[1]s" and "%[2]s" pick one explicitly and "%%" is a literal
// percent sign. Anything else, including a third "%s", is copied verbatim.
func render(tmpl, subject, other string) string {
	if !strings.Contains(tmpl, "%") {
		return tmpl
	}

	args := [2]string{subject, other}
	var b strings.Builder
	b.Grow(len(tmpl) + len(subject) + len(other))

	next := 0
	for i := 0; i < len(tmpl); {
		rest := tmpl[i:]
		switch {
		case strings.HasPrefix(rest, "%%"):
			b.WriteByte('%')
			i += 2
		case strings.HasPrefix(rest, "%s") && next < len(args):
			b.WriteString(args[next])
			next++
			i += 2
		case strings.HasPrefix(rest, "%[1]s"):
			b.WriteString(args[0])
			i += 5
		case strings.HasPrefix(rest, "%[2]s"):
			b.WriteString(args[1])
			i += 5
		default:
			b.WriteByte(tmpl[i])
			i++
		}
	}
	return b.String()
}

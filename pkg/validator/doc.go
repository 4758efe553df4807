// Package validator validates flat string input against compact rule strings
// such as "required|min:3|max:20" and produces labelled, human-readable
// messages for the fields that fail.
//
// # Rule strings
//
// A rule string is a "|" separated list of rules. A rule is a bare name or
// "name:param"; the parameter runs up to the next "|" and is taken verbatim.
// There is no escaping, so a parameter can never contain "|".
//
//	"required|notNull|min:3|max:20"
//	"same:password"
//	"name:E-mail address|required|email"
//
// The "name" rule is not a check. It gives the field the label used in its
// messages and in messages of rules that refer to it (e.g. "same:email").
//
// # Built-in rules
//
//   - required      – key is present (an empty value still passes)
//   - notNull/empty – present and not blank
//   - min:N, max:N  – length in runes is at least / at most N
//   - same:other    – equal to the value of field "other"
//   - time          – parses as a date and/or time
//   - email, url, ip
//   - float, numeric
//   - alpha, alnum (alphanumeric), upper, lower – ASCII letters/digits only
//
// Every rule except "required" also fails when the key is missing.
// Custom rules are added with Registry.Register or the WithRule option.
//
// # Usage
//
//	v := validator.New()
//	ok := v.Validate(validator.Rules{
//	    {Field: "email", Rules: "name:E-mail|required|email"},
//	    {Field: "password", Rules: "required|min:8"},
//	    {Field: "confirm", Rules: "name:Confirmation|same:password"},
//	}, validator.Data{
//	    "email":    "john@example.com",
//	    "password": "secret123",
//	})
//	if !ok {
//	    fmt.Println(v.ErrorsString("\n"))
//	}
//
// A Validator is one validation session: it holds rules, input, labels and
// errors for a single pass. Create one per request (or call Reset) and do not
// share it between goroutines. Registries are safe to share.
//
// # Errors
//
// A field keeps one message. If several of its rules fail, the message of
// the last failing rule in declaration order is the one kept.
//
// Unknown rule names are skipped silently by IsValid, while Check reports
// them with ErrUnknownRule because a single ad-hoc rule has nothing to fall
// back on.
//
// Err returns ValidationErrors, which carries translation keys of the form
// "validation.<rule>" and matches ErrValidationFailed with errors.Is.
//
// # Messages
//
// Templates come from a Catalog with two slots: the field label and the rule
// parameter. "%s" fills the next slot, "%[1]s" and "%[2]s" pick one so a
// translation can change the word order, and "%%" is a percent sign. Replace
// the catalog with WithCatalog or override entries with WithMessages, for
// example with a localized set loaded through package i18n.
//
// A single field can get its own text for a rule with WithFieldMessages or
// SetMessage; it is used before any catalog entry:
//
//	v.SetMessage("email", "required", "Tell us where to send the receipt")
package validator

package validator

// Rule names understood by the default registry and catalog.
const (
	RuleName         = "name"
	RuleRequired     = "required"
	RuleNotNull      = "notNull"
	RuleEmpty        = "empty" // alias of notNull
	RuleMin          = "min"
	RuleMax          = "max"
	RuleSame         = "same"
	RuleTime         = "time"
	RuleEmail        = "email"
	RuleURL          = "url"
	RuleIP           = "ip"
	RuleFloat        = "float"
	RuleNumeric      = "numeric"
	RuleAlpha        = "alpha"
	RuleAlnum        = "alnum"
	RuleAlphanumeric = "alphanumeric" // alias of alnum
	RuleUpper        = "upper"
	RuleLower        = "lower"
)

// CheckField is the synthetic key used by Check for its single value.
const CheckField = "_data"

// Package locales embeds the message catalogs shipped with the service.
package locales

import "embed"

// FS holds one YAML catalog per language at its root. Validation messages
// live under the "validation" key.
//
//go:embed *.yaml
var FS embed.FS

// Prefix is the catalog subtree holding rule templates.
const Prefix = "validation"

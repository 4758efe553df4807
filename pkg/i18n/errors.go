package i18n

import "errors"

var (
	// Parsing
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// Loading
	ErrLoadingCancelled       = errors.New("loading catalogs cancelled")
	ErrFailedToReadFile       = errors.New("failed to read catalog file")
	ErrFailedToParseFile      = errors.New("failed to parse catalog file")
	ErrFailedToReadDirectory  = errors.New("failed to read catalog directory")
	ErrNoCatalogFiles         = errors.New("no catalog files found")
	ErrNilAdapter             = errors.New("catalog adapter is nil")
	ErrInvalidLanguage        = errors.New("invalid language code")
	ErrDefaultLanguageMissing = errors.New("default language has no messages")
)

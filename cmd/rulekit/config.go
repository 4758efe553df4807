package main

import "github.com/dmitrymomot/rulekit/pkg/httpserver"

// Config is the service configuration read from the environment.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	AppName  string `env:"APP_NAME" envDefault:"rulekit"`
	LogLevel string `env:"LOG_LEVEL" envDefault:""`

	I18nDefaultLang string `env:"I18N_DEFAULT_LANG" envDefault:"en"`
	// I18nDir replaces the embedded catalogs with the files of a directory.
	I18nDir string `env:"I18N_DIR"`

	ValidationSeparator string `env:"VALIDATION_SEPARATOR" envDefault:"<br>"`
	RuleSetsFile        string `env:"VALIDATION_RULESETS_FILE"`

	HTTP httpserver.Config
}

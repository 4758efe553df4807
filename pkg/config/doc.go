// Package config loads typed configuration from environment variables.
//
// Structs are described with github.com/caarlos0/env tags; values come from
// the process environment and from .env files read with
// github.com/joho/godotenv. Each struct type is parsed once and cached:
//
//	var cfg struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//	config.MustLoad(&cfg)
//
// LoadEnv reads additional env files, such as per-environment overrides.
package config

// Package config loads settings from environment variables, optionally
// seeded from .env files.
//
// It wraps github.com/joho/godotenv (.env loading) and
// github.com/caarlos0/env/v11 (struct tag parsing). Config describes the
// variables read by the formcheck command:
//
//	FORMCHECK_ENV          development or production (log presets)
//	FORMCHECK_LOG_LEVEL    debug, info, warn or error
//	FORMCHECK_LOG_FORMAT   text or json, overrides the environment preset
//	FORMCHECK_LANG         message language, default "en"
//	FORMCHECK_LOCALES_DIR  directory of YAML catalogs patching the bundled messages
//
// Load works with any struct annotated with `env` tags. Errors wrap the
// sentinels in errors.go and can be checked with errors.Is.
package config

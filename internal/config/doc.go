// Package config loads, normalizes, and validates trackmatch
// configuration from TOML files with environment variable fallbacks for
// credentials.
package config

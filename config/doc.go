// Package config loads and validates the application configuration.
//
// Configuration comes from three layers, each overriding the last:
// built-in defaults, a JSON or YAML file, and FEEDSTREAMS_-prefixed
// environment variables. Validation fails fast on anything the process
// cannot start with, so a bad deployment dies at startup instead of
// limping.
package config

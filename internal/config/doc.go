// Package config loads, normalizes, and validates the cratedig TOML
// configuration.
//
// Configuration resolution is explicit: Load returns a value that callers
// inject into the store and scanner constructors. The platform default data
// directory is computed by a small pure function; nothing in this package
// mutates global state beyond reading environment variables during
// normalization.
package config

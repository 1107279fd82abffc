// Package config loads, normalizes, and validates webpify configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads the optional TOML file at ~/.config/webpify/config.toml.
// The Config type centralizes the encoder knobs (quality, concurrency, cwebp
// binary) and log settings; command-line flags override file values.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config

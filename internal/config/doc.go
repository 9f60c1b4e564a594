// Package config loads, normalizes, and validates deo configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the DEO_SOURCE_DIR environment
// fallback. The Config type centralizes every knob the CLI needs so the source
// tree, profile directory, and run lock are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config

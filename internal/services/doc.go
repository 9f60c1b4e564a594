// Package services defines shared utilities consumed by the discovery,
// selection and encoding packages.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and stage names for logging.
//   - Structured error markers plus the Wrap helper so callers can classify
//     failures with errors.Is and show a matching next step via Hint.
//
// Use these helpers when wiring new pipeline steps so error handling and
// observability stay uniform across the CLI.
package services

// Package logging assembles structured slog loggers and formatting helpers used
// across deo.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing (including size-based rotation of file outputs), and exposes
// context-aware helpers so pipeline code can tag log lines with stages and
// discovery run ids. The package also provides a no-op logger for tests and
// wiring code that cannot fail.
package logging

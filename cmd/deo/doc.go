// Package main hosts the deo CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into discovery runs
// over a source tree, encode plans for the resulting mappings, profile
// listings, a watch loop, and configuration scaffolding. It centralizes
// configuration resolution and structured logging setup so subcommands can
// focus on presentation.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main

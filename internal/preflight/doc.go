// Package preflight provides readiness checks for the filesystem paths and
// external binaries deo depends on.
//
// These checks run in two contexts:
//   - "deo doctor" calls RunAll and prints every result.
//   - "deo plan" calls CheckEncodeDirs for the selected mappings before it
//     hands jobs to the encoder, so a read-only target fails early.
package preflight

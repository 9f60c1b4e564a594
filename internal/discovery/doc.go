// Package discovery walks a source tree of ripped media and turns it into the
// verified list of session to encode-directory mappings.
//
// The pipeline runs in four steps: Scan classifies every entry below the
// root, Aggregate groups normalized renames into per-kind sessions, Resolve
// collects declared encode directories, and Reconcile joins the two by
// session id. Everything that did not make it into a mapping stays visible
// on Result: unknown entries, invalid markers, normalization failures,
// unmapped sessions and encode directories, plus warnings for ambiguous
// input such as duplicate markers.
//
// Soft failures are data. Only a missing or unreadable root, or a cancelled
// context, ends discovery with an error.
package discovery

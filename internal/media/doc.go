// Package media holds the immutable domain records produced by discovery:
// session identifiers, movie names, rename files, encode directories,
// sessions and the reconciled session to encode directory mappings.
//
// Everything here is constructed once per scan and never mutated. Sessions
// keep their files in canonical order (container file name ascending) so
// downstream consumers see the same ordering regardless of walk order.
package media

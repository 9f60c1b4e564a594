// Package classify turns filesystem paths into typed discovery entries.
//
// Every visited entry becomes exactly one Entry variant: a TV rename, a movie
// rename, an encode target declared by an encode_dir.txt marker, an invalid
// marker, or an unknown entry. Failing to match is an ordinary outcome that is
// returned as data so the walk stays single pass.
package classify

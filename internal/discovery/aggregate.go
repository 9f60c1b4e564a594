package discovery

import (
	"fmt"
	"maps"
	"slices"

	"deo/internal/classify"
	"deo/internal/media"
)

// Failure records a rename entry that could not be normalized.
type Failure struct {
	Path string
	Err  error
}

// Aggregation holds the sessions built from rename entries, split by kind.
type Aggregation struct {
	TV       map[media.SessionID]media.TVSeriesSession
	Movie    map[media.SessionID]media.MovieSession
	Failures []Failure
	Warnings []Warning
}

// Aggregate normalizes every rename entry and groups the results by session
// id. Entries of other variants are ignored. A normalization failure is
// recorded and the pass continues.
func Aggregate(entries []classify.Entry) Aggregation {
	tvFiles := make(map[media.SessionID][]media.TVSeriesRenameFile)
	movieFiles := make(map[media.SessionID][]media.MovieRenameFile)
	var failures []Failure

	for _, entry := range entries {
		switch e := entry.(type) {
		case classify.TVRename:
			file, err := e.Normalize()
			if err != nil {
				failures = append(failures, Failure{Path: e.Path, Err: err})
				continue
			}
			tvFiles[file.Session] = append(tvFiles[file.Session], file)
		case classify.MovieRename:
			file, err := e.Normalize()
			if err != nil {
				failures = append(failures, Failure{Path: e.Path, Err: err})
				continue
			}
			movieFiles[file.Session] = append(movieFiles[file.Session], file)
		case classify.EncodeTarget, classify.InvalidEncodeMarker, classify.UnknownEntry:
		}
	}

	agg := Aggregation{
		TV:       make(map[media.SessionID]media.TVSeriesSession, len(tvFiles)),
		Movie:    make(map[media.SessionID]media.MovieSession, len(movieFiles)),
		Failures: failures,
	}
	for id, files := range tvFiles {
		agg.TV[id] = media.NewSession(id, files)
	}
	for id, files := range movieFiles {
		agg.Movie[id] = media.NewSession(id, files)
	}

	for _, id := range sortedIDs(agg.TV) {
		movie, ok := agg.Movie[id]
		if !ok {
			continue
		}
		tv := agg.TV[id]
		agg.Warnings = append(agg.Warnings, Warning{
			Code:    WarnSessionKindConflict,
			Session: id,
			Paths:   conflictPaths(tv.InputFiles(), movie.InputFiles()),
			Message: fmt.Sprintf("session holds %d episode and %d movie renames; both are kept", tv.Len(), movie.Len()),
		})
	}
	return agg
}

func conflictPaths(groups ...[]media.InputFile) []string {
	var paths []string
	for _, files := range groups {
		for _, f := range files {
			paths = append(paths, f.MKVPath)
		}
	}
	return paths
}

func sortedIDs[V any](m map[media.SessionID]V) []media.SessionID {
	return slices.SortedFunc(maps.Keys(m), media.SessionID.Compare)
}

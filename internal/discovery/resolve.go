package discovery

import (
	"fmt"

	"deo/internal/classify"
	"deo/internal/media"
)

// Resolution holds the encode directories declared by valid markers.
type Resolution struct {
	TV       map[media.SessionID]media.TVSeriesEncodeDir
	Movie    map[media.SessionID]media.MovieEncodeDir
	Warnings []Warning
}

// Resolve builds one encode directory record per EncodeTarget entry,
// partitioned by locator kind. When several markers name the same session
// and kind, the one visited last wins and a duplicate_encode_marker warning
// lists every marker involved.
func Resolve(entries []classify.Entry) Resolution {
	res := Resolution{
		TV:    make(map[media.SessionID]media.TVSeriesEncodeDir),
		Movie: make(map[media.SessionID]media.MovieEncodeDir),
	}
	tvMarkers := make(map[media.SessionID][]string)
	movieMarkers := make(map[media.SessionID][]string)

	for _, entry := range entries {
		target, ok := entry.(classify.EncodeTarget)
		if !ok {
			continue
		}
		switch loc := target.Locator.(type) {
		case classify.SeasonLocator:
			res.TV[target.Session] = media.TVSeriesEncodeDir{
				Path:    target.Path,
				Season:  loc.Label,
				Session: target.Session,
			}
			tvMarkers[target.Session] = append(tvMarkers[target.Session], target.MarkerPath)
		case classify.MovieLocator:
			res.Movie[target.Session] = media.MovieEncodeDir{
				Path:      target.Path,
				MovieName: loc.Name,
				Session:   target.Session,
			}
			movieMarkers[target.Session] = append(movieMarkers[target.Session], target.MarkerPath)
		}
	}

	res.Warnings = append(res.Warnings, duplicateWarnings(media.KindTVSeries, tvMarkers)...)
	res.Warnings = append(res.Warnings, duplicateWarnings(media.KindMovie, movieMarkers)...)

	for _, id := range sortedIDs(res.TV) {
		if _, ok := res.Movie[id]; !ok {
			continue
		}
		res.Warnings = append(res.Warnings, Warning{
			Code:    WarnEncodeKindConflict,
			Session: id,
			Paths:   []string{lastOf(tvMarkers[id]), lastOf(movieMarkers[id])},
			Message: "session declares both a season directory and a movie directory",
		})
	}
	return res
}

func duplicateWarnings(kind media.Kind, markers map[media.SessionID][]string) []Warning {
	var warnings []Warning
	for _, id := range sortedIDs(markers) {
		paths := markers[id]
		if len(paths) < 2 {
			continue
		}
		warnings = append(warnings, Warning{
			Code:    WarnDuplicateEncodeMarker,
			Session: id,
			Paths:   paths,
			Message: fmt.Sprintf("%d %s markers for one session; using %s", len(paths), kind, lastOf(paths)),
		})
	}
	return warnings
}

func lastOf(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	return paths[len(paths)-1]
}

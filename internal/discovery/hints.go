package discovery

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/antzucaro/matchr"

	"deo/internal/classify"
	"deo/internal/media"
)

// Unknown files in a renames folder whose names are at most this many edits
// away from the marker name are reported as probable typos.
const markerNearMissDistance = 3

const renameExtension = ".mkv"

func nearMissWarnings(unknown []classify.UnknownEntry) []Warning {
	var warnings []Warning
	for _, entry := range unknown {
		if entry.IsDir {
			continue
		}
		session, ok := classify.SessionRenamesDir(filepath.Dir(entry.Path))
		if !ok {
			continue
		}
		id, err := media.NewSessionID(session)
		if err != nil {
			continue
		}
		name := filepath.Base(entry.Path)
		ext := filepath.Ext(name)

		switch {
		case ext != renameExtension && strings.EqualFold(ext, renameExtension):
			warnings = append(warnings, Warning{
				Code:    WarnExtensionCase,
				Session: id,
				Paths:   []string{entry.Path},
				Message: fmt.Sprintf("%q is ignored; renames must end in lower-case %s", name, renameExtension),
			})
		case matchr.Levenshtein(strings.ToLower(name), classify.MarkerFileName) <= markerNearMissDistance:
			warnings = append(warnings, Warning{
				Code:    WarnMarkerNameNearMiss,
				Session: id,
				Paths:   []string{entry.Path},
				Message: fmt.Sprintf("%q is not read as an encode marker; did you mean %s?", name, classify.MarkerFileName),
			})
		}
	}
	return warnings
}

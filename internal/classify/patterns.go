package classify

import "regexp"

// MarkerFileName is the sidecar that declares a session's encode directory.
const MarkerFileName = "encode_dir.txt"

// RenamesDirName is the folder inside each session holding renamed rips.
const RenamesDirName = "renames"

// The TV pattern must be tried before the movie pattern: every episode file
// name also matches the movie shape.
var (
	tvRenamePattern    = regexp.MustCompile(`(?:^|/)(session\d+)/renames/(((?:S\d{2,}E\d{2,})+(?:-E\d{2,})*)\s-\s[^/]+\.mkv)$`)
	movieRenamePattern = regexp.MustCompile(`(?:^|/)(session\d+)/renames/([^/]+\.mkv)$`)
	markerPattern      = regexp.MustCompile(`(?:^|/)(session\d+)/renames/encode_dir\.txt$`)

	tvEncodeDirPattern    = regexp.MustCompile(`^.+/([^/]+\s\{tvdb-\d+\}/Season\s\d{2,})$`)
	movieEncodeDirPattern = regexp.MustCompile(`^.+/([^/]+\s\{tvdb-\d+\})$`)

	renamesDirPattern = regexp.MustCompile(`(?:^|/)(session\d+)/renames$`)
)

// SessionRenamesDir reports the session id when dir is a <session>/renames folder.
func SessionRenamesDir(dir string) (string, bool) {
	match := renamesDirPattern.FindStringSubmatch(toSlash(dir))
	if match == nil {
		return "", false
	}
	return match[1], true
}

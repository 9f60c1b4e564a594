package media

import (
	"slices"
	"strings"
)

// RenameFile is satisfied by exactly the two rename record kinds.
type RenameFile interface {
	TVSeriesRenameFile | MovieRenameFile
	SessionID() SessionID
	InputFile() InputFile
}

// Session is one rip session and its rename files in canonical order.
type Session[F RenameFile] struct {
	id    SessionID
	files []F
}

// TVSeriesSession groups the episodes of one session.
type TVSeriesSession = Session[TVSeriesRenameFile]

// MovieSession groups the movie files of one session.
type MovieSession = Session[MovieRenameFile]

// NewSession copies files and orders them by container file name, breaking
// ties on the full path.
func NewSession[F RenameFile](id SessionID, files []F) Session[F] {
	sorted := slices.Clone(files)
	slices.SortStableFunc(sorted, func(a, b F) int {
		left, right := a.InputFile(), b.InputFile()
		if c := strings.Compare(left.MKVFile, right.MKVFile); c != 0 {
			return c
		}
		return strings.Compare(left.MKVPath, right.MKVPath)
	})
	return Session[F]{id: id, files: sorted}
}

func (s Session[F]) ID() SessionID { return s.id }

// Files returns a copy of the ordered file list.
func (s Session[F]) Files() []F { return slices.Clone(s.files) }

func (s Session[F]) Len() int { return len(s.files) }

// InputFiles projects the ordered files into their encoder view.
func (s Session[F]) InputFiles() []InputFile {
	out := make([]InputFile, 0, len(s.files))
	for _, f := range s.files {
		out = append(out, f.InputFile())
	}
	return out
}

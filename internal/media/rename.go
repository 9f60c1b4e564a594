package media

import (
	"errors"
	"fmt"
	"strings"
)

// OutputExtension is the container extension of every encoded file.
const OutputExtension = ".mp4"

// ErrNoStem reports a file name from which no output name can be derived.
var ErrNoStem = errors.New("file name has no stem")

// OutputFileName replaces the extension of inputFileName with ".mp4".
// Leading-dot names keep their full text as the stem; names without any
// usable stem fail with ErrNoStem.
func OutputFileName(inputFileName string) (string, error) {
	name := inputFileName
	if idx := strings.LastIndexAny(name, "/\\"); idx >= 0 {
		name = name[idx+1:]
	}
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrNoStem, inputFileName)
	}
	stem := name
	if idx := strings.LastIndexByte(name, '.'); idx > 0 {
		stem = name[:idx]
	}
	return stem + OutputExtension, nil
}

// InputFile is the kind-independent view of a rename file handed to encoders.
type InputFile struct {
	MKVPath string
	MKVFile string
	MP4File string
	// Episode is empty for movies.
	Episode string
}

// TVSeriesRenameFile is a ripped episode awaiting encoding.
type TVSeriesRenameFile struct {
	Path    string
	Session SessionID
	Episode string
	MKVFile string
	MP4File string
}

// NewTVSeriesRenameFile derives the output name and builds the record.
func NewTVSeriesRenameFile(path string, session SessionID, episode, mkvFile string) (TVSeriesRenameFile, error) {
	mp4File, err := OutputFileName(mkvFile)
	if err != nil {
		return TVSeriesRenameFile{}, err
	}
	return TVSeriesRenameFile{
		Path:    path,
		Session: session,
		Episode: episode,
		MKVFile: mkvFile,
		MP4File: mp4File,
	}, nil
}

func (f TVSeriesRenameFile) SessionID() SessionID { return f.Session }

func (f TVSeriesRenameFile) InputFile() InputFile {
	return InputFile{MKVPath: f.Path, MKVFile: f.MKVFile, MP4File: f.MP4File, Episode: f.Episode}
}

// MovieRenameFile is a ripped movie awaiting encoding.
type MovieRenameFile struct {
	Path    string
	Session SessionID
	MKVFile string
	MP4File string
}

// NewMovieRenameFile derives the output name and builds the record.
func NewMovieRenameFile(path string, session SessionID, mkvFile string) (MovieRenameFile, error) {
	mp4File, err := OutputFileName(mkvFile)
	if err != nil {
		return MovieRenameFile{}, err
	}
	return MovieRenameFile{
		Path:    path,
		Session: session,
		MKVFile: mkvFile,
		MP4File: mp4File,
	}, nil
}

func (f MovieRenameFile) SessionID() SessionID { return f.Session }

func (f MovieRenameFile) InputFile() InputFile {
	return InputFile{MKVPath: f.Path, MKVFile: f.MKVFile, MP4File: f.MP4File}
}

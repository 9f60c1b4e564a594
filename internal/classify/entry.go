package classify

import (
	"fmt"

	"deo/internal/media"
)

// Entry is the classification of one filesystem entry. The set of
// implementations is closed; consumers switch over the concrete types.
type Entry interface {
	// EntryPath is the path of the visited filesystem entry.
	EntryPath() string
	entry()
}

// TVRename is a ripped episode under <session>/renames.
type TVRename struct {
	Path     string
	Session  media.SessionID
	Episode  string
	FileName string
}

// MovieRename is a ripped movie under <session>/renames.
type MovieRename struct {
	Path     string
	Session  media.SessionID
	FileName string
}

// EncodeTarget is a marker whose declared directory exists and has a
// recognised shape.
type EncodeTarget struct {
	Session media.SessionID
	// Path is the declared encode directory.
	Path       string
	MarkerPath string
	Locator    Locator
}

// UnknownEntry matched none of the known patterns.
type UnknownEntry struct {
	Path  string
	IsDir bool
}

// InvalidReason explains why a marker could not be resolved.
type InvalidReason string

const (
	ReasonEmpty             InvalidReason = "empty"
	ReasonMissingDirectory  InvalidReason = "missing_directory"
	ReasonUnrecognizedShape InvalidReason = "unrecognized_shape"
)

// InvalidEncodeMarker is a marker whose declared directory is missing or
// not shaped like a season or movie directory.
type InvalidEncodeMarker struct {
	RawContents string
	MarkerPath  string
	Session     media.SessionID
	Reason      InvalidReason
}

func (e TVRename) EntryPath() string            { return e.Path }
func (e MovieRename) EntryPath() string         { return e.Path }
func (e EncodeTarget) EntryPath() string        { return e.MarkerPath }
func (e UnknownEntry) EntryPath() string        { return e.Path }
func (e InvalidEncodeMarker) EntryPath() string { return e.MarkerPath }

func (TVRename) entry()            {}
func (MovieRename) entry()         {}
func (EncodeTarget) entry()        {}
func (UnknownEntry) entry()        {}
func (InvalidEncodeMarker) entry() {}

// Locator names where inside the encodes library a target lives.
type Locator interface {
	Kind() media.Kind
	String() string
	locator()
}

// SeasonLocator is "<title> {tvdb-<id>}/Season <NN>".
type SeasonLocator struct {
	Label string
}

// MovieLocator is "<title> {tvdb-<id>}".
type MovieLocator struct {
	Name media.MovieName
}

func (l SeasonLocator) Kind() media.Kind { return media.KindTVSeries }
func (l SeasonLocator) String() string   { return l.Label }
func (SeasonLocator) locator()           {}

func (l MovieLocator) Kind() media.Kind { return media.KindMovie }
func (l MovieLocator) String() string   { return l.Name.String() }
func (MovieLocator) locator()           {}

// Normalize converts the rename into its encoder-facing record.
func (e TVRename) Normalize() (media.TVSeriesRenameFile, error) {
	file, err := media.NewTVSeriesRenameFile(e.Path, e.Session, e.Episode, e.FileName)
	if err != nil {
		return media.TVSeriesRenameFile{}, fmt.Errorf("normalize %s: %w", e.Path, err)
	}
	return file, nil
}

// Normalize converts the rename into its encoder-facing record.
func (e MovieRename) Normalize() (media.MovieRenameFile, error) {
	file, err := media.NewMovieRenameFile(e.Path, e.Session, e.FileName)
	if err != nil {
		return media.MovieRenameFile{}, fmt.Errorf("normalize %s: %w", e.Path, err)
	}
	return file, nil
}

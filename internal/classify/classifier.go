package classify

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"deo/internal/media"
)

// FS is the filesystem access the classifier needs for marker files.
type FS interface {
	ReadFile(name string) ([]byte, error)
	Stat(name string) (fs.FileInfo, error)
}

type osFS struct{}

func (osFS) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

func (osFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

// Option configures the classifier.
type Option func(*Classifier)

// WithFS swaps the filesystem used to read markers and check declared directories.
func WithFS(fsys FS) Option {
	return func(c *Classifier) {
		if fsys != nil {
			c.fsys = fsys
		}
	}
}

// Classifier maps filesystem entries onto Entry variants.
type Classifier struct {
	fsys FS
}

// New constructs a classifier backed by the OS filesystem.
func New(opts ...Option) *Classifier {
	c := &Classifier{fsys: osFS{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the single Entry describing path. The only error is a
// marker file that could not be read; every non-matching entry is returned
// as UnknownEntry.
func (c *Classifier) Classify(path string, isFile, isDir bool) (Entry, error) {
	slashed := toSlash(path)

	if isFile {
		if m := tvRenamePattern.FindStringSubmatch(slashed); m != nil {
			return TVRename{
				Path:     path,
				Session:  media.MustSessionID(m[1]),
				Episode:  m[3],
				FileName: m[2],
			}, nil
		}
		if m := movieRenamePattern.FindStringSubmatch(slashed); m != nil {
			return MovieRename{
				Path:     path,
				Session:  media.MustSessionID(m[1]),
				FileName: m[2],
			}, nil
		}
		if m := markerPattern.FindStringSubmatch(slashed); m != nil {
			return c.classifyMarker(path, media.MustSessionID(m[1]))
		}
	}

	return UnknownEntry{Path: path, IsDir: isDir}, nil
}

func (c *Classifier) classifyMarker(markerPath string, session media.SessionID) (Entry, error) {
	raw, err := c.fsys.ReadFile(markerPath)
	if err != nil {
		return nil, fmt.Errorf("read encode marker %s: %w", markerPath, err)
	}
	declared := strings.TrimSpace(string(raw))
	invalid := func(reason InvalidReason) Entry {
		return InvalidEncodeMarker{
			RawContents: declared,
			MarkerPath:  markerPath,
			Session:     session,
			Reason:      reason,
		}
	}
	if declared == "" {
		return invalid(ReasonEmpty), nil
	}

	info, err := c.fsys.Stat(declared)
	if err != nil || !info.IsDir() {
		return invalid(ReasonMissingDirectory), nil
	}

	shape := strings.TrimRight(toSlash(declared), "/")
	if m := tvEncodeDirPattern.FindStringSubmatch(shape); m != nil {
		return EncodeTarget{
			Session:    session,
			Path:       declared,
			MarkerPath: markerPath,
			Locator:    SeasonLocator{Label: m[1]},
		}, nil
	}
	if m := movieEncodeDirPattern.FindStringSubmatch(shape); m != nil {
		name, err := media.NewMovieName(m[1])
		if err != nil {
			return invalid(ReasonUnrecognizedShape), nil
		}
		return EncodeTarget{
			Session:    session,
			Path:       declared,
			MarkerPath: markerPath,
			Locator:    MovieLocator{Name: name},
		}, nil
	}
	return invalid(ReasonUnrecognizedShape), nil
}

func toSlash(path string) string {
	return filepath.ToSlash(path)
}

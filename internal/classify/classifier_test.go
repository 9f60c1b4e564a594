package classify_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"deo/internal/classify"
	"deo/internal/media"
)

func TestClassifyTVRename(t *testing.T) {
	c := classify.New()
	path := "/media/Rips/session1/renames/S01E02 - The Unholy Alliance.mkv"

	entry, err := c.Classify(path, true, false)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	tv, ok := entry.(classify.TVRename)
	if !ok {
		t.Fatalf("expected TVRename, got %T", entry)
	}
	if tv.Session.String() != "session1" {
		t.Fatalf("unexpected session %q", tv.Session)
	}
	if tv.Episode != "S01E02" {
		t.Fatalf("unexpected episode %q", tv.Episode)
	}
	if tv.FileName != "S01E02 - The Unholy Alliance.mkv" {
		t.Fatalf("unexpected file name %q", tv.FileName)
	}
	if tv.EntryPath() != path {
		t.Fatalf("unexpected path %q", tv.EntryPath())
	}
}

func TestClassifyMultiEpisodeRename(t *testing.T) {
	entry, err := classify.New().Classify("/media/Rips/session1/renames/S01E04-E05 - The Saga.mkv", true, false)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	tv, ok := entry.(classify.TVRename)
	if !ok {
		t.Fatalf("expected TVRename, got %T", entry)
	}
	if tv.Episode != "S01E04-E05" {
		t.Fatalf("expected episode range preserved, got %q", tv.Episode)
	}
	if tv.FileName != "S01E04-E05 - The Saga.mkv" {
		t.Fatalf("unexpected file name %q", tv.FileName)
	}
}

func TestClassifyMovieRename(t *testing.T) {
	entry, err := classify.New().Classify("/media/Rips/session3/renames/Return of the Jedi - {tvdb-698}.mkv", true, false)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	movie, ok := entry.(classify.MovieRename)
	if !ok {
		t.Fatalf("expected MovieRename, got %T", entry)
	}
	if movie.Session.String() != "session3" {
		t.Fatalf("unexpected session %q", movie.Session)
	}
	if movie.FileName != "Return of the Jedi - {tvdb-698}.mkv" {
		t.Fatalf("unexpected file name %q", movie.FileName)
	}
}

func TestClassifyUnknownEntries(t *testing.T) {
	c := classify.New()
	cases := []struct {
		path   string
		isFile bool
		isDir  bool
	}{
		{"/media/Rips/session1/renames/notes.nfo", true, false},
		{"/media/Rips/session1/renames/readme.txt", true, false},
		{"/media/Rips/session1/renames", false, true},
		{"/media/Rips/session1/S01E01 - Pilot.mkv", true, false},
		{"/media/Rips/session1/renames/S01E01 - Pilot.mkv", false, true},
		{"/media/Rips/mysession1/renames/Movie.mkv", true, false},
		{"/media/Rips/session1/renames/Movie.MKV", true, false},
		{"/media/Rips/session1/renames/nested/Movie.mkv", true, false},
	}
	for _, tc := range cases {
		entry, err := c.Classify(tc.path, tc.isFile, tc.isDir)
		if err != nil {
			t.Fatalf("Classify(%q) returned error: %v", tc.path, err)
		}
		unknown, ok := entry.(classify.UnknownEntry)
		if !ok {
			t.Fatalf("Classify(%q): expected UnknownEntry, got %T", tc.path, entry)
		}
		if unknown.IsDir != tc.isDir {
			t.Fatalf("Classify(%q): IsDir=%v, want %v", tc.path, unknown.IsDir, tc.isDir)
		}
	}
}

func writeMarker(t *testing.T, root, session, contents string) string {
	t.Helper()
	dir := filepath.Join(root, "Rips", session, "renames")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir renames: %v", err)
	}
	path := filepath.Join(dir, classify.MarkerFileName)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}
	return path
}

func mkdir(t *testing.T, path string) string {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	return path
}

func TestClassifyTVEncodeMarker(t *testing.T) {
	root := t.TempDir()
	target := mkdir(t, filepath.Join(root, "Encodes", "ThunderCats {tvdb-70355}", "Season 01"))
	marker := writeMarker(t, root, "session1", target+"\n")

	entry, err := classify.New().Classify(marker, true, false)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	enc, ok := entry.(classify.EncodeTarget)
	if !ok {
		t.Fatalf("expected EncodeTarget, got %#v", entry)
	}
	if enc.Locator.String() != "ThunderCats {tvdb-70355}/Season 01" {
		t.Fatalf("unexpected locator %q", enc.Locator.String())
	}
	if enc.Locator.Kind() != media.KindTVSeries {
		t.Fatalf("expected TV locator, got %v", enc.Locator.Kind())
	}
	if enc.Path != target {
		t.Fatalf("expected trimmed declared path %q, got %q", target, enc.Path)
	}
	if enc.Session.String() != "session1" || enc.MarkerPath != marker {
		t.Fatalf("unexpected encode target %#v", enc)
	}
}

func TestClassifyMovieEncodeMarker(t *testing.T) {
	root := t.TempDir()
	target := mkdir(t, filepath.Join(root, "Encodes", "Return of the Jedi - {tvdb-698}"))
	marker := writeMarker(t, root, "session3", "  "+target+"  \n")

	entry, err := classify.New().Classify(marker, true, false)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	enc, ok := entry.(classify.EncodeTarget)
	if !ok {
		t.Fatalf("expected EncodeTarget, got %#v", entry)
	}
	loc, ok := enc.Locator.(classify.MovieLocator)
	if !ok {
		t.Fatalf("expected MovieLocator, got %T", enc.Locator)
	}
	if loc.Name.String() != "Return of the Jedi - {tvdb-698}" {
		t.Fatalf("unexpected movie name %q", loc.Name)
	}
	if loc.Name.TVDBID() != 698 {
		t.Fatalf("unexpected tvdb id %d", loc.Name.TVDBID())
	}
}

func TestClassifyInvalidMarkers(t *testing.T) {
	root := t.TempDir()
	untagged := mkdir(t, filepath.Join(root, "Encodes", "ThunderCats"))
	aFile := filepath.Join(root, "Encodes", "Movie {tvdb-1}")
	if err := os.WriteFile(aFile, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cases := []struct {
		name     string
		contents string
		reason   classify.InvalidReason
	}{
		{"empty", "   \n", classify.ReasonEmpty},
		{"missing", filepath.Join(root, "Encodes", "Ghost {tvdb-9}", "Season 01"), classify.ReasonMissingDirectory},
		{"not a directory", aFile, classify.ReasonMissingDirectory},
		{"shape", untagged, classify.ReasonUnrecognizedShape},
	}
	for i, tc := range cases {
		session := "session" + string(rune('1'+i))
		marker := writeMarker(t, root, session, tc.contents)
		entry, err := classify.New().Classify(marker, true, false)
		if err != nil {
			t.Fatalf("%s: Classify returned error: %v", tc.name, err)
		}
		invalid, ok := entry.(classify.InvalidEncodeMarker)
		if !ok {
			t.Fatalf("%s: expected InvalidEncodeMarker, got %#v", tc.name, entry)
		}
		if invalid.Reason != tc.reason {
			t.Fatalf("%s: reason %q, want %q", tc.name, invalid.Reason, tc.reason)
		}
		if invalid.Session.String() != session || invalid.MarkerPath != marker {
			t.Fatalf("%s: unexpected marker %#v", tc.name, invalid)
		}
	}
}

type failingFS struct{}

func (failingFS) ReadFile(string) ([]byte, error)  { return nil, fs.ErrPermission }
func (failingFS) Stat(string) (fs.FileInfo, error) { return nil, fs.ErrNotExist }

func TestClassifyMarkerReadError(t *testing.T) {
	c := classify.New(classify.WithFS(failingFS{}))
	entry, err := c.Classify("/media/Rips/session1/renames/encode_dir.txt", true, false)
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("expected permission error, got entry=%#v err=%v", entry, err)
	}
	if entry != nil {
		t.Fatalf("expected no entry on read failure, got %#v", entry)
	}
}

func TestNormalizeDerivesMP4Name(t *testing.T) {
	tv := classify.TVRename{
		Path:     "/media/Rips/session1/renames/S01E01 - Pilot.mkv",
		Session:  media.MustSessionID("session1"),
		Episode:  "S01E01",
		FileName: "S01E01 - Pilot.mkv",
	}
	file, err := tv.Normalize()
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if file.MP4File != "S01E01 - Pilot.mp4" || file.MKVFile != tv.FileName || file.Episode != "S01E01" {
		t.Fatalf("unexpected rename file %#v", file)
	}

	broken := classify.MovieRename{Path: "/x", Session: media.MustSessionID("session2"), FileName: ""}
	if _, err := broken.Normalize(); !errors.Is(err, media.ErrNoStem) {
		t.Fatalf("expected ErrNoStem, got %v", err)
	}
}

func TestSessionRenamesDir(t *testing.T) {
	if id, ok := classify.SessionRenamesDir("/media/Rips/session7/renames"); !ok || id != "session7" {
		t.Fatalf("unexpected result %q %v", id, ok)
	}
	if _, ok := classify.SessionRenamesDir("/media/Rips/session7"); ok {
		t.Fatal("expected session folder without renames to be rejected")
	}
}

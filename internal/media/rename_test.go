package media_test

import (
	"errors"
	"testing"

	"deo/internal/media"
)

func TestOutputFileName(t *testing.T) {
	cases := []struct{ input, want string }{
		{"S01E02 - The Unholy Alliance.mkv", "S01E02 - The Unholy Alliance.mp4"},
		{"S01E04-E05 - The Saga.mkv", "S01E04-E05 - The Saga.mp4"},
		{"Return of the Jedi - {tvdb-698}.mkv", "Return of the Jedi - {tvdb-698}.mp4"},
		{"archive.tar.mkv", "archive.tar.mp4"},
		{"noextension", "noextension.mp4"},
		{".mkv", ".mkv.mp4"},
	}
	for _, tc := range cases {
		input, want := tc.input, tc.want
		got, err := media.OutputFileName(input)
		if err != nil {
			t.Fatalf("OutputFileName(%q) returned error: %v", input, err)
		}
		if got != want {
			t.Fatalf("OutputFileName(%q) = %q, want %q", input, got, want)
		}
		again, _ := media.OutputFileName(input)
		if again != got {
			t.Fatalf("OutputFileName(%q) not deterministic: %q vs %q", input, got, again)
		}
	}
}

func TestOutputFileNameWithoutStem(t *testing.T) {
	for _, input := range []string{"", ".", "..", "dir/"} {
		if _, err := media.OutputFileName(input); !errors.Is(err, media.ErrNoStem) {
			t.Fatalf("OutputFileName(%q): expected ErrNoStem, got %v", input, err)
		}
	}
}

func TestNewSessionOrdersFilesByName(t *testing.T) {
	id := media.MustSessionID("session1")
	mk := func(name string) media.TVSeriesRenameFile {
		f, err := media.NewTVSeriesRenameFile("/rips/session1/renames/"+name, id, name[:6], name)
		if err != nil {
			t.Fatalf("NewTVSeriesRenameFile: %v", err)
		}
		return f
	}
	input := []media.TVSeriesRenameFile{
		mk("S01E03 - C.mkv"),
		mk("S01E01 - A.mkv"),
		mk("S01E02 - B.mkv"),
	}
	session := media.NewSession(id, input)

	files := session.Files()
	want := []string{"S01E01 - A.mkv", "S01E02 - B.mkv", "S01E03 - C.mkv"}
	for i, f := range files {
		if f.MKVFile != want[i] {
			t.Fatalf("position %d: got %q want %q", i, f.MKVFile, want[i])
		}
	}
	if input[0].MKVFile != "S01E03 - C.mkv" {
		t.Fatal("expected NewSession to leave the caller's slice untouched")
	}
	files[0].MKVFile = "mutated"
	if session.Files()[0].MKVFile == "mutated" {
		t.Fatal("expected Files to return a copy")
	}
	if inputs := session.InputFiles(); inputs[1].MP4File != "S01E02 - B.mp4" || inputs[1].Episode != "S01E02" {
		t.Fatalf("unexpected input file projection: %#v", inputs[1])
	}
}

func TestMappingAccessors(t *testing.T) {
	id := media.MustSessionID("session5")
	file, err := media.NewMovieRenameFile("/rips/session5/renames/Star Wars - {tvdb-71}.mkv", id, "Star Wars - {tvdb-71}.mkv")
	if err != nil {
		t.Fatalf("NewMovieRenameFile: %v", err)
	}
	name, err := media.NewMovieName("Star Wars - {tvdb-71}")
	if err != nil {
		t.Fatalf("NewMovieName: %v", err)
	}
	var mapping media.Mapping = media.NewMovieMapping(
		media.NewSession(id, []media.MovieRenameFile{file}),
		media.MovieEncodeDir{Path: "/encodes/Star Wars - {tvdb-71}", MovieName: name, Session: id},
	)
	if mapping.Kind() != media.KindMovie {
		t.Fatalf("unexpected kind %v", mapping.Kind())
	}
	if mapping.SessionID() != id || mapping.FileCount() != 1 {
		t.Fatalf("unexpected mapping: %#v", mapping)
	}
	if mapping.Location() != "Star Wars - {tvdb-71}" {
		t.Fatalf("unexpected location %q", mapping.Location())
	}
	if got := mapping.InputFiles()[0].MP4File; got != "Star Wars - {tvdb-71}.mp4" {
		t.Fatalf("unexpected mp4 name %q", got)
	}
}

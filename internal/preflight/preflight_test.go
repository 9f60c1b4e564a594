package preflight_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/sys/unix"

	"deo/internal/media"
	"deo/internal/preflight"
	"deo/internal/testsupport"
)

func TestRunAllPassesWithStubbedHandBrake(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries())

	results := preflight.RunAll(context.Background(), cfg, "")
	if len(results) != 3 {
		t.Fatalf("expected three results, got %+v", results)
	}
	if failed := preflight.Failed(results); len(failed) != 0 {
		t.Fatalf("expected all checks to pass, got %+v", failed)
	}
	if results[0].Name != "Source directory" || !strings.Contains(results[0].Detail, cfg.Paths.SourceDir) {
		t.Fatalf("unexpected source result %+v", results[0])
	}
}

func TestRunAllReportsMissingPieces(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithHandBrakeBinary("deo-missing-handbrake"))
	cfg.Paths.SourceDir = ""
	if err := os.RemoveAll(cfg.Paths.ProfilesDir); err != nil {
		t.Fatalf("remove profiles: %v", err)
	}

	results := preflight.RunAll(context.Background(), cfg, "")
	failed := preflight.Failed(results)
	if len(failed) != 3 {
		t.Fatalf("expected three failures, got %+v", failed)
	}
	if !strings.Contains(failed[0].Detail, "not configured") {
		t.Fatalf("unexpected source detail %q", failed[0].Detail)
	}
	if !strings.Contains(failed[1].Detail, "does not exist") {
		t.Fatalf("unexpected profiles detail %q", failed[1].Detail)
	}
	if failed[2].Name != "HandBrakeCLI" {
		t.Fatalf("unexpected binary result %+v", failed[2])
	}
}

func TestRunAllSourceOverride(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries())
	override := filepath.Join(t.TempDir(), "elsewhere")

	results := preflight.RunAll(context.Background(), cfg, override)
	if results[0].Passed || !strings.Contains(results[0].Detail, override) {
		t.Fatalf("expected override to be checked, got %+v", results[0])
	}
}

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	testsupport.WriteFile(t, file, "x")

	if r := preflight.CheckDirectoryAccess("dir", dir, unix.R_OK|unix.W_OK|unix.X_OK); !r.Passed || !strings.Contains(r.Detail, "read/write ok") {
		t.Fatalf("expected writable dir to pass, got %+v", r)
	}
	if r := preflight.CheckDirectoryAccess("dir", dir, unix.R_OK); !strings.HasSuffix(r.Detail, "(read ok)") {
		t.Fatalf("unexpected read-only detail %+v", r)
	}
	if r := preflight.CheckDirectoryAccess("file", file, unix.R_OK); r.Passed || !strings.Contains(r.Detail, "is not a directory") {
		t.Fatalf("expected file to fail, got %+v", r)
	}
}

func TestCheckEncodeDirsDeduplicates(t *testing.T) {
	tree := testsupport.NewSourceTree(t)
	season := tree.EncodeDir("Show {tvdb-1}/Season 01")
	missing := filepath.Join(tree.Root, "Encodes", "Gone {tvdb-9}")
	name, err := media.NewMovieName("Gone {tvdb-9}")
	if err != nil {
		t.Fatalf("NewMovieName: %v", err)
	}
	mappings := []media.Mapping{
		media.TVSeriesMapping{ID: media.MustSessionID("session1"), EncodeDir: media.TVSeriesEncodeDir{Path: season, Season: "Show {tvdb-1}/Season 01"}},
		media.TVSeriesMapping{ID: media.MustSessionID("session2"), EncodeDir: media.TVSeriesEncodeDir{Path: season, Season: "Show {tvdb-1}/Season 01"}},
		media.MovieMapping{ID: media.MustSessionID("session3"), EncodeDir: media.MovieEncodeDir{Path: missing, MovieName: name}},
	}

	results := preflight.CheckEncodeDirs(mappings)
	if len(results) != 2 {
		t.Fatalf("expected one result per directory, got %+v", results)
	}
	if !results[0].Passed || results[0].Name != "Show {tvdb-1}/Season 01" {
		t.Fatalf("unexpected season result %+v", results[0])
	}
	if results[1].Passed {
		t.Fatalf("expected missing movie dir to fail, got %+v", results[1])
	}
}

package main

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"deo/internal/services"
	"deo/internal/testsupport"
)

func seedPlanTree(t *testing.T, env *cliTestEnv) string {
	t.Helper()
	env.tree.Rename("session1", "S01E01 - Pilot.mkv")
	env.tree.Rename("session1", "S01E02 - Second.mkv")
	season := env.tree.EncodeDir("Show {tvdb-1}/Season 01")
	env.tree.Marker("session1", season)
	env.tree.Rename("session2", "Heat {tvdb-13}.mkv")
	env.tree.Marker("session2", env.tree.EncodeDir("Heat {tvdb-13}"))
	return season
}

func TestPlanPreviewsCommandsAndSkipsExisting(t *testing.T) {
	env := setupCLITestEnv(t)
	season := seedPlanTree(t, env)
	testsupport.WriteFile(t, filepath.Join(season, "S01E01 - Pilot.mp4"), "done")

	out, _, err := runCLI(t, []string{"plan"}, env.configPath)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	requireContains(t, out, "HandBrakeCLI --preset-import-file")
	requireContains(t, out, "Copy session1 -> Show {tvdb-1}/Season 01 with x265")
	requireContains(t, out, "2 planned, 1 skipped, 0 failed")
	requireNotContains(t, out, "--input '"+filepath.Join(env.tree.RenamesDir("session1"), "S01E01 - Pilot.mkv")+"'")
}

func TestPlanFiltersByKindAndSession(t *testing.T) {
	env := setupCLITestEnv(t)
	seedPlanTree(t, env)

	out, _, err := runCLI(t, []string{"plan", "--kind", "movie", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("plan --kind movie: %v", err)
	}
	var jobs []struct {
		Session string `json:"session"`
		Kind    string `json:"kind"`
		Status  string `json:"status"`
		Command string `json:"command"`
	}
	if err := json.Unmarshal([]byte(out), &jobs); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if len(jobs) != 1 || jobs[0].Session != "session2" || jobs[0].Kind != "movie" || jobs[0].Status != "encoded" {
		t.Fatalf("unexpected jobs %+v", jobs)
	}
	requireContains(t, jobs[0].Command, "--preset 'H.265 MKV 1080p30'")

	out, _, err = runCLI(t, []string{"plan", "--session", "session9"}, env.configPath)
	if err != nil {
		t.Fatalf("plan --session session9: %v", err)
	}
	requireContains(t, out, "No mappings matched the selection")
}

func TestPlanRejectsBadInput(t *testing.T) {
	env := setupCLITestEnv(t)
	seedPlanTree(t, env)

	if _, _, err := runCLI(t, []string{"plan", "--kind", "documentary"}, env.configPath); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation for bad kind, got %v", err)
	}
	if _, _, err := runCLI(t, []string{"plan", "--profile", "slow"}, env.configPath); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown profile, got %v", err)
	}
}

func TestPlanEmptyTree(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"plan"}, env.configPath)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	requireContains(t, out, "Could not find any renames to encode")
}

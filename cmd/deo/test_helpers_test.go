package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"deo/internal/config"
	"deo/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	tree       *testsupport.SourceTree
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	homeDir := filepath.Join(t.TempDir(), "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("DEO_SOURCE_DIR", "")

	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries())
	tree := testsupport.NewSourceTree(t)
	cfg.Paths.SourceDir = tree.Root
	testsupport.WriteProfile(t, cfg.Paths.ProfilesDir, "x265", "H.265 MKV 1080p30")

	configPath := filepath.Join(testsupport.BaseDir(cfg), "deo.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, tree: tree, configPath: configPath}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\nsource_dir = %q\nprofiles_dir = %q\nlog_dir = %q\nlock_path = %q\n\n[handbrake]\nbinary = %q\n\n[watch]\ndebounce_ms = %d\n\n[logging]\nlevel = \"warn\"\n",
		cfg.Paths.SourceDir,
		cfg.Paths.ProfilesDir,
		cfg.Paths.LogDir,
		cfg.Paths.LockPath,
		cfg.HandBrake.Binary,
		cfg.Watch.DebounceMS,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}

package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates path (and its parents) with the given contents.
func WriteFile(t testing.TB, path, contents string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteProfile writes a minimal HandBrake preset export named <name>.json
// into dir whose first preset is presetName.
func WriteProfile(t testing.TB, dir, name, presetName string) string {
	t.Helper()

	path := filepath.Join(dir, name+".json")
	body := fmt.Sprintf(`{"PresetList":[{"PresetName":%q,"VideoEncoder":"x265"}],"VersionMajor":53}`, presetName)
	WriteFile(t, path, body)
	return path
}

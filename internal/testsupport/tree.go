package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// SourceTree builds a Rips/Encodes layout below a temp directory.
type SourceTree struct {
	t    testing.TB
	Root string
}

// NewSourceTree creates an empty tree rooted at a fresh temp directory.
func NewSourceTree(t testing.TB) *SourceTree {
	t.Helper()
	return &SourceTree{t: t, Root: t.TempDir()}
}

// RenamesDir returns Rips/<session>/renames below the root.
func (s *SourceTree) RenamesDir(session string) string {
	return filepath.Join(s.Root, "Rips", session, "renames")
}

// Rename writes an empty rip named name into the session's renames folder.
func (s *SourceTree) Rename(session, name string) string {
	s.t.Helper()
	path := filepath.Join(s.RenamesDir(session), name)
	WriteFile(s.t, path, "")
	return path
}

// EncodeDir creates Encodes/<rel> and returns its absolute path.
func (s *SourceTree) EncodeDir(rel string) string {
	s.t.Helper()
	path := filepath.Join(s.Root, "Encodes", filepath.FromSlash(rel))
	if err := os.MkdirAll(path, 0o755); err != nil {
		s.t.Fatalf("mkdir %s: %v", path, err)
	}
	return path
}

// Marker writes encode_dir.txt for session with the given contents.
func (s *SourceTree) Marker(session, contents string) string {
	s.t.Helper()
	path := filepath.Join(s.RenamesDir(session), "encode_dir.txt")
	WriteFile(s.t, path, contents)
	return path
}

// File writes an arbitrary file relative to the root.
func (s *SourceTree) File(rel, contents string) string {
	s.t.Helper()
	path := filepath.Join(s.Root, filepath.FromSlash(rel))
	WriteFile(s.t, path, contents)
	return path
}

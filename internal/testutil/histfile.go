package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempHistFile writes lines (already newline-joined by the caller's choice)
// to a fresh history file under t.TempDir and returns its path.
func TempHistFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "histfile")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

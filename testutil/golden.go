package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// UpdateEnv names the variable that switches AssertGolden into rewrite mode.
const UpdateEnv = "SESSCOOKIE_UPDATE_GOLDEN"

// UpdateGolden reports whether golden files should be rewritten.
func UpdateGolden() bool {
	return os.Getenv(UpdateEnv) != ""
}

// AssertGolden compares got to the golden file at path.
func AssertGolden(t *testing.T, path string, got []byte) {
	t.Helper()
	if UpdateGolden() {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("golden mkdir: %v", err)
		}
		if err := os.WriteFile(path, got, 0o644); err != nil {
			t.Fatalf("golden write: %v", err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("golden read: %v", err)
	}
	if !bytes.Equal(want, got) {
		t.Fatalf("golden mismatch: %s\nwant: %q\ngot:  %q", path, want, got)
	}
}

package testutil

import (
	"os"
	"testing"

	"github.com/hboehmecke/hbai-mon/internal/layout"
)

const scriptBody = "#!/usr/bin/env python3\n"

// StageTree creates a staging root holding the three monitor scripts at mode 0644
// and the parent directories the installer expects to exist.
// t is the active test; the returned layout is rooted under t.TempDir().
func StageTree(t *testing.T) layout.Layout {
	t.Helper()
	l := layout.Default(t.TempDir())
	for _, dir := range []string{l.ConfigDir, "/usr/local/bin", "/etc/logrotate.d"} {
		if err := os.MkdirAll(l.Physical(dir), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	for _, path := range l.Executables {
		WriteFileMode(t, l.Physical(path), scriptBody, 0o644)
	}
	return l
}

// WriteCredentials writes a credentials file with the given mode into a staged tree.
// t is the active test; l is the staged layout; mode is the exact permission to leave behind.
func WriteCredentials(t *testing.T, l layout.Layout, mode os.FileMode) {
	t.Helper()
	WriteFileMode(t, l.Physical(l.CredentialsPath), "[mysql_hbai]\nhost = db\n", mode)
}

// WriteFileMode writes content to path and pins its mode regardless of umask.
// t is the active test; path is the physical file path.
func WriteFileMode(t *testing.T, path string, content string, mode os.FileMode) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if err := os.Chmod(path, mode); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
}

// ModeOf returns the permission bits of path.
// t is the active test; path is the physical file path.
func ModeOf(t *testing.T, path string) os.FileMode {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	return info.Mode().Perm()
}

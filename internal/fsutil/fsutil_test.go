package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestWriteFileAtomicCreatesAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy")

	if err := WriteFileAtomic(path, []byte("one\n"), 0o644); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("two\n"), 0o644); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "two\n" {
		t.Fatalf("unexpected content %q", data)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Fatalf("expected mode 0644, got %04o", info.Mode().Perm())
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp files to be cleaned up, found %d entries", len(entries))
	}
}

func TestWriteFileAtomicMissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "policy")
	err := WriteFileAtomic(path, []byte("x"), 0o644)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestWriteFileAtomicRenameErrorRemovesTemp(t *testing.T) {
	orig := osRename
	t.Cleanup(func() { osRename = orig })
	osRename = func(string, string) error { return errors.New("rename boom") }

	dir := t.TempDir()
	err := WriteFileAtomic(filepath.Join(dir, "policy"), []byte("x"), 0o644)
	if err == nil {
		t.Fatalf("expected error")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("expected temp file removed, found %d entries", len(entries))
	}
}

func TestReplaceSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "hbai-mon")

	if err := ReplaceSymlink("/etc/hbai-mon/hbai-mon.py", link); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := ReplaceSymlink("/etc/hbai-mon/hbai-mon.py", link); err != nil {
		t.Fatalf("replace symlink: %v", err)
	}
	target, err := os.Readlink(link)
	if err != nil {
		t.Fatalf("readlink: %v", err)
	}
	if target != "/etc/hbai-mon/hbai-mon.py" {
		t.Fatalf("unexpected target %q", target)
	}
}

func TestReplaceSymlinkOverRegularFile(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "hbai-mon")
	if err := os.WriteFile(link, []byte("old"), 0o755); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := ReplaceSymlink("/target", link); err != nil {
		t.Fatalf("replace: %v", err)
	}
	info, err := os.Lstat(link)
	if err != nil {
		t.Fatalf("lstat: %v", err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Fatalf("expected symlink, got mode %v", info.Mode())
	}
}

func TestReplaceSymlinkOverDirectoryFails(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "hbai-mon")
	if err := os.Mkdir(link, 0o755); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := ReplaceSymlink("/target", link); err == nil {
		t.Fatalf("expected error replacing a directory")
	}
	if _, err := os.Lstat(link + ".tmp-" + strconv.Itoa(os.Getpid())); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected temp link removed, got %v", err)
	}
}

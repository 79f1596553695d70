// Package fsutil provides crash-safe replacements for files and symlinks.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hboehmecke/hbai-mon/internal/messages"
)

var (
	osCreateTemp = os.CreateTemp
	osChmod      = os.Chmod
	osRename     = os.Rename
	osSymlink    = os.Symlink
)

// WriteFileAtomic writes data to filename by writing a temp file in the same
// directory and renaming it into place. The final file has exactly perm,
// independent of the process umask. The parent directory must exist.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	tmp, err := osCreateTemp(dir, "."+filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.FsutilCreateTempFmt, filename, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilWriteTempFmt, filename, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilSyncTempFmt, filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.FsutilCloseTempFmt, filename, err)
	}
	if err := osChmod(tmpName, perm); err != nil {
		return fmt.Errorf(messages.FsutilChmodTempFmt, filename, err)
	}
	if err := osRename(tmpName, filename); err != nil {
		return fmt.Errorf(messages.FsutilRenameFmt, tmpName, filename, err)
	}
	committed = true
	return nil
}

// ReplaceSymlink points newname at oldname, replacing any file or symlink
// already at newname. The swap is a rename, so readers never observe a
// missing link. Replacing a directory fails.
func ReplaceSymlink(oldname string, newname string) error {
	tmpName := newname + ".tmp-" + strconv.Itoa(os.Getpid())
	_ = os.Remove(tmpName)
	if err := osSymlink(oldname, tmpName); err != nil {
		return fmt.Errorf(messages.FsutilSymlinkFmt, tmpName, err)
	}
	if err := osRename(tmpName, newname); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf(messages.FsutilRenameFmt, tmpName, newname, err)
	}
	return nil
}

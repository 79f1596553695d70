package install

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/hboehmecke/hbai-mon/internal/fsutil"
)

// System abstracts the filesystem operations the installer performs so tests
// can inject faults without permission tricks.
type System interface {
	Lstat(name string) (os.FileInfo, error)
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	Chmod(name string, mode os.FileMode) error
	ReplaceSymlink(oldname string, newname string) error
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
	LockDir(path string) (func() error, error)
	Geteuid() int
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// Lstat returns a FileInfo describing the named file without following symlinks.
func (RealSystem) Lstat(name string) (os.FileInfo, error) {
	return os.Lstat(name)
}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Chmod changes the mode of the named file, following symlinks.
func (RealSystem) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(name, mode)
}

// ReplaceSymlink atomically points newname at oldname.
func (RealSystem) ReplaceSymlink(oldname string, newname string) error {
	return fsutil.ReplaceSymlink(oldname, newname)
}

// WriteFileAtomic writes data to a file atomically by writing to a temp file and renaming.
func (RealSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}

// LockDir takes an exclusive advisory lock on a directory.
func (RealSystem) LockDir(path string) (func() error, error) {
	lock, err := acquireDirLock(path)
	if err != nil {
		return nil, err
	}
	return lock.release, nil
}

// Geteuid returns the effective user id of the process.
func (RealSystem) Geteuid() int {
	return unix.Geteuid()
}

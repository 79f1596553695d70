package install

import (
	"os"
	"path/filepath"
)

// faultSystem is a test helper that allows deterministic error injection for the
// installer System interface without chmod-based permission tricks.
type faultSystem struct {
	base       System
	statErrs   map[string]error
	lstatErrs  map[string]error
	mkdirErrs  map[string]error
	chmodErrs  map[string]error
	linkErrs   map[string]error
	writeErrs  map[string]error
	lockErr    error
	euid       int
	chmodCalls []string
}

func newFaultSystem(base System) *faultSystem {
	return &faultSystem{
		base:      base,
		statErrs:  map[string]error{},
		lstatErrs: map[string]error{},
		mkdirErrs: map[string]error{},
		chmodErrs: map[string]error{},
		linkErrs:  map[string]error{},
		writeErrs: map[string]error{},
	}
}

func normalizePath(path string) string {
	return filepath.Clean(path)
}

func (f *faultSystem) Lstat(name string) (os.FileInfo, error) {
	if err, ok := f.lstatErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Lstat(name)
}

func (f *faultSystem) Stat(name string) (os.FileInfo, error) {
	if err, ok := f.statErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Stat(name)
}

func (f *faultSystem) MkdirAll(path string, perm os.FileMode) error {
	if err, ok := f.mkdirErrs[normalizePath(path)]; ok {
		return err
	}
	return f.base.MkdirAll(path, perm)
}

func (f *faultSystem) Chmod(name string, mode os.FileMode) error {
	f.chmodCalls = append(f.chmodCalls, normalizePath(name))
	if err, ok := f.chmodErrs[normalizePath(name)]; ok {
		return err
	}
	return f.base.Chmod(name, mode)
}

func (f *faultSystem) ReplaceSymlink(oldname string, newname string) error {
	if err, ok := f.linkErrs[normalizePath(newname)]; ok {
		return err
	}
	return f.base.ReplaceSymlink(oldname, newname)
}

func (f *faultSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	if err, ok := f.writeErrs[normalizePath(filename)]; ok {
		return err
	}
	return f.base.WriteFileAtomic(filename, data, perm)
}

func (f *faultSystem) LockDir(path string) (func() error, error) {
	if f.lockErr != nil {
		return nil, f.lockErr
	}
	return f.base.LockDir(path)
}

func (f *faultSystem) Geteuid() int {
	return f.euid
}

package storage

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
)

// FileLock is an exclusive advisory flock on a side file.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock returns an unlocked lock on path. The file is created on Lock.
func NewFileLock(path string) *FileLock {
	return &FileLock{path: path}
}

// LockPath is the lock file guarding the data file at path.
func LockPath(path string) string {
	return path + ".lock"
}

// Lock blocks until the exclusive lock is held.
func (l *FileLock) Lock() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return err
	}
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		f.Close()
		return err
	}
	l.file = f
	return nil
}

// Unlock releases the lock. Unlocking an unheld lock is a no-op.
func (l *FileLock) Unlock() error {
	if l.file == nil {
		return nil
	}
	f := l.file
	l.file = nil
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_UN); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// UpdateJSON runs a locked read-modify-write of the JSON file at path.
// update receives the current contents decoded into v, or v untouched when
// the file does not exist yet.
func UpdateJSON[T any](path string, v *T, update func(*T)) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	lock := NewFileLock(LockPath(path))
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	if err := LoadJSON(path, v); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	update(v)
	return SaveJSON(path, v)
}

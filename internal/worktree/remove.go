package worktree

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// FS deletes worktree directories.
type FS interface {
	RemoveAll(path string) error
}

type osFS struct{}

func (osFS) RemoveAll(path string) error { return os.RemoveAll(path) }

// OSFS removes directories from the real filesystem.
var OSFS FS = osFS{}

// Removal is the outcome of deleting one worktree.
type Removal struct {
	Record Record
	// Err is set when the directory could not be removed. Metadata is left
	// untouched in that case.
	Err error
	// PruneErr is set when the directory is gone but the backend metadata
	// could not be pruned.
	PruneErr error
}

// Removed reports whether the worktree directory is gone.
func (r Removal) Removed() bool {
	return r.Err == nil
}

// Remove deletes the linked worktree r: first its directory, then, only if
// that succeeded, the backend's metadata entry.
func Remove(ctx context.Context, b Backend, fsys FS, r Record) Removal {
	res := Removal{Record: r}
	switch {
	case r.Primary:
		res.Err = ErrPrimary
		return res
	case r.Path == "":
		res.Err = fmt.Errorf("%w: worktree %s has no path", ErrRemoveFailed, r.Label)
		return res
	}

	if err := fsys.RemoveAll(r.Path); err != nil {
		res.Err = fmt.Errorf("%w %s: %w", ErrRemoveFailed, r.Path, err)
		return res
	}
	if err := b.PruneWorktree(ctx, r.Label); err != nil {
		res.PruneErr = fmt.Errorf("prune worktree metadata %s: %w", r.Label, err)
	}
	return res
}

// Failure joins both error fields; nil when everything succeeded.
func (r Removal) Failure() error {
	return errors.Join(r.Err, r.PruneErr)
}

package worktree

import (
	"errors"
	"fmt"
)

var (
	// ErrEnumerate means the backend could not list worktrees at all.
	ErrEnumerate = errors.New("cannot enumerate worktrees")
	// ErrNoOrigin means the repository has no "origin" remote.
	ErrNoOrigin = errors.New(`no "origin" remote configured (add one with: git remote add origin <url>)`)
	// ErrRemoteRefNotFound means origin/<branch> does not exist locally.
	ErrRemoteRefNotFound = errors.New("remote branch not found (run git fetch origin first)")
	// ErrBranchExists means the requested local branch name is taken.
	ErrBranchExists = errors.New("branch already exists")
	// ErrCheckoutBlocked means local changes prevent switching branches.
	ErrCheckoutBlocked = errors.New("uncommitted changes block checkout (commit or stash them first)")
	// ErrConfigWrite means the tracking configuration could not be written.
	ErrConfigWrite = errors.New("cannot write branch config")
	// ErrNoUpstream means a branch has no tracking configuration.
	ErrNoUpstream = errors.New("no upstream configured")
	// ErrPrimary is returned when an operation targets the primary worktree.
	ErrPrimary = errors.New("the main worktree cannot be removed")
	// ErrRemoveFailed means a worktree directory could not be deleted.
	ErrRemoveFailed = errors.New("cannot remove worktree directory")
)

// PartialError reports an operation whose first half succeeded.
// Done describes what is in place, Err why the rest failed.
type PartialError struct {
	Done string
	Err  error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("%s, but %v", e.Done, e.Err)
}

func (e *PartialError) Unwrap() error {
	return e.Err
}

// IsPartial reports whether err is a partial failure.
func IsPartial(err error) bool {
	var pe *PartialError
	return errors.As(err, &pe)
}

package git

import (
	"errors"
	"os/exec"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = errors.New("git not found: please install git (https://git-scm.com)")

// ErrNotRepository means the directory is not inside a git working tree.
var ErrNotRepository = errors.New("not inside a git repository")

// ErrBare means the repository has no working tree.
var ErrBare = errors.New("bare repositories have no worktrees to manage")

// CheckGit verifies that git is available in PATH. Linked worktree
// operations need it.
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// Package cmd runs external commands with stderr captured into errors.
//
// Failures carry the command's trimmed stderr as their message, so a failing
// git call surfaces git's own explanation:
//
//	if err := cmd.RunContext(ctx, repoDir, "git", "worktree", "prune"); err != nil {
//	    return fmt.Errorf("prune worktrees: %w", err)
//	}
//
// Every invocation is traced through the context logger when verbose.
// A cancelled context yields the context's error unchanged.
//
// gp reads and writes refs, config and status through go-git; only the
// linked-worktree lifecycle, which go-git does not implement, goes through
// the git binary via this package.
package cmd

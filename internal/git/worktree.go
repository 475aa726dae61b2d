package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphi011/gp/internal/worktree"
)

// Worktrees lists the linked worktrees of the repository in the order
// git reports them. The primary worktree is not included.
func (r *Repository) Worktrees(ctx context.Context) ([]worktree.LinkedEntry, error) {
	output, err := outputGit(ctx, r.root, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}

	entries := parsePorcelain(string(output))
	if len(entries) > 0 {
		entries = entries[1:] // the first entry is always the main worktree
	}

	labels := r.worktreeLabels()
	for i := range entries {
		if label, ok := labels[entries[i].Path]; ok {
			entries[i].Label = label
		} else {
			entries[i].Label = filepath.Base(entries[i].Path)
		}
	}
	return entries, nil
}

// parsePorcelain parses the output of git worktree list --porcelain.
// Labels are left empty.
func parsePorcelain(output string) []worktree.LinkedEntry {
	var entries []worktree.LinkedEntry
	var current *worktree.LinkedEntry

	for _, line := range strings.Split(output, "\n") {
		switch {
		case strings.HasPrefix(line, "worktree "):
			entries = append(entries, worktree.LinkedEntry{Path: strings.TrimPrefix(line, "worktree ")})
			current = &entries[len(entries)-1]
		case current == nil:
			continue
		case line == "prunable" || strings.HasPrefix(line, "prunable "):
			current.Prunable = true
		case line == "locked" || strings.HasPrefix(line, "locked "):
			current.Locked = true
		}
	}
	return entries
}

// worktreeLabels maps worktree paths to their metadata directory names by
// reading .git/worktrees/<name>/gitdir. Unreadable entries are skipped.
func (r *Repository) worktreeLabels() map[string]string {
	dir := filepath.Join(r.gitDir, "worktrees")
	names, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	labels := make(map[string]string, len(names))
	for _, n := range names {
		content, err := os.ReadFile(filepath.Join(dir, n.Name(), "gitdir"))
		if err != nil {
			continue
		}
		// gitdir holds <worktree>/.git
		path := filepath.Dir(filepath.Clean(strings.TrimSpace(string(content))))
		labels[path] = n.Name()
	}
	return labels
}

// AddWorktree checks out the existing branch into a new worktree at path.
// Missing parent directories are created.
func (r *Repository) AddWorktree(ctx context.Context, path, branch string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return runGit(ctx, r.root, "worktree", "add", path, branch)
}

// PruneWorktree deletes the metadata of the linked worktree label. The
// worktree directory must already be gone and the worktree must not be
// locked.
func (r *Repository) PruneWorktree(ctx context.Context, label string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if label == "" || label != filepath.Base(label) || label == "." || label == ".." {
		return fmt.Errorf("invalid worktree name %q", label)
	}

	meta := filepath.Join(r.gitDir, "worktrees", label)
	if _, err := os.Stat(meta); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if _, err := os.Stat(filepath.Join(meta, "locked")); err == nil {
		return fmt.Errorf("worktree %s is locked", label)
	}

	gitdir, err := os.ReadFile(filepath.Join(meta, "gitdir"))
	if err == nil {
		if _, err := os.Stat(strings.TrimSpace(string(gitdir))); err == nil {
			return fmt.Errorf("worktree %s still exists on disk", label)
		}
	}
	return os.RemoveAll(meta)
}

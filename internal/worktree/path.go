package worktree

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// ResolvePath returns the location of a new worktree named name inside
// root. Slashes in name create nested directories, so feature/x-1 becomes
// <root>/feature/x-1. Names that would escape root are rejected.
func ResolvePath(root, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("worktree name is empty")
	}
	if filepath.IsAbs(name) {
		return "", fmt.Errorf("worktree name %q must be relative", name)
	}
	if slices.Contains(strings.Split(filepath.ToSlash(name), "/"), "..") {
		return "", fmt.Errorf("worktree name %q must not contain ..", name)
	}
	return filepath.Join(root, name), nil
}

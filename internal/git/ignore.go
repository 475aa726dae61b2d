package git

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// excludePatterns collects the ignore rules git applies beyond the
// worktree's .gitignore files: the system and global core.excludesfile
// (or $XDG_CONFIG_HOME/git/ignore when none is set) and the shared
// <common>/info/exclude. go-git only reads .git/info/exclude, which a
// linked worktree does not have.
func excludePatterns(commonDir string) []gitignore.Pattern {
	root := osfs.New("/")
	var ps []gitignore.Pattern
	if system, err := gitignore.LoadSystemPatterns(root); err == nil {
		ps = append(ps, system...)
	}
	global, err := gitignore.LoadGlobalPatterns(root)
	if err == nil && len(global) == 0 {
		global = readPatternFile(defaultExcludesFile())
	}
	ps = append(ps, global...)
	if commonDir != "" {
		ps = append(ps, readPatternFile(filepath.Join(commonDir, "info", "exclude"))...)
	}
	return ps
}

// defaultExcludesFile is where git looks when core.excludesfile is unset.
func defaultExcludesFile() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git", "ignore")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "git", "ignore")
}

// readPatternFile parses a gitignore-format file rooted at the worktree.
// A missing file has no patterns.
func readPatternFile(path string) []gitignore.Pattern {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var ps []gitignore.Pattern
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, nil))
	}
	return ps
}

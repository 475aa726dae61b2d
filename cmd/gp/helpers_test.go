package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/gp/internal/config"
	"github.com/raphi011/gp/internal/log"
	"github.com/raphi011/gp/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// runGit runs git in dir and returns its trimmed output.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
	return strings.TrimSpace(string(out))
}

func configureRepo(t *testing.T, dir string) {
	t.Helper()
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test User")
	runGit(t, dir, "config", "commit.gpgsign", "false")
}

func commitFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(name+"\n"), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	runGit(t, dir, "add", name)
	runGit(t, dir, "commit", "-m", "add "+name)
}

// setupRepo creates a clone of a bare origin with main and feature/x
// pushed. Returns the clone's path.
func setupRepo(t *testing.T) string {
	t.Helper()
	tmp := resolvePath(t, t.TempDir())
	origin := filepath.Join(tmp, "origin.git")
	repo := filepath.Join(tmp, "repo")

	runGit(t, tmp, "init", "--bare", "-b", "main", origin)
	runGit(t, tmp, "clone", origin, repo)
	configureRepo(t, repo)
	commitFile(t, repo, "README.md")
	runGit(t, repo, "push", "-u", "origin", "HEAD")
	runGit(t, repo, "checkout", "-b", "feature/x")
	commitFile(t, repo, "x.txt")
	runGit(t, repo, "push", "-u", "origin", "feature/x")
	runGit(t, repo, "checkout", "main")
	return repo
}

// addWorktree creates a linked worktree next to repo on a new branch
// tracking origin/<base>.
func addWorktree(t *testing.T, repo, name, branch, base string) string {
	t.Helper()
	path := filepath.Join(filepath.Dir(repo), name)
	runGit(t, repo, "worktree", "add", "--track", "-b", branch, path, "origin/"+base)
	return path
}

// runGP runs gp with args from dir and returns stdout and stderr.
func runGP(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cfg := config.Default()
	ctx := config.WithWorkDir(context.Background(), dir)
	ctx = config.WithConfig(ctx, &cfg)
	ctx = log.WithLogger(ctx, log.New(&stderr, false, false))
	ctx = output.WithPrinter(ctx, &stdout)

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

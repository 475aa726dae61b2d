package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"

	"github.com/raphi011/gp/internal/worktree"
)

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks for %s: %v", tmpDir, err)
	}
	return resolved
}

// configureTestRepo sets git user config and disables GPG signing.
func configureTestRepo(t *testing.T, repoPath string) {
	t.Helper()
	for _, args := range [][]string{
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
	} {
		mustGit(t, repoPath, args...)
	}
}

// mustGit runs git in dir and fails the test on error.
func mustGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := outputGit(context.Background(), dir, args...)
	if err != nil {
		t.Fatalf("git %v: %v", args, err)
	}
	return strings.TrimSpace(string(out))
}

// commitFile writes name and commits it.
func commitFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	mustGit(t, dir, "add", name)
	mustGit(t, dir, "commit", "-m", "update "+name)
}

// setupTestRepo creates a git repo with main branch, initial commit, and git config.
// Returns the resolved repo path.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	repoPath := filepath.Join(resolveTempDir(t), "test-repo")

	mustGit(t, "", "init", "-b", "main", repoPath)
	configureTestRepo(t, repoPath)
	commitFile(t, repoPath, "README.md", "# test\n")
	return repoPath
}

// setupTestRepoWithOrigin creates a repo with a bare origin remote that has
// a main and a feature/x branch. Returns (repoPath, originPath).
func setupTestRepoWithOrigin(t *testing.T) (string, string) {
	t.Helper()
	tmpDir := resolveTempDir(t)

	originPath := filepath.Join(tmpDir, "origin.git")
	repoPath := filepath.Join(tmpDir, "repo")

	// -b main ensures consistent default branch across git versions
	mustGit(t, "", "init", "--bare", "-b", "main", originPath)
	mustGit(t, "", "clone", originPath, repoPath)
	configureTestRepo(t, repoPath)

	commitFile(t, repoPath, "README.md", "# test\n")
	mustGit(t, repoPath, "push", "-u", "origin", "HEAD")

	mustGit(t, repoPath, "checkout", "-b", "feature/x")
	commitFile(t, repoPath, "x.txt", "x\n")
	mustGit(t, repoPath, "push", "origin", "feature/x")
	mustGit(t, repoPath, "checkout", "main")
	mustGit(t, repoPath, "branch", "-D", "feature/x")
	mustGit(t, repoPath, "remote", "set-head", "origin", "main")

	return repoPath, originPath
}

func openTestRepo(t *testing.T, dir string) *Repository {
	t.Helper()
	repo, err := Open(context.Background(), dir)
	if err != nil {
		t.Fatalf("Open(%s) failed: %v", dir, err)
	}
	return repo
}

func TestMainRepoPath(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	wtPath := filepath.Join(filepath.Dir(repoPath), "test-worktree")
	mustGit(t, repoPath, "worktree", "add", "-b", "test-branch", wtPath)

	mainPath, err := MainRepoPath(wtPath)
	if err != nil {
		t.Errorf("MainRepoPath from worktree failed: %v", err)
	}
	if mainPath != repoPath {
		t.Errorf("expected %s, got %s", repoPath, mainPath)
	}

	mainPathFromRepo, err := MainRepoPath(repoPath)
	if err != nil {
		t.Errorf("MainRepoPath from main repo failed: %v", err)
	}
	if mainPathFromRepo != repoPath {
		t.Errorf("expected %s, got %s", repoPath, mainPathFromRepo)
	}

	if _, err := MainRepoPath(t.TempDir()); err == nil {
		t.Error("expected error for non-git directory")
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("subdirectory", func(t *testing.T) {
		t.Parallel()
		repoPath := setupTestRepo(t)
		sub := filepath.Join(repoPath, "a", "b")
		if err := os.MkdirAll(sub, 0o755); err != nil {
			t.Fatal(err)
		}
		repo := openTestRepo(t, sub)
		if repo.Root() != repoPath {
			t.Errorf("Root() = %q, want %q", repo.Root(), repoPath)
		}
		if repo.GitDir() != filepath.Join(repoPath, ".git") {
			t.Errorf("GitDir() = %q", repo.GitDir())
		}
	})

	t.Run("linked worktree opens main repository", func(t *testing.T) {
		t.Parallel()
		repoPath := setupTestRepo(t)
		wtPath := filepath.Join(filepath.Dir(repoPath), "linked")
		mustGit(t, repoPath, "worktree", "add", "-b", "linked", wtPath)

		repo := openTestRepo(t, wtPath)
		if repo.Root() != repoPath {
			t.Errorf("Root() = %q, want %q", repo.Root(), repoPath)
		}
		head, err := repo.Head(context.Background())
		if err != nil {
			t.Fatalf("Head() failed: %v", err)
		}
		if head.Branch != "main" {
			t.Errorf("Head().Branch = %q, want main", head.Branch)
		}
	})

	t.Run("submodule is its own repository", func(t *testing.T) {
		t.Parallel()
		tmpDir := resolveTempDir(t)
		lib := filepath.Join(tmpDir, "lib")
		mustGit(t, "", "init", "-b", "main", lib)
		configureTestRepo(t, lib)
		commitFile(t, lib, "lib.go", "package lib\n")

		super := filepath.Join(tmpDir, "super")
		mustGit(t, "", "init", "-b", "main", super)
		configureTestRepo(t, super)
		commitFile(t, super, "README.md", "# super\n")
		mustGit(t, super, "-c", "protocol.file.allow=always", "submodule", "add", lib, "child")

		child := filepath.Join(super, "child")
		repo := openTestRepo(t, child)
		if repo.Root() != child {
			t.Errorf("Root() = %q, want the submodule %q", repo.Root(), child)
		}
		if want := filepath.Join(super, ".git", "modules", "child"); repo.GitDir() != want {
			t.Errorf("GitDir() = %q, want %q", repo.GitDir(), want)
		}

		// a linked worktree of the submodule resolves back to it
		wtPath := filepath.Join(tmpDir, "child-wt")
		mustGit(t, child, "worktree", "add", "-b", "topic", wtPath)
		if got := openTestRepo(t, wtPath).Root(); got != child {
			t.Errorf("Root() from submodule worktree = %q, want %q", got, child)
		}
	})

	t.Run("separate git dir", func(t *testing.T) {
		t.Parallel()
		tmpDir := resolveTempDir(t)
		work := filepath.Join(tmpDir, "work")
		store := filepath.Join(tmpDir, "store.git")
		mustGit(t, "", "init", "-b", "main", "--separate-git-dir", store, work)
		configureTestRepo(t, work)
		commitFile(t, work, "README.md", "# test\n")

		repo := openTestRepo(t, work)
		if repo.Root() != work || repo.GitDir() != store {
			t.Errorf("Open() = root %q gitdir %q, want %q and %q", repo.Root(), repo.GitDir(), work, store)
		}
		head, err := repo.Head(context.Background())
		if err != nil || head.Branch != "main" {
			t.Errorf("Head() = %+v, %v; want main", head, err)
		}
	})

	t.Run("not a repository", func(t *testing.T) {
		t.Parallel()
		_, err := Open(context.Background(), resolveTempDir(t))
		if !errors.Is(err, ErrNotRepository) {
			t.Errorf("Open() error = %v, want ErrNotRepository", err)
		}
	})

	t.Run("bare", func(t *testing.T) {
		t.Parallel()
		bare := filepath.Join(resolveTempDir(t), "bare.git")
		mustGit(t, "", "init", "--bare", bare)
		_, err := Open(context.Background(), bare)
		if !errors.Is(err, ErrBare) {
			t.Errorf("Open() error = %v, want ErrBare", err)
		}
	})
}

func TestHead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("branch", func(t *testing.T) {
		t.Parallel()
		repoPath := setupTestRepo(t)
		head, err := openTestRepo(t, repoPath).Head(ctx)
		if err != nil {
			t.Fatalf("Head() failed: %v", err)
		}
		if head.Branch != "main" || head.Hash.IsZero() {
			t.Errorf("Head() = %+v, want main with a commit", head)
		}
		if want := mustGit(t, repoPath, "rev-parse", "HEAD"); head.Hash.String() != want {
			t.Errorf("Head().Hash = %s, want %s", head.Hash, want)
		}
	})

	t.Run("detached", func(t *testing.T) {
		t.Parallel()
		repoPath := setupTestRepo(t)
		mustGit(t, repoPath, "checkout", "--detach")
		head, err := openTestRepo(t, repoPath).Head(ctx)
		if err != nil {
			t.Fatalf("Head() failed: %v", err)
		}
		if !head.Detached() {
			t.Errorf("Head() = %+v, want detached", head)
		}
	})

	t.Run("unborn", func(t *testing.T) {
		t.Parallel()
		repoPath := filepath.Join(resolveTempDir(t), "empty")
		mustGit(t, "", "init", "-b", "trunk", repoPath)
		head, err := openTestRepo(t, repoPath).Head(ctx)
		if err != nil {
			t.Fatalf("Head() failed: %v", err)
		}
		if head.Branch != "trunk" || !head.Hash.IsZero() {
			t.Errorf("Head() = %+v, want unborn trunk", head)
		}
	})
}

func TestRemotes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repoPath, _ := setupTestRepoWithOrigin(t)
	repo := openTestRepo(t, repoPath)

	ok, err := repo.HasRemote(ctx, "origin")
	if err != nil || !ok {
		t.Errorf("HasRemote(origin) = %v, %v; want true", ok, err)
	}
	ok, err = repo.HasRemote(ctx, "upstream")
	if err != nil || ok {
		t.Errorf("HasRemote(upstream) = %v, %v; want false", ok, err)
	}

	branches, err := repo.RemoteBranches(ctx, "origin")
	if err != nil {
		t.Fatalf("RemoteBranches failed: %v", err)
	}
	if got := strings.Join(branches, ","); got != "feature/x,main" {
		t.Errorf("RemoteBranches = %v, want [feature/x main] without HEAD", branches)
	}

	hash, err := repo.ResolveRemoteBranch(ctx, "origin", "feature/x")
	if err != nil {
		t.Fatalf("ResolveRemoteBranch failed: %v", err)
	}
	if want := mustGit(t, repoPath, "rev-parse", "origin/feature/x"); hash.String() != want {
		t.Errorf("ResolveRemoteBranch = %s, want %s", hash, want)
	}

	_, err = repo.ResolveRemoteBranch(ctx, "origin", "nope")
	if !errors.Is(err, worktree.ErrRemoteRefNotFound) {
		t.Errorf("ResolveRemoteBranch(nope) error = %v, want ErrRemoteRefNotFound", err)
	}
}

func TestBranches(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repoPath := setupTestRepo(t)
	repo := openTestRepo(t, repoPath)

	head, err := repo.Head(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if ok, err := repo.BranchExists(ctx, "topic"); err != nil || ok {
		t.Errorf("BranchExists(topic) = %v, %v; want false", ok, err)
	}
	if err := repo.CreateBranch(ctx, "topic", head.Hash); err != nil {
		t.Fatalf("CreateBranch failed: %v", err)
	}
	if ok, err := repo.BranchExists(ctx, "topic"); err != nil || !ok {
		t.Errorf("BranchExists(topic) = %v, %v; want true", ok, err)
	}
	if got := mustGit(t, repoPath, "branch", "--show-current"); got != "main" {
		t.Errorf("CreateBranch moved HEAD to %q", got)
	}

	if err := repo.CreateBranch(ctx, "bogus", plumbing.NewHash("1234567890123456789012345678901234567890")); err == nil {
		t.Error("CreateBranch with a missing commit should fail")
	}

	if err := repo.Checkout(ctx, "topic"); err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	if got := mustGit(t, repoPath, "branch", "--show-current"); got != "topic" {
		t.Errorf("current branch = %q, want topic", got)
	}
}

func TestSetUpstream(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repoPath, _ := setupTestRepoWithOrigin(t)
	repo := openTestRepo(t, repoPath)

	mustGit(t, repoPath, "config", "branch.topic.description", "keep me")
	if err := repo.SetUpstream(ctx, "topic", worktree.UpstreamFor("feature/x")); err != nil {
		t.Fatalf("SetUpstream failed: %v", err)
	}

	for key, want := range map[string]string{
		"branch.topic.remote":      "origin",
		"branch.topic.merge":       "refs/heads/feature/x",
		"branch.topic.description": "keep me",
	} {
		if got := mustGit(t, repoPath, "config", "--get", key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}

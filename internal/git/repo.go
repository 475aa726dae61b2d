package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/raphi011/gp/internal/log"
	"github.com/raphi011/gp/internal/worktree"
)

// Repository is a handle on the main repository of a working tree.
// It implements worktree.Backend.
type Repository struct {
	repo   *gogit.Repository
	root   string // primary working directory
	gitDir string // common git directory
}

var _ worktree.Backend = (*Repository)(nil)

// Open opens the repository containing dir. If dir is inside a linked
// worktree, the main repository is opened.
func Open(ctx context.Context, dir string) (*Repository, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		// DetectDotGit only looks for a .git entry; dir itself may be bare.
		if bare, bareErr := gogit.PlainOpen(dir); bareErr == nil {
			repo, err = bare, nil
		} else {
			return nil, fmt.Errorf("%s: %w", dir, ErrNotRepository)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", dir, err)
	}

	wt, err := repo.Worktree()
	if errors.Is(err, gogit.ErrIsBareRepository) {
		return nil, fmt.Errorf("%s: %w", dir, ErrBare)
	}
	if err != nil {
		return nil, fmt.Errorf("open working tree at %s: %w", dir, err)
	}
	root := wt.Filesystem.Root()

	loc, err := locate(root)
	if err != nil {
		return nil, err
	}
	if loc.main != root {
		log.FromContext(ctx).Debug("linked worktree, using main repository", "worktree", root, "main", loc.main)
		repo, err = gogit.PlainOpenWithOptions(loc.main, &gogit.PlainOpenOptions{EnableDotGitCommonDir: true})
		if err != nil {
			return nil, fmt.Errorf("open main repository at %s: %w", loc.main, err)
		}
	}

	return &Repository{
		repo:   repo,
		root:   loc.main,
		gitDir: loc.commonDir,
	}, nil
}

// location is where a working tree's repository lives on disk.
type location struct {
	main      string // primary working directory
	commonDir string // git directory shared by all worktrees
}

// locate resolves the primary working directory and common git directory
// for the working tree rooted at path. Only a gitdir under
// <common>/worktrees/ marks a linked worktree; submodules and
// --separate-git-dir repositories are their own primary.
func locate(path string) (location, error) {
	gitFile := filepath.Join(path, ".git")
	info, err := os.Stat(gitFile)
	if err != nil {
		return location{}, fmt.Errorf("%s: %w", path, ErrNotRepository)
	}
	if info.IsDir() {
		return location{main: path, commonDir: gitFile}, nil
	}

	gitdir, err := readGitdirFile(gitFile)
	if err != nil {
		return location{}, err
	}
	common := commonDir(gitdir)
	if filepath.Base(filepath.Dir(gitdir)) != "worktrees" {
		return location{main: path, commonDir: common}, nil
	}

	main, err := mainWorktree(common)
	if err != nil {
		return location{}, err
	}
	return location{main: main, commonDir: common}, nil
}

// commonDir reads gitdir/commondir, falling back to gitdir itself.
func commonDir(gitdir string) string {
	raw, err := os.ReadFile(filepath.Join(gitdir, "commondir"))
	if err != nil {
		return gitdir
	}
	dir := strings.TrimSpace(string(raw))
	if dir == "" {
		return gitdir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(gitdir, dir)
	}
	return filepath.Clean(dir)
}

// mainWorktree finds the primary working directory of the repository whose
// common git directory is common: its parent when it is a .git directory,
// otherwise core.worktree.
func mainWorktree(common string) (string, error) {
	if filepath.Base(common) == ".git" {
		return filepath.Dir(common), nil
	}
	raw, err := os.ReadFile(filepath.Join(common, "config"))
	if err != nil {
		return "", fmt.Errorf("read config of %s: %w", common, err)
	}
	cfg := config.NewConfig()
	if err := cfg.Unmarshal(raw); err != nil {
		return "", fmt.Errorf("parse config of %s: %w", common, err)
	}
	wt := cfg.Core.Worktree
	if wt == "" {
		return "", fmt.Errorf("cannot locate the main worktree of %s", common)
	}
	if !filepath.IsAbs(wt) {
		wt = filepath.Join(common, wt)
	}
	return filepath.Clean(wt), nil
}

// MainRepoPath returns the primary working directory for the worktree
// rooted at path. For the primary worktree itself it returns path.
func MainRepoPath(path string) (string, error) {
	loc, err := locate(path)
	if err != nil {
		return "", err
	}
	return loc.main, nil
}

// readGitdirFile parses a worktree's .git file ("gitdir: <path>") and
// returns the absolute, cleaned gitdir.
func readGitdirFile(gitFile string) (string, error) {
	content, err := os.ReadFile(gitFile)
	if err != nil {
		return "", fmt.Errorf("failed to read .git file: %w", err)
	}

	// Only the first line matters
	line := strings.TrimSpace(string(content))
	if idx := strings.Index(line, "\n"); idx != -1 {
		line = strings.TrimSpace(line[:idx])
	}
	if !strings.HasPrefix(line, "gitdir: ") {
		return "", fmt.Errorf("invalid .git file format: expected 'gitdir: <path>'")
	}
	gitdir := strings.TrimPrefix(line, "gitdir: ")
	if gitdir == "" {
		return "", fmt.Errorf("invalid .git file format: empty gitdir path")
	}

	if !filepath.IsAbs(gitdir) {
		gitdir = filepath.Join(filepath.Dir(gitFile), gitdir)
	}
	return filepath.Clean(gitdir), nil
}

// Root returns the primary working directory.
func (r *Repository) Root() string {
	return r.root
}

// GitDir returns the common git directory, normally <root>/.git.
func (r *Repository) GitDir() string {
	return r.gitDir
}

// Head reports the primary working directory's HEAD.
func (r *Repository) Head(ctx context.Context) (worktree.Head, error) {
	if err := ctx.Err(); err != nil {
		return worktree.Head{}, err
	}
	return readHead(r.repo)
}

// readHead reads HEAD without requiring its target to exist, so an unborn
// branch yields its name with a zero hash.
func readHead(repo *gogit.Repository) (worktree.Head, error) {
	ref, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return worktree.Head{}, fmt.Errorf("read HEAD: %w", err)
	}
	if ref.Type() != plumbing.SymbolicReference {
		return worktree.Head{Hash: ref.Hash()}, nil
	}

	target := ref.Target()
	if !target.IsBranch() {
		return worktree.Head{}, fmt.Errorf("HEAD points at %s, not a branch", target)
	}
	head := worktree.Head{Branch: target.Short()}
	tip, err := repo.Reference(target, true)
	switch {
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// unborn
	case err != nil:
		return worktree.Head{}, fmt.Errorf("resolve %s: %w", target, err)
	default:
		head.Hash = tip.Hash()
	}
	return head, nil
}

// Open returns a view of the worktree rooted at path.
func (r *Repository) Open(ctx context.Context, path string) (worktree.View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == r.root {
		return &view{repo: r.repo, path: path, commonDir: r.gitDir}, nil
	}
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{EnableDotGitCommonDir: true})
	if err != nil {
		return nil, fmt.Errorf("open worktree %s: %w", path, err)
	}
	return &view{repo: repo, path: path, commonDir: r.gitDir}, nil
}

// HasRemote reports whether a remote with the given name is configured.
func (r *Repository) HasRemote(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := r.repo.Remote(name)
	if errors.Is(err, gogit.ErrRemoteNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("look up remote %s: %w", name, err)
	}
	return true, nil
}

// RemoteBranches lists the short names of remote-tracking branches of
// remote, sorted by name. The symbolic <remote>/HEAD is excluded.
func (r *Repository) RemoteBranches(ctx context.Context, remote string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	iter, err := r.repo.References()
	if err != nil {
		return nil, fmt.Errorf("list references: %w", err)
	}
	defer iter.Close()

	prefix := "refs/remotes/" + remote + "/"
	var branches []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().String()
		if !strings.HasPrefix(name, prefix) {
			return nil
		}
		short := strings.TrimPrefix(name, prefix)
		if short == "HEAD" {
			return nil
		}
		branches = append(branches, short)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list references: %w", err)
	}
	sort.Strings(branches)
	return branches, nil
}

// ResolveRemoteBranch returns the commit refs/remotes/<remote>/<branch>
// points at.
func (r *Repository) ResolveRemoteBranch(ctx context.Context, remote, branch string) (plumbing.Hash, error) {
	if err := ctx.Err(); err != nil {
		return plumbing.ZeroHash, err
	}
	ref, err := r.repo.Reference(plumbing.NewRemoteReferenceName(remote, branch), true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return plumbing.ZeroHash, worktree.ErrRemoteRefNotFound
	}
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return ref.Hash(), nil
}

// BranchExists reports whether refs/heads/<name> exists.
func (r *Repository) BranchExists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := r.repo.Reference(plumbing.NewBranchReferenceName(name), false)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateBranch creates refs/heads/<name> at commit at. HEAD is not touched.
func (r *Repository) CreateBranch(ctx context.Context, name string, at plumbing.Hash) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := r.repo.CommitObject(at); err != nil {
		return fmt.Errorf("commit %s: %w", at, err)
	}
	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), at)
	return r.repo.Storer.SetReference(ref)
}

// Checkout switches the primary working directory to branch.
func (r *Repository) Checkout(ctx context.Context, branch string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	wt, err := r.repo.Worktree()
	if err != nil {
		return err
	}
	err = wt.Checkout(&gogit.CheckoutOptions{Branch: plumbing.NewBranchReferenceName(branch)})
	if errors.Is(err, gogit.ErrUnstagedChanges) {
		return worktree.ErrCheckoutBlocked
	}
	return err
}

// SetUpstream sets branch.<branch>.remote and branch.<branch>.merge in a
// single config write. Other keys of the branch section are kept.
func (r *Repository) SetUpstream(ctx context.Context, branch string, up worktree.Upstream) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cfg, err := r.repo.Config()
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	b, ok := cfg.Branches[branch]
	if !ok {
		b = &config.Branch{Name: branch}
		cfg.Branches[branch] = b
	}
	b.Remote = up.Remote
	b.Merge = up.Ref
	if err := b.Validate(); err != nil {
		return err
	}
	return r.repo.Storer.SetConfig(cfg)
}

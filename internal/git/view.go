package git

import (
	"context"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/raphi011/gp/internal/worktree"
)

// view is a single worktree opened as its own go-git repository. Refs and
// config come from the common git directory, HEAD and index from the
// worktree's own.
type view struct {
	repo      *gogit.Repository
	path      string
	commonDir string
}

func (v *view) status(ctx context.Context) (gogit.Status, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	wt, err := v.repo.Worktree()
	if err != nil {
		return nil, err
	}
	wt.Excludes = append(wt.Excludes, excludePatterns(v.commonDir)...)
	st, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("status of %s: %w", v.path, err)
	}
	return st, nil
}

// WorkingTree reports StateDirty for any modified, staged or untracked file.
// Files ignored by .gitignore, info/exclude or core.excludesfile do not count.
func (v *view) WorkingTree(ctx context.Context) (worktree.TreeState, error) {
	st, err := v.status(ctx)
	if err != nil {
		return worktree.StateUnknown, err
	}
	if st.IsClean() {
		return worktree.StateClean, nil
	}
	return worktree.StateDirty, nil
}

// TrackedChanges reports changes that a branch switch could clobber.
func (v *view) TrackedChanges(ctx context.Context) (bool, error) {
	st, err := v.status(ctx)
	if err != nil {
		return false, err
	}
	for _, fs := range st {
		if tracked(fs.Staging) || tracked(fs.Worktree) {
			return true, nil
		}
	}
	return false, nil
}

func tracked(c gogit.StatusCode) bool {
	return c != gogit.Unmodified && c != gogit.Untracked
}

func (v *view) Head(ctx context.Context) (worktree.Head, error) {
	if err := ctx.Err(); err != nil {
		return worktree.Head{}, err
	}
	return readHead(v.repo)
}

func (v *view) LocalBranch(ctx context.Context, name string) (plumbing.Hash, error) {
	if err := ctx.Err(); err != nil {
		return plumbing.ZeroHash, err
	}
	ref, err := v.repo.Reference(plumbing.NewBranchReferenceName(name), true)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("branch %s: %w", name, err)
	}
	return ref.Hash(), nil
}

func (v *view) Upstream(ctx context.Context, branch string) (worktree.Upstream, error) {
	if err := ctx.Err(); err != nil {
		return worktree.Upstream{}, err
	}
	cfg, err := v.repo.Config()
	if err != nil {
		return worktree.Upstream{}, fmt.Errorf("read config: %w", err)
	}
	b, ok := cfg.Branches[branch]
	if !ok || b.Remote == "" || b.Merge == "" {
		return worktree.Upstream{}, worktree.ErrNoUpstream
	}
	return worktree.Upstream{Remote: b.Remote, Ref: b.Merge}, nil
}

// ResolveUpstream resolves the remote-tracking ref of up. A remote of "."
// tracks a local branch.
func (v *view) ResolveUpstream(ctx context.Context, up worktree.Upstream) (plumbing.Hash, error) {
	if err := ctx.Err(); err != nil {
		return plumbing.ZeroHash, err
	}
	name := up.TrackingRef()
	if up.Remote == "." {
		name = up.Ref
	}
	ref, err := v.repo.Reference(name, true)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("upstream %s: %w", up, err)
	}
	return ref.Hash(), nil
}

// AheadBehind walks the history of both commits. Ahead counts commits
// reachable from local only, behind those reachable from upstream only.
func (v *view) AheadBehind(ctx context.Context, local, upstream plumbing.Hash) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	if local == upstream {
		return 0, 0, nil
	}

	lc, err := v.repo.CommitObject(local)
	if err != nil {
		return 0, 0, fmt.Errorf("commit %s: %w", local, err)
	}
	uc, err := v.repo.CommitObject(upstream)
	if err != nil {
		return 0, 0, fmt.Errorf("commit %s: %w", upstream, err)
	}

	upSet, err := ancestors(uc, nil)
	if err != nil {
		return 0, 0, err
	}
	localSet, err := ancestors(lc, nil)
	if err != nil {
		return 0, 0, err
	}
	aheadSet, err := ancestors(lc, upSet)
	if err != nil {
		return 0, 0, err
	}
	behindSet, err := ancestors(uc, localSet)
	if err != nil {
		return 0, 0, err
	}
	return len(aheadSet), len(behindSet), nil
}

// ancestors returns every commit reachable from c, stopping at commits in
// stop. Stop commits are not included.
func ancestors(c *object.Commit, stop map[plumbing.Hash]bool) (map[plumbing.Hash]bool, error) {
	seen := make(map[plumbing.Hash]bool)
	iter := object.NewCommitPreorderIter(c, stop, nil)
	err := iter.ForEach(func(c *object.Commit) error {
		seen[c.Hash] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk history from %s: %w", c.Hash, err)
	}
	return seen, nil
}

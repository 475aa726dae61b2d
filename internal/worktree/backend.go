package worktree

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=backend.go -destination=mocks/backend.gen.go -package=mocks

import (
	"context"

	"github.com/go-git/go-git/v5/plumbing"
)

// Backend is a handle on one repository: its primary working directory,
// its refs and config, and its linked-worktree metadata.
type Backend interface {
	// Root returns the primary working directory.
	Root() string
	// Head reports the primary working directory's HEAD.
	Head(ctx context.Context) (Head, error)
	// Worktrees enumerates linked worktrees in backend order.
	Worktrees(ctx context.Context) ([]LinkedEntry, error)
	// Open returns an independent view of the worktree rooted at path.
	Open(ctx context.Context, path string) (View, error)

	HasRemote(ctx context.Context, remote string) (bool, error)
	// RemoteBranches lists short branch names under refs/remotes/<remote>/,
	// excluding HEAD.
	RemoteBranches(ctx context.Context, remote string) ([]string, error)
	ResolveRemoteBranch(ctx context.Context, remote, branch string) (plumbing.Hash, error)
	BranchExists(ctx context.Context, name string) (bool, error)
	CreateBranch(ctx context.Context, name string, at plumbing.Hash) error
	// Checkout switches the primary working directory to branch.
	Checkout(ctx context.Context, branch string) error
	AddWorktree(ctx context.Context, path, branch string) error
	// SetUpstream writes both tracking keys of branch in one config update.
	SetUpstream(ctx context.Context, branch string, up Upstream) error
	// PruneWorktree drops the metadata of a worktree whose directory is gone.
	PruneWorktree(ctx context.Context, label string) error
}

// View is a read-only view of a single worktree.
type View interface {
	// WorkingTree reports local changes, counting untracked files and
	// ignoring ignored ones. On error the state is StateUnknown.
	WorkingTree(ctx context.Context) (TreeState, error)
	// TrackedChanges reports staged or unstaged changes to tracked files.
	TrackedChanges(ctx context.Context) (bool, error)
	Head(ctx context.Context) (Head, error)
	LocalBranch(ctx context.Context, name string) (plumbing.Hash, error)
	// Upstream returns ErrNoUpstream when the branch has no tracking config.
	Upstream(ctx context.Context, branch string) (Upstream, error)
	ResolveUpstream(ctx context.Context, up Upstream) (plumbing.Hash, error)
	// AheadBehind counts commits reachable from local but not upstream
	// (ahead) and the reverse (behind).
	AheadBehind(ctx context.Context, local, upstream plumbing.Hash) (ahead, behind int, err error)
}

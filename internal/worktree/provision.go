package worktree

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5/plumbing"

	"github.com/raphi011/gp/internal/log"
)

// Request describes a local branch to create from origin/<RemoteBranch>.
type Request struct {
	RemoteBranch string
	NewBranch    string
	// TargetPath, when set, is where a new worktree is created instead of
	// switching the primary working directory.
	TargetPath string
}

// Provisioned describes a successfully created branch.
type Provisioned struct {
	Branch   string
	Commit   plumbing.Hash
	Upstream Upstream
	Path     string // worktree root; the primary root for in-place checkouts
}

// BranchName returns the conventional name for a branch created from
// remoteBranch: <remoteBranch>-<timestamp>.
func BranchName(remoteBranch, timestamp string) string {
	return remoteBranch + "-" + timestamp
}

// CreateBranchAndCheckout creates req.NewBranch at origin/<req.RemoteBranch>,
// switches the primary working directory to it and configures tracking.
// Precondition failures (missing remote branch, name collision, local
// changes) leave the repository untouched.
func CreateBranchAndCheckout(ctx context.Context, b Backend, req Request) (Provisioned, error) {
	at, err := prepare(ctx, b, req)
	if err != nil {
		return Provisioned{}, err
	}

	if err := checkoutReady(ctx, b); err != nil {
		return Provisioned{}, err
	}

	if err := b.CreateBranch(ctx, req.NewBranch, at); err != nil {
		return Provisioned{}, fmt.Errorf("create branch %s: %w", req.NewBranch, err)
	}
	log.FromContext(ctx).Debug("created branch", "branch", req.NewBranch, "at", at.String())

	if err := b.Checkout(ctx, req.NewBranch); err != nil {
		return Provisioned{}, &PartialError{
			Done: fmt.Sprintf("created branch %s", req.NewBranch),
			Err:  fmt.Errorf("checkout %s: %w", req.NewBranch, err),
		}
	}

	up := UpstreamFor(req.RemoteBranch)
	p := Provisioned{Branch: req.NewBranch, Commit: at, Upstream: up, Path: b.Root()}
	if err := b.SetUpstream(ctx, req.NewBranch, up); err != nil {
		return p, &PartialError{
			Done: fmt.Sprintf("switched to new branch %s", req.NewBranch),
			Err:  fmt.Errorf("%w for %s: %w", ErrConfigWrite, req.NewBranch, err),
		}
	}
	return p, nil
}

// CreateBranchAndWorktree creates req.NewBranch at origin/<req.RemoteBranch>
// without touching the primary HEAD, adds a worktree for it at
// req.TargetPath and configures tracking.
//
// Branch and worktree creation are not atomic. If the worktree cannot be
// created the branch stays and a *PartialError is returned.
func CreateBranchAndWorktree(ctx context.Context, b Backend, req Request) (Provisioned, error) {
	if req.TargetPath == "" {
		return Provisioned{}, errors.New("no worktree path given")
	}
	if _, err := os.Lstat(req.TargetPath); err == nil {
		return Provisioned{}, fmt.Errorf("worktree path %s already exists", req.TargetPath)
	}

	at, err := prepare(ctx, b, req)
	if err != nil {
		return Provisioned{}, err
	}

	if err := b.CreateBranch(ctx, req.NewBranch, at); err != nil {
		return Provisioned{}, fmt.Errorf("create branch %s: %w", req.NewBranch, err)
	}
	log.FromContext(ctx).Debug("created branch", "branch", req.NewBranch, "at", at.String())

	if err := b.AddWorktree(ctx, req.TargetPath, req.NewBranch); err != nil {
		return Provisioned{}, &PartialError{
			Done: fmt.Sprintf("created branch %s", req.NewBranch),
			Err:  fmt.Errorf("create worktree at %s: %w", req.TargetPath, err),
		}
	}

	up := UpstreamFor(req.RemoteBranch)
	p := Provisioned{Branch: req.NewBranch, Commit: at, Upstream: up, Path: req.TargetPath}
	if err := b.SetUpstream(ctx, req.NewBranch, up); err != nil {
		return p, &PartialError{
			Done: fmt.Sprintf("created worktree %s on branch %s", req.TargetPath, req.NewBranch),
			Err:  fmt.Errorf("%w for %s: %w", ErrConfigWrite, req.NewBranch, err),
		}
	}
	return p, nil
}

// prepare resolves the remote branch and checks the new name is free.
func prepare(ctx context.Context, b Backend, req Request) (plumbing.Hash, error) {
	if req.RemoteBranch == "" || req.NewBranch == "" {
		return plumbing.ZeroHash, errors.New("remote branch and new branch name are required")
	}
	if err := plumbing.NewBranchReferenceName(req.NewBranch).Validate(); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("invalid branch name %q: %w", req.NewBranch, err)
	}

	at, err := b.ResolveRemoteBranch(ctx, DefaultRemote, req.RemoteBranch)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("%s/%s: %w", DefaultRemote, req.RemoteBranch, err)
	}

	exists, err := b.BranchExists(ctx, req.NewBranch)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("look up branch %s: %w", req.NewBranch, err)
	}
	if exists {
		return plumbing.ZeroHash, fmt.Errorf("%s: %w", req.NewBranch, ErrBranchExists)
	}
	return at, nil
}

// checkoutReady refuses to switch branches over local changes to tracked
// files. Untracked files do not block a switch.
func checkoutReady(ctx context.Context, b Backend) error {
	v, err := b.Open(ctx, b.Root())
	if err != nil {
		return fmt.Errorf("open %s: %w", b.Root(), err)
	}
	blocked, err := v.TrackedChanges(ctx)
	if err != nil {
		return fmt.Errorf("status of %s: %w", b.Root(), err)
	}
	if blocked {
		return ErrCheckoutBlocked
	}
	return nil
}

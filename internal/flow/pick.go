package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/raphi011/gp/internal/freq"
	"github.com/raphi011/gp/internal/log"
	"github.com/raphi011/gp/internal/output"
	"github.com/raphi011/gp/internal/ui/prompt"
	"github.com/raphi011/gp/internal/worktree"
)

// Pick actions.
const (
	ActionBranch   = "branch"
	ActionWorktree = "worktree"
	ActionCancel   = "cancel"
)

// ErrNoRemoteBranches means origin has no remote-tracking branches yet.
var ErrNoRemoteBranches = errors.New("no remote branches found on origin (run git fetch origin, or gp --fetch)")

var pickKeys = []prompt.Key{
	{Keys: []string{"enter"}, Label: "↵", Help: "create branch", Action: ActionBranch},
	{Keys: []string{"w", "W", "ctrl+enter"}, Label: "w / ctrl+↵", Help: "create worktree", Action: ActionWorktree},
	{Keys: []string{"esc", "q", "ctrl+c"}, Label: "esc", Help: "cancel", Action: ActionCancel},
}

// Pick lets the user choose a branch on origin and creates a local branch
// (checked out in place) or a new worktree from it.
func (c *Controller) Pick(ctx context.Context) error {
	l := log.FromContext(ctx)

	ok, err := c.Repo.HasRemote(ctx, worktree.DefaultRemote)
	if err != nil {
		return fmt.Errorf("look up remote %s: %w", worktree.DefaultRemote, err)
	}
	if !ok {
		return worktree.ErrNoOrigin
	}

	if c.Fetcher != nil {
		l.Printf("Fetching %s...\n", worktree.DefaultRemote)
		if err := c.Fetcher.Fetch(ctx, worktree.DefaultRemote); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.Warnf("fetch failed, using local remote-tracking branches: %v", err)
		}
	}

	branches, err := c.Repo.RemoteBranches(ctx, worktree.DefaultRemote)
	if err != nil {
		return fmt.Errorf("list branches of %s: %w", worktree.DefaultRemote, err)
	}
	if len(branches) == 0 {
		return ErrNoRemoteBranches
	}
	if c.Freq != nil {
		freq.Rank(branches, c.Freq.Count)
	}
	l.Printf("Found %d remote branches (most used first)\n\n", len(branches))

	idx, err := c.Prompt.Select("Base branch on origin:", branches)
	if errors.Is(err, ErrCancelled) {
		return cancelled(ctx)
	}
	if err != nil {
		return err
	}
	branch := branches[idx]

	action, err := c.Prompt.Action(pickKeys)
	if errors.Is(err, ErrCancelled) || action == ActionCancel {
		return cancelled(ctx)
	}
	if err != nil {
		return err
	}

	c.recordPick(ctx, branch)
	switch action {
	case ActionBranch:
		return c.createBranch(ctx, branch)
	case ActionWorktree:
		return c.createWorktree(ctx, branch)
	default:
		return fmt.Errorf("unknown action %q", action)
	}
}

// recordPick counts a pick. Failing to persist only affects ordering.
func (c *Controller) recordPick(ctx context.Context, branch string) {
	if c.Freq == nil {
		return
	}
	c.Freq.Increment(branch)
	if err := c.Freq.Persist(); err != nil {
		log.FromContext(ctx).Warnf("save branch frequencies: %v", err)
	}
}

func (c *Controller) createBranch(ctx context.Context, remoteBranch string) error {
	name := worktree.BranchName(remoteBranch, c.config().Timestamp(c.now()))
	log.FromContext(ctx).Printf("\nCreating branch %s...\n", name)

	p, err := worktree.CreateBranchAndCheckout(ctx, c.Repo, worktree.Request{
		RemoteBranch: remoteBranch,
		NewBranch:    name,
	})
	if err = settle(ctx, p, err); err != nil {
		return err
	}

	out := output.FromContext(ctx)
	out.Printf("✓ Switched to new branch %s\n", p.Branch)
	out.Printf("  tracking %s\n", p.Upstream)
	return nil
}

func (c *Controller) createWorktree(ctx context.Context, remoteBranch string) error {
	l := log.FromContext(ctx)
	cfg := c.config()

	def := worktree.BranchName(remoteBranch, cfg.Timestamp(c.now()))
	name, err := c.Prompt.Input("Worktree name:", def)
	if errors.Is(err, ErrCancelled) {
		return cancelled(ctx)
	}
	if err != nil {
		return err
	}
	if name == "" {
		name = def
	}

	path, err := worktree.ResolvePath(cfg.WorktreeRoot(c.Repo.Root()), name)
	if err != nil {
		return err
	}
	l.Printf("\nCreating worktree %s\n  path: %s\n", name, path)

	p, err := worktree.CreateBranchAndWorktree(ctx, c.Repo, worktree.Request{
		RemoteBranch: remoteBranch,
		NewBranch:    name,
		TargetPath:   path,
	})
	if err = settle(ctx, p, err); err != nil {
		return err
	}

	out := output.FromContext(ctx)
	out.Printf("✓ Created worktree\n")
	out.Printf("  branch: %s  tracking %s\n", p.Branch, p.Upstream)
	out.Printf("  path:   %s\n", p.Path)

	enter, err := c.Prompt.Confirm("cd into the worktree?", true)
	if errors.Is(err, ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}
	if !enter {
		return nil
	}
	return c.enter(ctx, p.Path)
}

// settle turns a partial failure that still produced a usable branch into
// a warning.
func settle(ctx context.Context, p worktree.Provisioned, err error) error {
	if err == nil {
		return nil
	}
	if worktree.IsPartial(err) && p.Branch != "" {
		log.FromContext(ctx).Warnf("%v", err)
		return nil
	}
	return err
}

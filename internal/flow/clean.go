package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/raphi011/gp/internal/log"
	"github.com/raphi011/gp/internal/output"
	"github.com/raphi011/gp/internal/ui/static"
	"github.com/raphi011/gp/internal/worktree"
)

// CleanOptions controls [Controller.Clean].
type CleanOptions struct {
	// DryRun shows the plan without removing anything.
	DryRun bool
	// Yes skips the batch confirmation.
	Yes bool
}

// Clean removes every linked worktree that holds no local work after one
// confirmation. Worktrees that fail evaluation are listed with the reason
// and kept.
func (c *Controller) Clean(ctx context.Context, opts CleanOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	l.Printf("Checking worktrees...\n\n")
	plan, err := worktree.Scan(ctx, c.Repo)
	if err != nil {
		return err
	}
	if plan.Empty() {
		out.Println("This repository has no linked worktrees.")
		return nil
	}

	out.Print(static.PlanTable(plan))
	if len(plan.Eligible) == 0 {
		out.Println("Nothing to clean.")
		return nil
	}
	if opts.DryRun {
		out.Printf("Would remove %d worktree(s).\n", len(plan.Eligible))
		return nil
	}

	if !opts.Yes {
		ok, err := c.Prompt.Confirm(fmt.Sprintf("Delete the %d worktree(s) marked remove?", len(plan.Eligible)), false)
		if err != nil && !errors.Is(err, ErrCancelled) {
			return err
		}
		if !ok {
			return cancelled(ctx)
		}
	}

	res := worktree.Clean(ctx, c.Repo, c.fs(), plan.Eligible, func(rm worktree.Removal) {
		report(ctx, rm)
	})
	out.Printf("\nRemoved %d worktree(s).\n", res.Removed())
	if n := res.Failed(); n > 0 {
		return fmt.Errorf("%d worktree(s) could not be removed", n)
	}
	return nil
}

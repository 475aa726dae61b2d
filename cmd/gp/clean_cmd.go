package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gp/internal/flow"
)

func newCleanCmd() *cobra.Command {
	var opts flow.CleanOptions

	cmd := &cobra.Command{
		Use:     "clean",
		Short:   "Remove worktrees that hold no local work",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Remove every linked worktree that holds no local work.

A worktree is removed only if it has no uncommitted or untracked files,
is on a branch with an upstream, and has no commits the upstream lacks.
All other worktrees are kept and listed with the reason. Branches are
never deleted.`,
		Example: `  gp clean            # show the plan, confirm, remove
  gp clean --dry-run  # show the plan only
  gp clean --yes      # remove without asking`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !opts.DryRun && !opts.Yes {
				if err := requireTerminal(); err != nil {
					return err
				}
			}
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			return s.controller(ctx).Clean(ctx, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Show what would be removed")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Remove without confirmation")
	cmd.MarkFlagsMutuallyExclusive("dry-run", "yes")

	return cmd
}

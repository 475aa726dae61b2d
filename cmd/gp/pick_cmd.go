package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newPickCmd() *cobra.Command {
	var fetch bool

	cmd := &cobra.Command{
		Use:     "pick",
		Short:   "Create a branch or worktree from a branch on origin",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Create a branch or worktree from a branch on origin.

This is what gp runs without a subcommand. Branches are listed most used
first; type to filter, then press enter to create a branch and switch to
it, or w to create a worktree instead.

New branches are named <branch>-<timestamp> and track origin/<branch>.`,
		Example: `  gp pick          # pick from origin's branches
  gp pick --fetch  # fetch origin first`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd.Context(), fetch)
		},
	}

	cmd.Flags().BoolVarP(&fetch, "fetch", "f", false, "Fetch origin before listing branches")

	return cmd
}

func runPick(ctx context.Context, fetch bool) error {
	if err := requireTerminal(); err != nil {
		return err
	}
	s, err := openSession(ctx)
	if err != nil {
		return err
	}

	c := s.controller(ctx)
	if fetch || s.cfg.Fetch {
		c.Fetcher = s.repo
	}
	return c.Pick(ctx)
}

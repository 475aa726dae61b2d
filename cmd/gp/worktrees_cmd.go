package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gp/internal/output"
	"github.com/raphi011/gp/internal/ui/static"
	"github.com/raphi011/gp/internal/worktree"
)

func newWorktreesCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:     "w",
		Short:   "Browse worktrees: enter or delete them",
		Aliases: []string{"worktrees"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Browse the repository's worktrees.

Select a worktree, then press enter to open a shell in it or d to delete
it. The main worktree cannot be deleted. Deleting asks for confirmation
and warns when the worktree has uncommitted changes.

The shell is the configured shell, $SHELL, or sh. Exit it to return.`,
		Example: `  gp w         # interactive
  gp w --list  # print the worktrees`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if list {
				s, err := openSession(ctx)
				if err != nil {
					return err
				}
				records, err := worktree.List(ctx, s.repo)
				if err != nil {
					return err
				}
				output.FromContext(ctx).Print(static.WorktreeTable(records))
				return nil
			}

			if err := requireTerminal(); err != nil {
				return err
			}
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			return s.controller(ctx).Browse(ctx)
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "Print the worktrees without prompting")

	return cmd
}

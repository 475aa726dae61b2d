package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/gp/internal/log"
	"github.com/raphi011/gp/internal/output"
	"github.com/raphi011/gp/internal/worktree"
)

func newPathCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "path <worktree>",
		Short:   "Print the path of a worktree",
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Print the path of a worktree.

The worktree is matched by name first, then by branch. "(main)" names the
main worktree.`,
		Example: `  cd "$(gp path feature/x-20240101120000)"
  gp path --copy review`,
		ValidArgsFunction: completeWorktrees,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			records, err := worktree.List(ctx, s.repo)
			if err != nil {
				return err
			}
			r, ok := worktree.Find(records, args[0])
			if !ok {
				return fmt.Errorf("worktree not found: %s", args[0])
			}

			if copyToClipboard {
				if err := clipboard.WriteAll(r.Path); err != nil {
					log.FromContext(ctx).Warnf("failed to copy to clipboard: %v", err)
				}
			}
			output.FromContext(ctx).Println(r.Path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "Copy path to clipboard")

	return cmd
}

// completeWorktrees offers worktree names and branches of the current
// repository.
func completeWorktrees(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	records, err := worktree.List(ctx, s.repo)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	seen := map[string]bool{}
	var matches []string
	for _, r := range records {
		for _, c := range []string{r.Label, r.Branch} {
			if c == worktree.DetachedBranch || c == worktree.UnknownBranch || seen[c] {
				continue
			}
			if strings.HasPrefix(c, toComplete) {
				seen[c] = true
				matches = append(matches, c+"\t"+r.Path)
			}
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

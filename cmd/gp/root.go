package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/gp/internal/config"
	"github.com/raphi011/gp/internal/git"
	"github.com/raphi011/gp/internal/log"
	"github.com/raphi011/gp/internal/output"
	"github.com/raphi011/gp/internal/ui/styles"
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// skipsGitCheck lists commands that work without git or a repository.
var skipsGitCheck = map[string]bool{
	"completion": true,
	"__complete": true,
	"help":       true,
	"config":     true,
	"init":       true,
	"show":       true,
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		quiet   bool
		fetch   bool
	)

	cmd := &cobra.Command{
		Use:   "gp",
		Short: "Pick a remote branch, work on it in a branch or worktree",
		Long: `gp picks a branch on origin and creates a local branch from it,
either checked out in place or in a new worktree.

Without a subcommand gp lists origin's branches (most used first) and asks
what to create:

  enter          create <branch>-<timestamp> and switch to it
  w, ctrl+enter  create a worktree for it and optionally cd into it
  esc, q         cancel`,
		Example: `  gp                # pick a branch
  gp --fetch        # fetch origin first
  gp w              # browse, enter or delete worktrees
  gp clean          # remove worktrees without local work`,
		Args:                       cobra.NoArgs,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Re-create the logger now that the flags are parsed.
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			cmd.SetContext(log.WithLogger(ctx, log.New(l.Writer(), verbose, quiet)))

			if skipsGitCheck[cmd.Name()] {
				return nil
			}
			return git.CheckGit()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd.Context(), fetch)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands and debug output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output except warnings")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	cmd.Flags().BoolVarP(&fetch, "fetch", "f", false, "Fetch origin before listing branches")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	cmd.AddCommand(newPickCmd())
	cmd.AddCommand(newWorktreesCmd())
	cmd.AddCommand(newCleanCmd())
	cmd.AddCommand(newPathCmd())

	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	styles.Init(cfg.Theme)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// stderr for diagnostics, stdout for primary data
	ctx = log.WithLogger(ctx, log.New(os.Stderr, false, false))
	ctx = output.WithPrinter(ctx, os.Stdout)
	ctx = config.WithConfig(ctx, &cfg)

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'gp -h' for help")
		cancel()
		os.Exit(1)
	}
}

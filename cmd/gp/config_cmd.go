package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/raphi011/gp/internal/config"
	"github.com/raphi011/gp/internal/git"
	"github.com/raphi011/gp/internal/log"
	"github.com/raphi011/gp/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage gp configuration.

Global config: ~/.config/gp/config.toml (or $GP_CONFIG)
Local config:  .gp.toml in the repository root`,
		Example: `  gp config init   # Create default global config
  gp config show   # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  gp config init      # Create global config
  gp config init -f   # Overwrite existing config
  gp config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			if stdout {
				out.Print(config.DefaultFile())
				return nil
			}
			path, err := config.Init(force)
			if err != nil {
				return fmt.Errorf("%w (use -f to overwrite)", err)
			}
			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration as TOML.

Inside a repository this is the global config merged with .gp.toml and
environment overrides; elsewhere the global config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			if cfg == nil {
				d := config.Default()
				cfg = &d
			}

			dir := config.WorkDirFromContext(ctx)
			if repo, err := git.Open(ctx, dir); err == nil {
				if cfg, err = config.ForRepo(cfg, repo.Root()); err != nil {
					return err
				}
			} else {
				log.FromContext(ctx).Debug("not in a repository, showing global config", "dir", dir)
			}

			return toml.NewEncoder(output.FromContext(ctx).Writer()).Encode(cfg)
		},
	}
}

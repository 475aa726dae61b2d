// Package config handles loading and validation of gp configuration.
//
// Configuration is read from ~/.config/gp/config.toml (or $GP_CONFIG),
// overlaid by an optional .gp.toml in the repository root, with
// environment variable overrides on top.
//
// # Configuration Sources (highest priority first)
//
//   - GP_WORKTREE_DIR, GP_SHELL env vars
//   - .gp.toml in the repository root (see [LoadLocal])
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - worktree_dir: base directory for new worktrees (absolute or ~/...)
//   - timestamp_format: layout of the <branch>-<timestamp> suffix
//   - shell: program started when entering a worktree
//   - fetch: fetch origin before offering remote branches
//   - freq_file: location of the pick counter
//   - theme: prompt colors
//
// # Path Validation
//
// Directory paths must be absolute or start with ~ (no relative paths like "."
// or "..") to avoid confusion about the working directory.
package config

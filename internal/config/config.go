package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultTimestampFormat is the layout appended to picked branch names.
const DefaultTimestampFormat = "20060102150405"

// Config holds the gp configuration.
type Config struct {
	WorktreeDir     string `toml:"worktree_dir"`     // empty: parent of the repository root
	TimestampFormat string `toml:"timestamp_format"` // Go time layout
	Shell           string `toml:"shell"`            // empty: $SHELL, then sh
	Fetch           bool   `toml:"fetch"`            // fetch origin before listing branches
	FreqFile        string `toml:"freq_file"`        // empty: <git dir>/branch-picker-freq.json
	Theme           string `toml:"theme"`            // one of ValidThemeNames; empty: default
}

// ValidThemeNames lists the accepted values of the theme key.
var ValidThemeNames = []string{"default", "dracula", "nord", "none"}

// Default returns the default configuration.
func Default() Config {
	return Config{TimestampFormat: DefaultTimestampFormat}
}

// Path returns the config file location: $GP_CONFIG or ~/.config/gp/config.toml.
func Path() (string, error) {
	if p := os.Getenv("GP_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gp", "config.toml"), nil
}

// Load reads the config file from [Path].
// A missing file yields Default(); an invalid one is an error.
// Environment overrides are applied later by [ForRepo].
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates a single config file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// ApplyEnv overlays GP_WORKTREE_DIR and GP_SHELL.
func ApplyEnv(cfg Config) (Config, error) {
	if dir := os.Getenv("GP_WORKTREE_DIR"); dir != "" {
		cfg.WorktreeDir = dir
	}
	if sh := os.Getenv("GP_SHELL"); sh != "" {
		cfg.Shell = sh
	}
	if err := cfg.normalize(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	if err := ValidatePath(c.WorktreeDir, "worktree_dir"); err != nil {
		return err
	}
	if err := ValidatePath(c.FreqFile, "freq_file"); err != nil {
		return err
	}

	var err error
	if c.WorktreeDir, err = expandPath(c.WorktreeDir); err != nil {
		return fmt.Errorf("expand worktree_dir: %w", err)
	}
	if c.FreqFile, err = expandPath(c.FreqFile); err != nil {
		return fmt.Errorf("expand freq_file: %w", err)
	}

	if c.Theme != "" && !slices.Contains(ValidThemeNames, c.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", c.Theme, strings.Join(ValidThemeNames, ", "))
	}

	if c.TimestampFormat == "" {
		c.TimestampFormat = DefaultTimestampFormat
	}
	return validateTimestampFormat(c.TimestampFormat)
}

// WorktreeRoot returns the directory new worktrees are created in for a
// repository rooted at repoRoot.
func (c *Config) WorktreeRoot(repoRoot string) string {
	if c.WorktreeDir != "" {
		return c.WorktreeDir
	}
	return filepath.Dir(repoRoot)
}

// Timestamp formats t with the configured layout.
func (c *Config) Timestamp(t time.Time) string {
	layout := c.TimestampFormat
	if layout == "" {
		layout = DefaultTimestampFormat
	}
	return t.Format(layout)
}

// ValidatePath checks that path is absolute or starts with ~.
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) (string, error) {
	switch {
	case path == "":
		return "", nil
	case path == "~":
		return os.UserHomeDir()
	case len(path) >= 2 && path[:2] == "~/":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

const defaultConfig = `# gp configuration

# Directory new worktrees are created in. Must be absolute or start with ~.
# Defaults to the parent directory of the repository.
# worktree_dir = "~/src/worktrees"

# Go time layout appended to picked branch names (<branch>-<timestamp>).
# timestamp_format = "20060102150405"

# Shell started when entering a worktree. Defaults to $SHELL, then sh.
# shell = "/bin/zsh"

# Fetch origin before listing remote branches.
# fetch = false

# Where pick counts are stored. Defaults to <git dir>/branch-picker-freq.json.
# freq_file = "~/.local/state/gp/freq.json"

# Prompt colors: default, dracula, nord or none.
# theme = "default"
`

// DefaultFile returns the commented default config file written by [Init].
func DefaultFile() string {
	return defaultConfig
}

// Init writes a commented default config file to [Path] and returns its location.
// An existing file is only replaced when force is set.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-repo override file in the repository root.
const LocalConfigFileName = ".gp.toml"

// LocalConfig holds per-repo overrides. Nil pointers and empty strings
// inherit the global value.
type LocalConfig struct {
	WorktreeDir     string `toml:"worktree_dir"`
	TimestampFormat string `toml:"timestamp_format"`
	Shell           string `toml:"shell"`
	Fetch           *bool  `toml:"fetch"`
}

// LoadLocal reads .gp.toml from repoRoot.
// Returns nil (no error) if the file doesn't exist.
func LoadLocal(repoRoot string) (*LocalConfig, error) {
	configFile := filepath.Join(repoRoot, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}
	if err := ValidatePath(local.WorktreeDir, "worktree_dir"); err != nil {
		return nil, fmt.Errorf("%s: %w", configFile, err)
	}
	if local.TimestampFormat != "" {
		if err := validateTimestampFormat(local.TimestampFormat); err != nil {
			return nil, fmt.Errorf("%s: %w", configFile, err)
		}
	}
	return &local, nil
}

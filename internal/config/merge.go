package config

import "fmt"

// MergeLocal overlays local onto global, returning a new Config without
// mutating global. Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	merged := *global
	if local.WorktreeDir != "" {
		merged.WorktreeDir = local.WorktreeDir
	}
	if local.TimestampFormat != "" {
		merged.TimestampFormat = local.TimestampFormat
	}
	if local.Shell != "" {
		merged.Shell = local.Shell
	}
	if local.Fetch != nil {
		merged.Fetch = *local.Fetch
	}
	return &merged
}

// ForRepo returns the effective configuration for the repository rooted at
// repoRoot: global, then .gp.toml, then environment overrides.
func ForRepo(global *Config, repoRoot string) (*Config, error) {
	if global == nil {
		d := Default()
		global = &d
	}
	local, err := LoadLocal(repoRoot)
	if err != nil {
		return nil, err
	}
	cfg, err := ApplyEnv(*MergeLocal(global, local))
	if err != nil {
		return nil, fmt.Errorf("apply environment: %w", err)
	}
	return &cfg, nil
}

package config

import (
	"path/filepath"

	"github.com/arthur-debert/carp/pkg/errors"
	"github.com/arthur-debert/carp/pkg/ui"
	"github.com/pelletier/go-toml/v2"
)

// Config is carp's complete configuration.
type Config struct {
	Candidate Candidate `koanf:"candidate" toml:"candidate"`
	Backup    Backup    `koanf:"backup" toml:"backup"`
	Ignore    Ignore    `koanf:"ignore" toml:"ignore"`
	Report    Report    `koanf:"report" toml:"report"`
	Viewer    Viewer    `koanf:"viewer" toml:"viewer"`
}

// Candidate describes how a candidate path is derived from a current path.
type Candidate struct {
	Suffix string `koanf:"suffix" toml:"suffix"`
	// KeepSkipped leaves a candidate tree in place when the operator skips it.
	KeepSkipped bool `koanf:"keep_skipped" toml:"keep_skipped"`
}

// Backup describes the single backup generation.
type Backup struct {
	Suffix string `koanf:"suffix" toml:"suffix"`
}

// Ignore holds name globs excluded from tree comparison.
type Ignore struct {
	Patterns []string `koanf:"patterns" toml:"patterns"`
}

// Report holds reporting options.
type Report struct {
	LeaveLimit int    `koanf:"leave_limit" toml:"leave_limit"`
	Format     string `koanf:"format" toml:"format"`
}

// Viewer holds the external diff viewer argv.
type Viewer struct {
	Command []string `koanf:"command" toml:"command"`
}

// Default returns the built-in configuration. It matches
// embedded/defaults.toml.
func Default() *Config {
	return &Config{
		Candidate: Candidate{Suffix: ".new"},
		Backup:    Backup{Suffix: ".bak"},
		Ignore:    Ignore{Patterns: []string{".*.swp"}},
		Report:    Report{LeaveLimit: 10, Format: "auto"},
		Viewer: Viewer{Command: []string{
			"gvim", "-d", "-f", "-R", "-c", "windo set nonu| syntax off",
		}},
	}
}

// Validate checks the invariants the rest of carp relies on.
func (c *Config) Validate() error {
	if c.Candidate.Suffix == "" {
		return errors.New(errors.ErrConfigValid, "candidate.suffix must not be empty")
	}
	if c.Backup.Suffix == "" {
		return errors.New(errors.ErrConfigValid, "backup.suffix must not be empty")
	}
	if c.Backup.Suffix == c.Candidate.Suffix {
		return errors.Newf(errors.ErrConfigValid,
			"backup.suffix and candidate.suffix must differ (both %q)", c.Backup.Suffix)
	}
	if c.Report.LeaveLimit < 0 {
		return errors.Newf(errors.ErrConfigValid,
			"report.leave_limit must be >= 0, got %d", c.Report.LeaveLimit)
	}
	if _, err := ui.ParseFormat(c.Report.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "bad report.format")
	}
	if len(c.Viewer.Command) == 0 || c.Viewer.Command[0] == "" {
		return errors.New(errors.ErrConfigValid, "viewer.command must not be empty")
	}
	for _, pattern := range c.Ignore.Patterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "bad ignore pattern %q", pattern)
		}
	}
	return nil
}

// TOML serialises the configuration.
func (c *Config) TOML() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return data, nil
}

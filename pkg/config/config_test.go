package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/carp/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points XDG_CONFIG_HOME at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	t.Cleanup(xdg.Reload)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg, "embedded defaults.toml must match Default()")
}

func TestLoadXDGFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "carp", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`
[candidate]
suffix = ".proposed"

[viewer]
command = ["meld"]
`), 0644))

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, ".proposed", cfg.Candidate.Suffix)
	assert.Equal(t, []string{"meld"}, cfg.Viewer.Command)
	assert.Equal(t, ".bak", cfg.Backup.Suffix, "unset keys keep defaults")
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)

	t.Run("overrides_defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.toml")
		require.NoError(t, os.WriteFile(path, []byte("[report]\nleave_limit = 3\n"), 0644))

		cfg, err := Load(LoadOptions{ConfigFile: path})
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Report.LeaveLimit)
	})

	t.Run("missing_file_fails", func(t *testing.T) {
		_, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "absent.toml")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed_file_fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[report\n"), 0644))
		_, err := Load(LoadOptions{ConfigFile: path})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestLoadEnvAndOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("CARP_REPORT_LEAVE_LIMIT", "4")
	t.Setenv("CARP_VIEWER_COMMAND", "vimdiff,-R")
	t.Setenv("CARP_BACKUP_SUFFIX", ".orig")
	t.Setenv("CARP_CANDIDATE_KEEP_SKIPPED", "true")

	cfg, err := Load(LoadOptions{Overrides: map[string]interface{}{
		"report.format": "json",
		"backup.suffix": ".old",
	}})
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Report.LeaveLimit)
	assert.Equal(t, []string{"vimdiff", "-R"}, cfg.Viewer.Command)
	assert.Equal(t, "json", cfg.Report.Format)
	assert.Equal(t, ".old", cfg.Backup.Suffix, "overrides beat env")
	assert.True(t, cfg.Candidate.KeepSkipped)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty_candidate_suffix", func(c *Config) { c.Candidate.Suffix = "" }},
		{"empty_backup_suffix", func(c *Config) { c.Backup.Suffix = "" }},
		{"same_suffixes", func(c *Config) { c.Backup.Suffix = c.Candidate.Suffix }},
		{"negative_leave_limit", func(c *Config) { c.Report.LeaveLimit = -1 }},
		{"unknown_format", func(c *Config) { c.Report.Format = "yaml" }},
		{"empty_viewer", func(c *Config) { c.Viewer.Command = nil }},
		{"bad_pattern", func(c *Config) { c.Ignore.Patterns = []string{"[a-"} }},
	}

	require.NoError(t, Default().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		})
	}
}

func TestTOML(t *testing.T) {
	data, err := Default().TOML()
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "[candidate]")
	assert.Regexp(t, `suffix = ['"]\.new['"]`, out)
	assert.Contains(t, out, "leave_limit = 10")
}

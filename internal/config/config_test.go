package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolatedOptions points both config files at nonexistent temp paths so
// tests never read the developer's real configuration.
func isolatedOptions(t *testing.T) LoadOptions {
	t.Helper()
	dir := t.TempDir()
	return LoadOptions{
		UserConfigPath:    filepath.Join(dir, "user.yml"),
		ProjectConfigPath: filepath.Join(dir, "project.yml"),
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWithOptions(isolatedOptions(t))
	require.NoError(t, err)

	assert.Empty(t, cfg.SpecPath)
	assert.Empty(t, cfg.Prompt)
	assert.False(t, cfg.NoColor)
	assert.True(t, cfg.HistoryEnabled)
	assert.Equal(t, 500, cfg.MaxHistoryEntries)
	assert.Equal(t, "~/.qicli/state", cfg.StateDir)
	assert.Equal(t, 300, cfg.CommandTimeout)
}

func TestLoadProjectOverridesUser(t *testing.T) {
	opts := isolatedOptions(t)
	writeConfig(t, opts.UserConfigPath, "prompt: user>\nmax_history_entries: 10\n")
	writeConfig(t, opts.ProjectConfigPath, "prompt: project>\n")

	cfg, err := LoadWithOptions(opts)
	require.NoError(t, err)

	assert.Equal(t, "project>", cfg.Prompt)
	// Values only the user config sets still apply.
	assert.Equal(t, 10, cfg.MaxHistoryEntries)
}

func TestLoadEnvironmentWins(t *testing.T) {
	opts := isolatedOptions(t)
	writeConfig(t, opts.ProjectConfigPath, "spec_path: project.spec.json\nno_color: false\n")

	t.Setenv("QICLI_SPEC_PATH", "/tmp/env.spec.json")
	t.Setenv("QICLI_NO_COLOR", "true")

	cfg, err := LoadWithOptions(opts)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env.spec.json", cfg.SpecPath)
	assert.True(t, cfg.NoColor)
}

func TestLoadRejectsMalformedProjectConfig(t *testing.T) {
	opts := isolatedOptions(t)
	writeConfig(t, opts.ProjectConfigPath, "prompt: [unclosed\nspec_path: {")

	_, err := LoadWithOptions(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadRejectsOutOfRangeValues(t *testing.T) {
	tests := map[string]struct {
		content string
		wantErr string
	}{
		"negative history limit": {
			content: "max_history_entries: -1\n",
			wantErr: "max_history_entries must be at least 0",
		},
		"history limit too large": {
			content: "max_history_entries: 999999\n",
			wantErr: "max_history_entries must be at most 100000",
		},
		"negative timeout": {
			content: "command_timeout: -5\n",
			wantErr: "command_timeout must be at least 0",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			opts := isolatedOptions(t)
			writeConfig(t, opts.ProjectConfigPath, tt.content)

			_, err := LoadWithOptions(opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExpandStateDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".qicli/state"), ExpandStateDir("~/.qicli/state"))
	assert.Equal(t, home, ExpandStateDir("~"))
	assert.Equal(t, "/var/lib/qicli", ExpandStateDir("/var/lib/qicli"))
}

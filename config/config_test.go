package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 100, cfg.Notifications.Limit)
	assert.True(t, cfg.Editor.LineNumbers)
	assert.True(t, cfg.Highlight.Enabled)
	assert.Empty(t, cfg.Highlight.Theme)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log:
  file: /tmp/modal-test.log
  enabled: false
notifications:
  limit: 5
strict: true
editor:
  relative_numbers: true
highlight:
  theme: monokai
  language: go
theme:
  insert: "#00ff00"
  warning: "214"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/modal-test.log", cfg.Log.File)
	assert.False(t, cfg.Log.Enabled)
	assert.Equal(t, 5, cfg.Notifications.Limit)
	assert.True(t, cfg.Strict)
	assert.True(t, cfg.Editor.LineNumbers, "unset keys keep their default")
	assert.True(t, cfg.Editor.RelativeNumbers)
	assert.Equal(t, "monokai", cfg.Highlight.Theme)
	assert.Equal(t, "go", cfg.Highlight.Language)
	assert.Equal(t, "#00ff00", cfg.Theme.Insert)
	assert.Equal(t, "214", cfg.Theme.Warning)
	assert.Empty(t, cfg.Theme.Normal)
}

func TestLoadZeroLimitKeepsDefault(t *testing.T) {
	cfg, err := Load(writeConfig(t, "notifications:\n  limit: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Notifications.Limit)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "malformed yaml", content: "log: [unclosed", want: "parsing config"},
		{name: "negative limit", content: "notifications:\n  limit: -1\n", want: "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvPath, "/etc/modal.yaml")
		assert.Equal(t, "/etc/modal.yaml", DefaultPath())
	})

	t.Run("home directory", func(t *testing.T) {
		t.Setenv(EnvPath, "")
		t.Setenv("HOME", "/home/tester")
		assert.Equal(t, filepath.Join("/home/tester", ".config", "modal", "config.yaml"), DefaultPath())
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "plugboard.yaml", `
plugins:
  - /opt/plugboard/extensions
channels:
  - telegram
  - slack
tools: none
voice: all
base_priority: 100
secrets:
  telegram.botToken: tok
overrides:
  telegram:
    priority: 5
    options:
      pollInterval: 30
  slack:
    enabled: false
`)

	cfg, roots, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"/opt/plugboard/extensions"}, roots)
	assert.Equal(t, 100, cfg.BasePriority)
	assert.Equal(t, "tok", cfg.Secrets["telegram.botToken"])

	assert.True(t, cfg.Channels.Match("telegram"))
	assert.False(t, cfg.Channels.Match("discord"))
	assert.False(t, cfg.Tools.Match("web-search"))
	assert.True(t, cfg.Voice.Match("elevenlabs"))
	assert.True(t, cfg.Productivity.Match("notion"), "omitted selector defaults to all")

	require.Contains(t, cfg.Overrides, "telegram")
	assert.Equal(t, 5, *cfg.Overrides["telegram"].Priority)
	assert.EqualValues(t, 30, cfg.Overrides["telegram"].Options["pollInterval"])
	require.Contains(t, cfg.Overrides, "slack")
	assert.False(t, *cfg.Overrides["slack"].Enabled)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "plugboard.toml", `
plugins = ["/opt/plugboard/extensions"]
channels = ["telegram"]
tools = "none"
base_priority = 10

[secrets]
"telegram.botToken" = "tok"

[overrides.telegram]
priority = 7
`)

	cfg, roots, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"/opt/plugboard/extensions"}, roots)
	assert.Equal(t, 10, cfg.BasePriority)
	assert.True(t, cfg.Channels.Match("telegram"))
	assert.False(t, cfg.Channels.Match("slack"))
	assert.False(t, cfg.Tools.Match("web-search"))
	require.Contains(t, cfg.Overrides, "telegram")
	assert.Equal(t, 7, *cfg.Overrides["telegram"].Priority)
}

func TestLoad_BadSelectorScalar(t *testing.T) {
	path := writeFile(t, "plugboard.yaml", `channels: everything`)

	_, _, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channels")
}

func TestLoad_BadSelectorListItem(t *testing.T) {
	path := writeFile(t, "plugboard.yaml", `
channels:
  - telegram
  - 42
`)

	_, _, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeFile(t, "plugboard.yaml", "channels: [unclosed")

	_, _, err := Load(path)
	require.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.False(t, cfg.GroupByTag)
	assert.Equal(t, " ", cfg.Keys.Toggle)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOrCreate_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)

	_, err = os.Stat(path)
	require.NoError(t, err, "config.toml should be created")

	again, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadOrCreate_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "theme = \"neon\"\ngroup_by_tag = true\n\n[keys]\nsearch = \"/\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Theme)
	assert.True(t, cfg.GroupByTag)
	assert.Equal(t, "/", cfg.Keys.Search)
	assert.Equal(t, "q", cfg.Keys.Quit)
	assert.Equal(t, "auto", cfg.Color)
}

func TestLoadOrCreate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad toml", "theme = \n"},
		{"unknown theme", "theme = \"pastel\"\n"},
		{"unknown color", "color = \"sometimes\"\n"},
		{"unknown log format", "log_format = \"xml\"\n"},
		{"unknown log level", "log_level = \"loud\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o644))

			_, err := LoadOrCreate(path)
			assert.Error(t, err)
		})
	}
}

func TestResolveConfigPath_Env(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom.toml")
	t.Setenv(EnvConfigPath, want)

	assert.Equal(t, want, ResolveConfigPath())
}

func TestValidate_LogLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "off"} {
		cfg := Defaults()
		cfg.LogLevel = level
		assert.NoError(t, cfg.Validate(), level)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/libra-community/libra-cli/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchMode(t *testing.T) {
	tests := []struct {
		input   string
		want    config.ConfigSearchMode
		wantErr bool
	}{
		{input: "", want: config.CurrentDirAndParents},
		{input: "parents", want: config.CurrentDirAndParents},
		{input: "CURRENT", want: config.CurrentDir},
		{input: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSearchMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProvider(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Provider(SetupViper(nil))
		require.NoError(t, err)

		assert.Equal(t, config.CurrentDirAndParents, cfg.SearchMode)
		assert.Equal(t, DefaultNodeConfigPath, cfg.NodeConfigPath)
		assert.Equal(t, 5*time.Minute, cfg.Timeout)
		assert.False(t, cfg.Debug)
		assert.False(t, cfg.Global)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("LIBRA_SEARCH_MODE", "current")
		t.Setenv("LIBRA_NODE_CONFIG", "/etc/0L.toml")
		t.Setenv("LIBRA_TIMEOUT", "30s")
		t.Setenv("LIBRA_DEBUG", "true")

		cfg, err := Provider(SetupViper(nil))
		require.NoError(t, err)

		assert.Equal(t, config.CurrentDir, cfg.SearchMode)
		assert.Equal(t, "/etc/0L.toml", cfg.NodeConfigPath)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.True(t, cfg.Debug)
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv("LIBRA_SEARCH_MODE", "current")

		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().String("search-mode", "", "")
		cmd.Flags().Bool("non-interactive", false, "")
		cmd.Flags().String("url", "", "")
		require.NoError(t, cmd.Flags().Parse([]string{"--search-mode", "parents", "--non-interactive", "--url", "http://node:8080/"}))

		cfg, err := Provider(SetupViper(cmd))
		require.NoError(t, err)

		assert.Equal(t, config.CurrentDirAndParents, cfg.SearchMode)
		assert.True(t, cfg.NonInteractive)
		assert.Equal(t, "http://node:8080/", cfg.NodeURL)
	})

	t.Run("bad search mode", func(t *testing.T) {
		t.Setenv("LIBRA_SEARCH_MODE", "sideways")
		_, err := Provider(SetupViper(nil))
		assert.Error(t, err)
	})
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file is fine", func(t *testing.T) {
		assert.NoError(t, LoadDotEnv(t.TempDir()))
	})

	t.Run("sets unset variables only", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
			[]byte("NODE_URL=http://from-dotenv:8080/\nLIBRA_DOTENV_TEST=loaded\n"), 0644))

		t.Setenv("NODE_URL", "http://from-shell:8080/")
		t.Setenv("LIBRA_DOTENV_TEST", "")
		require.NoError(t, os.Unsetenv("LIBRA_DOTENV_TEST"))

		require.NoError(t, LoadDotEnv(dir))

		assert.Equal(t, "http://from-shell:8080/", os.Getenv("NODE_URL"))
		assert.Equal(t, "loaded", os.Getenv("LIBRA_DOTENV_TEST"))
	})
}

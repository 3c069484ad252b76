package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/libra-community/libra-cli/internal/domain"
	"github.com/libra-community/libra-cli/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfigStore(t *testing.T) {
	ctx := context.Background()

	write := func(t *testing.T, home, content string) {
		t.Helper()
		folder := filepath.Join(home, config.ConfigFolderName)
		require.NoError(t, os.MkdirAll(folder, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(folder, config.GlobalConfigFileName), []byte(content), 0644))
	}

	t.Run("missing file defaults to workspace", func(t *testing.T) {
		store := NewGlobalConfigStoreAdapter(t.TempDir())
		cfg, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, config.ConfigTypeWorkspace, cfg.Type())
	})

	t.Run("global type", func(t *testing.T) {
		home := t.TempDir()
		write(t, home, "config_type: global\n")

		cfg, err := NewGlobalConfigStoreAdapter(home).Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, config.ConfigTypeGlobal, cfg.Type())
	})

	t.Run("unknown type", func(t *testing.T) {
		home := t.TempDir()
		write(t, home, "config_type: elsewhere\n")

		_, err := NewGlobalConfigStoreAdapter(home).Load(ctx)
		assert.ErrorContains(t, err, "unknown config_type")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		home := t.TempDir()
		write(t, home, "config_type: [\n")

		_, err := NewGlobalConfigStoreAdapter(home).Load(ctx)
		var parseErr *domain.ParseError
		assert.True(t, errors.As(err, &parseErr))
	})

	t.Run("no home directory ignores the working directory", func(t *testing.T) {
		work := t.TempDir()
		write(t, work, "config_type: global\n")
		t.Chdir(work)

		store := NewGlobalConfigStoreAdapter("")
		assert.Empty(t, store.GetPath())

		cfg, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, config.ConfigTypeWorkspace, cfg.Type())
	})
}

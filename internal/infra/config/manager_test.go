package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/schedo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetLocalConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		workDir := t.TempDir()
		content := "[render]\nmode = \"table\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(workDir, domain.LocalConfigFileName), []byte(content), 0o644))

		info := NewManagerWithGlobalDir(workDir, "").GetLocalConfigInfo()

		assert.Equal(t, filepath.Join(workDir, domain.LocalConfigFileName), info.Path)
		assert.Equal(t, content, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		workDir := t.TempDir()

		info := NewManagerWithGlobalDir(workDir, "").GetLocalConfigInfo()

		assert.Equal(t, filepath.Join(workDir, domain.LocalConfigFileName), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})
}

func TestManager_GetGlobalConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		globalDir := t.TempDir()
		content := "[log]\nlevel = \"debug\""
		require.NoError(t, os.WriteFile(filepath.Join(globalDir, domain.ConfigFileName), []byte(content), 0o644))

		info := NewManagerWithGlobalDir("", globalDir).GetGlobalConfigInfo()

		assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), info.Path)
		assert.Equal(t, content, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns empty info when global dir is empty", func(t *testing.T) {
		info := NewManagerWithGlobalDir("", "").GetGlobalConfigInfo()

		assert.Equal(t, domain.ConfigInfo{}, info)
	})
}

func TestManager_InitLocalConfig(t *testing.T) {
	t.Run("creates config file that loads back", func(t *testing.T) {
		workDir := t.TempDir()
		cfg := domain.NewDefaultConfig()
		cfg.Render.MinutesPerLine = 5

		manager := NewManagerWithGlobalDir(workDir, "")
		require.NoError(t, manager.InitLocalConfig(cfg))

		content, err := os.ReadFile(filepath.Join(workDir, domain.LocalConfigFileName))
		require.NoError(t, err)
		assert.Contains(t, string(content), "schedo configuration")
		assert.Contains(t, string(content), "minutes_per_line = 5")

		loaded, err := NewLoaderWithGlobalDir(workDir, "").Load()
		require.NoError(t, err)
		assert.Equal(t, 5, loaded.Render.MinutesPerLine)
		assert.Empty(t, loaded.Warnings)
	})

	t.Run("returns error if file already exists", func(t *testing.T) {
		workDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(workDir, domain.LocalConfigFileName), []byte("existing"), 0o644))

		err := NewManagerWithGlobalDir(workDir, "").InitLocalConfig(domain.NewDefaultConfig())

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}

func TestManager_InitGlobalConfig(t *testing.T) {
	t.Run("creates config file and parent directory", func(t *testing.T) {
		globalDir := filepath.Join(t.TempDir(), "schedo")

		err := NewManagerWithGlobalDir("", globalDir).InitGlobalConfig(domain.NewDefaultConfig())

		require.NoError(t, err)
		content, err := os.ReadFile(filepath.Join(globalDir, domain.ConfigFileName))
		require.NoError(t, err)
		assert.Contains(t, string(content), "[render]")
	})

	t.Run("returns error if global dir is empty", func(t *testing.T) {
		err := NewManagerWithGlobalDir("", "").InitGlobalConfig(domain.NewDefaultConfig())

		assert.Error(t, err)
	})
}

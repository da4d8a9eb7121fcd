package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/schedo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_Load_NoConfigFiles(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_LocalConfigOnly(t *testing.T) {
	workDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(workDir), `
[files]
schedule = "plans/today.json"

[render]
mode = "table"
minutes_per_line = 15

[input]
strict_durations = true
require_names = true

[log]
level = "debug"
`)

	cfg, err := NewLoaderWithGlobalDir(workDir, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, "plans/today.json", cfg.Files.Schedule)
	assert.Equal(t, domain.DefaultRenderFile, cfg.Files.Render)
	assert.Equal(t, domain.RenderModeTable, cfg.Render.Mode)
	assert.Equal(t, 15, cfg.Render.MinutesPerLine)
	assert.Equal(t, domain.DefaultLabelWidth, cfg.Render.LabelWidth)
	assert.True(t, cfg.Input.StrictDurations)
	assert.True(t, cfg.Input.RequireNames)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_MergeLocalOverridesGlobal(t *testing.T) {
	workDir := t.TempDir()
	globalDir := t.TempDir()

	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[render]
minutes_per_line = 5
content_width = 40

[log]
level = "warn"
`)
	writeFile(t, domain.LocalConfigPath(workDir), `
[render]
minutes_per_line = 20
`)

	cfg, err := NewLoaderWithGlobalDir(workDir, globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Render.MinutesPerLine, "local wins")
	assert.Equal(t, 40, cfg.Render.ContentWidth, "global kept when local is silent")
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoader_LoadGlobal_NotFound(t *testing.T) {
	_, err := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir()).LoadGlobal()
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = NewLoaderWithGlobalDir(t.TempDir(), "").LoadGlobal()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	workDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(workDir), "[render\nmode = ")

	_, err := NewLoaderWithGlobalDir(workDir, t.TempDir()).Load()
	assert.Error(t, err)
}

func TestLoader_Load_UnknownKeys(t *testing.T) {
	workDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(workDir), `
colour = "blue"

[render]
mode = "spiral"
height = 3

[theme]
name = "dark"
`)

	cfg, err := NewLoaderWithGlobalDir(workDir, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"unknown key in [render]: height",
		"unknown key: colour",
		"unknown render mode: spiral",
		"unknown section: theme",
	}, cfg.Warnings)
	assert.Equal(t, domain.RenderModeBlock, cfg.Render.Mode, "invalid mode falls back to default")
}

func TestMarshal(t *testing.T) {
	out, err := Marshal(domain.NewDefaultConfig())
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "[render]")
	assert.Contains(t, s, "minutes_per_line = 10")
	assert.Contains(t, s, "schedule.json")
	assert.NotContains(t, s, "Warnings")
}

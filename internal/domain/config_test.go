package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, DefaultScheduleFile, cfg.Files.Schedule)
	assert.Equal(t, DefaultRenderFile, cfg.Files.Render)
	assert.Equal(t, RenderModeBlock, cfg.Render.Mode)
	assert.Equal(t, 10, cfg.Render.MinutesPerLine)
	assert.Equal(t, 15, cfg.Render.LabelWidth)
	assert.Equal(t, 30, cfg.Render.ContentWidth)
	assert.False(t, cfg.Input.StrictDurations)
	assert.False(t, cfg.Input.RequireNames)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestConfigPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/u/.config", "schedo"), GlobalAppDir("/home/u/.config"))
	assert.Equal(t, filepath.Join("/home/u/.config", "schedo", "config.toml"), GlobalConfigPath("/home/u/.config"))
	assert.Equal(t, filepath.Join("/work", ".schedo.toml"), LocalConfigPath("/work"))
	assert.Equal(t, filepath.Join("/state", "schedo.log"), LogPath("/state"))
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		p    string
		want string
	}{
		{"relative", "/work", "schedule.json", filepath.Join("/work", "schedule.json")},
		{"nested", "/work", "plans/today.json", filepath.Join("/work", "plans", "today.json")},
		{"absolute", "/work", "/tmp/s.json", "/tmp/s.json"},
		{"empty", "/work", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePath(tt.dir, tt.p))
		})
	}
}

func TestRenderConfigTemplate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Render.Mode = RenderModeTable
	cfg.Input.StrictDurations = true

	got := RenderConfigTemplate(cfg)

	assert.Contains(t, got, "[files]\n")
	assert.Contains(t, got, "schedule = \"schedule.json\"\n")
	assert.Contains(t, got, "mode = \"table\"\n")
	assert.Contains(t, got, "strict_durations = true\n")
	assert.Contains(t, got, "require_names = false\n")
	assert.Contains(t, got, "level = \"info\"\n")
}

func TestRenderConfigTemplate_NilUsesDefaults(t *testing.T) {
	assert.Equal(t, RenderConfigTemplate(NewDefaultConfig()), RenderConfigTemplate(nil))
}

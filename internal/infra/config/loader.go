// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/schedo/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory holding the local .schedo.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/schedo)
}

// NewLoader creates a new Loader.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalAppDir(configHome)
}

// GlobalPath returns the global config file path, or "" if unknown.
func (l *Loader) GlobalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// LocalPath returns the local config file path.
func (l *Loader) LocalPath() string {
	return domain.LocalConfigPath(l.workDir)
}

// Load returns the merged configuration (local + global).
// Local config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	// Load global config first
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	local, err := l.loadFile(l.LocalPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// Merge: default <- global <- local (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	path := l.GlobalPath()
	if path == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(path)
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "files":
			for k, v := range m {
				switch k {
				case "schedule":
					if s, ok := v.(string); ok {
						res.Files.Schedule = s
					}
				case "render":
					if s, ok := v.(string); ok {
						res.Files.Render = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [files]: %s", k))
				}
			}
		case "render":
			for k, v := range m {
				switch k {
				case "mode":
					if s, ok := v.(string); ok {
						res.Render.Mode = s
					}
				case "minutes_per_line":
					if n, ok := v.(int64); ok {
						res.Render.MinutesPerLine = int(n)
					}
				case "label_width":
					if n, ok := v.(int64); ok {
						res.Render.LabelWidth = int(n)
					}
				case "content_width":
					if n, ok := v.(int64); ok {
						res.Render.ContentWidth = int(n)
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [render]: %s", k))
				}
			}
		case "input":
			for k, v := range m {
				switch k {
				case "strict_durations":
					if b, ok := v.(bool); ok {
						res.Input.StrictDurations = b
					}
				case "require_names":
					if b, ok := v.(bool); ok {
						res.Input.RequireNames = b
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [input]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	if res.Render.Mode != "" && res.Render.Mode != domain.RenderModeBlock && res.Render.Mode != domain.RenderModeTable {
		warnings = append(warnings, fmt.Sprintf("unknown render mode: %s", res.Render.Mode))
		res.Render.Mode = ""
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := *base
	result.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)

	if override.Files.Schedule != "" {
		result.Files.Schedule = override.Files.Schedule
	}
	if override.Files.Render != "" {
		result.Files.Render = override.Files.Render
	}
	if override.Render.Mode != "" {
		result.Render.Mode = override.Render.Mode
	}
	if override.Render.MinutesPerLine > 0 {
		result.Render.MinutesPerLine = override.Render.MinutesPerLine
	}
	if override.Render.LabelWidth > 0 {
		result.Render.LabelWidth = override.Render.LabelWidth
	}
	if override.Render.ContentWidth > 0 {
		result.Render.ContentWidth = override.Render.ContentWidth
	}
	if override.Input.StrictDurations {
		result.Input.StrictDurations = true
	}
	if override.Input.RequireNames {
		result.Input.RequireNames = true
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return &result
}

// Marshal renders cfg as TOML.
func Marshal(cfg *domain.Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

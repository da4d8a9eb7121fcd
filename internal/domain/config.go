package domain

import (
	"path/filepath"
)

// Config holds the application configuration.
type Config struct {
	Files    FilesConfig  `toml:"files"`
	Render   RenderConfig `toml:"render"`
	Log      LogConfig    `toml:"log"`
	Warnings []string     `toml:"-"` // Unknown keys found while loading
	Input    InputConfig  `toml:"input"`
}

// FilesConfig holds file locations from [files] section.
type FilesConfig struct {
	Schedule string `toml:"schedule"` // Saved schedule (JSON)
	Render   string `toml:"render"`   // Rendered timeline (text)
}

// RenderConfig holds block render settings from [render] section.
type RenderConfig struct {
	Mode           string `toml:"mode"`             // "block" or "table"
	MinutesPerLine int    `toml:"minutes_per_line"` // Block height unit
	LabelWidth     int    `toml:"label_width"`      // Time label column width
	ContentWidth   int    `toml:"content_width"`    // Task column width
}

// InputConfig holds input handling settings from [input] section.
type InputConfig struct {
	StrictDurations bool `toml:"strict_durations"` // Reject durations without h/m components
	RequireNames    bool `toml:"require_names"`    // Reject blank task names
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// Render modes.
const (
	RenderModeBlock = "block"
	RenderModeTable = "table"
)

// Default configuration values.
const (
	DefaultLogLevel       = "info"
	DefaultScheduleFile   = "schedule.json"
	DefaultRenderFile     = "schedule.txt"
	DefaultMinutesPerLine = 10
	DefaultLabelWidth     = 15
	DefaultContentWidth   = 30
)

// Directory and file names for schedo.
const (
	AppDirName          = "schedo"       // Directory name under XDG config/state homes
	ConfigFileName      = "config.toml"  // Global config file name
	LocalConfigFileName = ".schedo.toml" // Config file name in the working directory
	LogFileName         = "schedo.log"   // Log file name
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Files: FilesConfig{
			Schedule: DefaultScheduleFile,
			Render:   DefaultRenderFile,
		},
		Render: RenderConfig{
			Mode:           RenderModeBlock,
			MinutesPerLine: DefaultMinutesPerLine,
			LabelWidth:     DefaultLabelWidth,
			ContentWidth:   DefaultContentWidth,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// GlobalAppDir returns the global schedo directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalAppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalAppDir(configHome), ConfigFileName)
}

// LocalConfigPath returns the config path in dir.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// LogPath returns the log file path inside the state directory.
func LogPath(stateDir string) string {
	return filepath.Join(stateDir, LogFileName)
}

// ResolvePath joins p onto dir unless p is already absolute.
func ResolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

package domain

import "time"

// ScheduleRepository manages persistence of the ordered task list.
type ScheduleRepository interface {
	// Load returns the saved tasks. Returns ErrScheduleNotFound if nothing is saved.
	Load() ([]Task, error)

	// Save overwrites the saved tasks.
	Save(tasks []Task) error

	// Exists reports whether a saved schedule is present.
	Exists() bool

	// Update loads, modifies and saves the tasks in one step.
	// A missing schedule is passed to fn as an empty list.
	Update(fn func([]Task) ([]Task, error)) error
}

// RenderWriter persists rendered timeline lines.
type RenderWriter interface {
	// WriteLines overwrites the target with one newline-terminated line per element.
	WriteLines(lines []string) error
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (local + global).
	Load() (*Config, error)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string // Empty when the location is unknown
	Content string // Raw file content
	Exists  bool
}

// ConfigManager inspects and creates config files.
type ConfigManager interface {
	GetGlobalConfigInfo() ConfigInfo
	GetLocalConfigInfo() ConfigInfo
	// InitGlobalConfig writes the default template to the global config path.
	// Returns ErrConfigExists if the file is already present.
	InitGlobalConfig(cfg *Config) error
	// InitLocalConfig writes the default template to the local config path.
	InitLocalConfig(cfg *Config) error
}

// Logger provides logging functionality.
type Logger interface {
	Info(category, msg string)
	Debug(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant. Used for --at anchors.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.T
}

// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"errors"
	"fmt"
	"time"

	"github.com/runoshun/schedo/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockScheduleRepository is a test double for domain.ScheduleRepository.
// Fields are ordered to minimize memory padding.
type MockScheduleRepository struct {
	LoadErr   error
	SaveErr   error
	Tasks     []domain.Task
	SaveCalls int
	Saved     bool // True if a schedule is present
}

// NewMockScheduleRepository creates a repository holding tasks.
// A nil tasks slice means no saved schedule.
func NewMockScheduleRepository(tasks []domain.Task) *MockScheduleRepository {
	return &MockScheduleRepository{
		Tasks: tasks,
		Saved: tasks != nil,
	}
}

// Load returns a copy of the stored tasks.
func (m *MockScheduleRepository) Load() ([]domain.Task, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if !m.Saved {
		return nil, domain.ErrScheduleNotFound
	}
	out := make([]domain.Task, len(m.Tasks))
	copy(out, m.Tasks)
	return out, nil
}

// Save stores a copy of tasks.
func (m *MockScheduleRepository) Save(tasks []domain.Task) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks = make([]domain.Task, len(tasks))
	copy(m.Tasks, tasks)
	m.Saved = true
	return nil
}

// Exists reports whether a schedule has been saved.
func (m *MockScheduleRepository) Exists() bool {
	return m.Saved
}

// Update applies fn to the stored tasks.
func (m *MockScheduleRepository) Update(fn func([]domain.Task) ([]domain.Task, error)) error {
	tasks, err := m.Load()
	if err != nil && !errors.Is(err, domain.ErrScheduleNotFound) {
		return err
	}
	tasks, err = fn(tasks)
	if err != nil {
		return err
	}
	return m.Save(tasks)
}

// MockRenderWriter is a test double for domain.RenderWriter.
type MockRenderWriter struct {
	Err   error
	Lines []string
	Calls int
}

// WriteLines records the lines.
func (m *MockRenderWriter) WriteLines(lines []string) error {
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	m.Lines = append([]string(nil), lines...)
	return nil
}

// MockLogger records log entries as "LEVEL category: msg".
type MockLogger struct {
	Entries []string
}

func (m *MockLogger) add(level, category, msg string) {
	m.Entries = append(m.Entries, fmt.Sprintf("%s %s: %s", level, category, msg))
}

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.add("INFO", category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.add("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns the configured config, or defaults when Config is nil.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr          error
	InitConfig       *domain.Config // Config passed to the last Init call
	GlobalConfigInfo domain.ConfigInfo
	LocalConfigInfo  domain.ConfigInfo
	InitGlobalCalled bool
	InitLocalCalled  bool
}

// NewMockConfigManager creates a MockConfigManager with no config files.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// GetGlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo { return m.GlobalConfigInfo }

// GetLocalConfigInfo returns the configured local info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo { return m.LocalConfigInfo }

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) error {
	m.InitGlobalCalled = true
	m.InitConfig = cfg
	return m.InitErr
}

// InitLocalConfig records the call.
func (m *MockConfigManager) InitLocalConfig(cfg *domain.Config) error {
	m.InitLocalCalled = true
	m.InitConfig = cfg
	return m.InitErr
}

// Ensure mocks implement their ports.
var (
	_ domain.Clock              = (*MockClock)(nil)
	_ domain.ScheduleRepository = (*MockScheduleRepository)(nil)
	_ domain.RenderWriter       = (*MockRenderWriter)(nil)
	_ domain.Logger             = (*MockLogger)(nil)
	_ domain.ConfigLoader       = (*MockConfigLoader)(nil)
	_ domain.ConfigManager      = (*MockConfigManager)(nil)
)

// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/runoshun/schedo/internal/domain"
	"github.com/runoshun/schedo/internal/infra/config"
	"github.com/runoshun/schedo/internal/infra/jsonstore"
	"github.com/runoshun/schedo/internal/infra/logging"
	"github.com/runoshun/schedo/internal/infra/textfile"
	"github.com/runoshun/schedo/internal/render"
	"github.com/runoshun/schedo/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir      string // Directory schedo was started in
	SchedulePath string // Path to schedule.json
	RenderPath   string // Path to schedule.txt
	StateDir     string // Directory holding schedo.log (empty = no log file)
}

// newConfig resolves file locations from the loaded settings.
func newConfig(dir string, appConfig *domain.Config) Config {
	return Config{
		WorkDir:      dir,
		SchedulePath: domain.ResolvePath(dir, appConfig.Files.Schedule),
		RenderPath:   domain.ResolvePath(dir, appConfig.Files.Render),
		StateDir:     logging.DefaultStateDir(),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Schedules     domain.ScheduleRepository
	Renders       domain.RenderWriter
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Clock         domain.Clock
	Logger        domain.Logger

	// Pointer fields
	AppConfig *domain.Config
	closer    func() error

	// Configuration
	Config Config
}

// New creates a new Container rooted at dir.
// Config load errors are not fatal; defaults are used instead.
func New(dir string) (*Container, error) {
	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		appConfig = domain.NewDefaultConfig()
	}

	cfg := newConfig(dir, appConfig)
	logger := logging.New(cfg.StateDir, logging.ParseLevel(appConfig.Log.Level))

	return &Container{
		Schedules:     jsonstore.NewWithLockDir(cfg.SchedulePath, cfg.StateDir),
		Renders:       textfile.New(cfg.RenderPath),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dir),
		Clock:         domain.RealClock{},
		Logger:        logger,
		AppConfig:     appConfig,
		closer:        logger.Close,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, schedules domain.ScheduleRepository, renders domain.RenderWriter, clock domain.Clock, logger domain.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		Schedules: schedules,
		Renders:   renders,
		Clock:     clock,
		Logger:    logger,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// WithSchedulePath returns a copy of the container that reads and writes the schedule at path.
func (c *Container) WithSchedulePath(path string) *Container {
	cp := *c
	cp.Config.SchedulePath = domain.ResolvePath(c.Config.WorkDir, path)
	cp.Schedules = jsonstore.NewWithLockDir(cp.Config.SchedulePath, cp.Config.StateDir)
	return &cp
}

// WithRenderPath returns a copy of the container that writes the final render to path.
func (c *Container) WithRenderPath(path string) *Container {
	cp := *c
	cp.Config.RenderPath = domain.ResolvePath(c.Config.WorkDir, path)
	cp.Renders = textfile.New(cp.Config.RenderPath)
	return &cp
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// RenderOptions returns the block render options from the loaded config.
func (c *Container) RenderOptions() render.Options {
	return render.OptionsFromConfig(c.AppConfig.Render)
}

// InputRules returns the task input validation settings.
func (c *Container) InputRules() domain.InputConfig {
	return c.AppConfig.Input
}

// UseCase factory methods

// LoadScheduleUseCase returns a new LoadSchedule use case.
func (c *Container) LoadScheduleUseCase() *usecase.LoadSchedule {
	return usecase.NewLoadSchedule(c.Schedules, c.Logger)
}

// SaveScheduleUseCase returns a new SaveSchedule use case.
func (c *Container) SaveScheduleUseCase() *usecase.SaveSchedule {
	return usecase.NewSaveSchedule(c.Schedules, c.Logger)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Schedules, c.Logger, c.InputRules())
}

// RemoveTaskUseCase returns a new RemoveTask use case.
func (c *Container) RemoveTaskUseCase() *usecase.RemoveTask {
	return usecase.NewRemoveTask(c.Schedules, c.Logger)
}

// RenderScheduleUseCase returns a new RenderSchedule use case.
func (c *Container) RenderScheduleUseCase() *usecase.RenderSchedule {
	return usecase.NewRenderSchedule(c.Clock, c.RenderOptions())
}

// FinishScheduleUseCase returns a new FinishSchedule use case.
func (c *Container) FinishScheduleUseCase() *usecase.FinishSchedule {
	return usecase.NewFinishSchedule(c.Clock, c.Renders, c.Logger, c.RenderOptions())
}

// ExportScheduleUseCase returns a new ExportSchedule use case.
func (c *Container) ExportScheduleUseCase() *usecase.ExportSchedule {
	return usecase.NewExportSchedule(c.Clock, c.RenderOptions())
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager, c.Logger)
}

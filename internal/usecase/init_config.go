package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/schedo/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	Config *domain.Config // Values written into the template (nil = defaults)
	Global bool           // If true, initialize global config; otherwise the local .schedo.toml
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig generates a configuration file template.
type InitConfig struct {
	configManager domain.ConfigManager
	logger        domain.Logger
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager, logger domain.Logger) *InitConfig {
	return &InitConfig{
		configManager: configManager,
		logger:        logger,
	}
}

// Execute creates a configuration file with the default template.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	cfg := in.Config
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}

	var err error
	var path string
	if in.Global {
		path = uc.configManager.GetGlobalConfigInfo().Path
		err = uc.configManager.InitGlobalConfig(cfg)
	} else {
		path = uc.configManager.GetLocalConfigInfo().Path
		err = uc.configManager.InitLocalConfig(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("init config: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("config", "created "+path)
	}
	return &InitConfigOutput{Path: path}, nil
}

package app

import (
	"fmt"

	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/logger"
	"github.com/hance08/teller/internal/service"
)

type App struct {
	Service *service.Service
	Config  *config.Config
}

// NewApp initialize logger and services from cfg, then return App entity.
// Every App owns its own in-memory bank.
func NewApp(cfg *config.Config) (*App, func(), error) {
	if cfg == nil {
		cfg = config.NewDefault()
	}

	if err := logger.Initialize(cfg.Log); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	svc := service.NewService(nil, service.ConfigFrom(cfg))
	logger.Debug("app initialized", map[string]any{
		"agency":      svc.Config.Agency,
		"max_options": svc.Config.MaxOptions,
		"config":      cfg.ConfigPath,
	})

	cleanup := func() {
		logger.Debug("app closed", map[string]any{
			"accounts": len(svc.Account.GetAllAccounts()),
		})
	}

	return &App{
		Service: svc,
		Config:  cfg,
	}, cleanup, nil
}

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-todo-fetch/internal/config"
	"github.com/MKhiriev/go-todo-fetch/internal/logger"
	"github.com/MKhiriev/go-todo-fetch/internal/service"
)

var ErrNilDependency = errors.New("client: nil dependency")

type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || services.TaskListService == nil {
		return nil, fmt.Errorf("%w: services", ErrNilDependency)
	}
	if ui == nil {
		return nil, fmt.Errorf("%w: ui", ErrNilDependency)
	}

	return &App{services: services, ui: ui, workers: workers, logger: logger}, nil
}

// Run blocks until the UI exits or the process receives SIGINT, SIGTERM or
// SIGQUIT.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if a.services.ReloadJob != nil && a.workers.ReloadInterval > 0 {
		a.logger.Info().Dur("interval", a.workers.ReloadInterval).Msg("starting reload job")
		a.services.ReloadJob.Start(ctx, a.workers.ReloadInterval)
		defer a.services.ReloadJob.Stop()
	}

	a.logger.Info().Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	a.logger.Info().Msg("client stopped")

	return nil
}

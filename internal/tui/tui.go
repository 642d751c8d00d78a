// Package tui is the bubbletea terminal front end of the todo client.
//
// The model never mutates list state itself: every action is a call on
// [service.TaskListService], remote ones run as tea.Cmd goroutines, and the
// view re-renders from store notifications.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-fetch/internal/logger"
	"github.com/MKhiriev/go-todo-fetch/internal/service"
	"github.com/MKhiriev/go-todo-fetch/models"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.TaskListService == nil {
		return nil, fmt.Errorf("tui: task list service is required")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.services.TaskListService, t.buildInfo, t.logger)
	defer model.unsubscribe()

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if ctx.Err() != nil {
			// shutdown requested from outside
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

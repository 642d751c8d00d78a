package service

import (
	"fmt"

	"github.com/MKhiriev/go-todo-fetch/internal/logger"
	"github.com/MKhiriev/go-todo-fetch/internal/store"
)

// Services groups the server-side services.
type Services struct {
	TodoService    TodoService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, version string, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(version, logger)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	return &Services{
		TodoService:    NewTodoValidationService().Wrap(NewTodoService(storages.TodoRepository, logger)),
		AppInfoService: appInfo,
	}, nil
}

package service

import (
	"github.com/MKhiriev/go-todo-fetch/internal/adapter"
	"github.com/MKhiriev/go-todo-fetch/internal/config"
	"github.com/MKhiriev/go-todo-fetch/internal/logger"
	"github.com/MKhiriev/go-todo-fetch/internal/store"
)

// ClientServices groups the client-side services.
type ClientServices struct {
	TaskListService TaskListService
	ReloadJob       ReloadJob
}

func NewClientServices(taskStore *store.TaskListStore, serverAdapter adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) *ClientServices {
	tasks := NewTaskListService(taskStore, serverAdapter, cfg, logger)

	return &ClientServices{
		TaskListService: tasks,
		ReloadJob:       NewReloadJob(tasks),
	}
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-fetch/internal/adapter"
	"github.com/MKhiriev/go-todo-fetch/internal/config"
	"github.com/MKhiriev/go-todo-fetch/internal/logger"
	"github.com/MKhiriev/go-todo-fetch/internal/store"
	"github.com/MKhiriev/go-todo-fetch/internal/validators"
	"github.com/MKhiriev/go-todo-fetch/models"
)

type taskListService struct {
	store     *store.TaskListStore
	adapter   adapter.ServerAdapter
	validator validators.Validator
	cfg       config.ClientApp
	logger    *logger.Logger
}

// NewTaskListService wires a [TaskListService] around the local store and
// the remote adapter. cfg supplies the owner key and the delete failure
// policy.
func NewTaskListService(taskStore *store.TaskListStore, serverAdapter adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) TaskListService {
	return &taskListService{
		store:     taskStore,
		adapter:   serverAdapter,
		validator: validators.NewTodoValidator(),
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *taskListService) Load(ctx context.Context) error {
	tasks, err := s.adapter.GetTasks(ctx, s.cfg.Owner)
	if err != nil {
		s.logFailure(err, "taskListService.Load").
			Str("owner", s.cfg.Owner).
			Msg("failed to load task list, keeping local state")
		return fmt.Errorf("load task list: %w", err)
	}

	s.store.Replace(tasks)
	s.logger.Debug().Str("owner", s.cfg.Owner).Int("count", len(tasks)).Msg("task list loaded")
	return nil
}

func (s *taskListService) Add(ctx context.Context, label string) error {
	if err := s.validator.Validate(ctx, models.LabelRequest{Label: label}, validators.FieldLabel); err != nil {
		if errors.Is(err, validators.ErrEmptyLabel) {
			return nil
		}
		return fmt.Errorf("validate label: %w", err)
	}

	created, err := s.adapter.CreateTask(ctx, s.cfg.Owner, label)
	if err != nil {
		s.logFailure(err, "taskListService.Add").
			Str("owner", s.cfg.Owner).
			Msg("failed to create task")
		return fmt.Errorf("create task: %w", err)
	}

	s.store.AppendAndResetInput(created)
	return nil
}

func (s *taskListService) Delete(ctx context.Context, index int) error {
	removed, err := s.store.RemoveAt(index)
	if err != nil {
		return fmt.Errorf("delete task at %d: %w", index, err)
	}

	if err = s.adapter.DeleteTask(ctx, removed.ID); err != nil {
		s.logFailure(err, "taskListService.Delete").
			Int64("task_id", removed.ID).
			Str("policy", string(s.cfg.DeleteFailurePolicy)).
			Msg("failed to delete task remotely, local removal kept")

		if s.cfg.DeleteFailurePolicy == config.DeleteFailureReload {
			// Load logs its own failure
			_ = s.Load(ctx)
		}
		return fmt.Errorf("delete task %d: %w", removed.ID, err)
	}

	return nil
}

func (s *taskListService) BeginEdit(index int) error {
	if _, err := s.store.OpenEdit(index); err != nil {
		return fmt.Errorf("begin edit at %d: %w", index, err)
	}
	return nil
}

func (s *taskListService) SetEditLabel(label string) {
	s.store.SetEditLabel(label)
}

func (s *taskListService) CancelEdit() {
	s.store.CloseEdit()
}

func (s *taskListService) CommitEdit(ctx context.Context) error {
	session, open := s.store.EditSession()
	if !open {
		return nil
	}

	updated, err := s.adapter.UpdateTask(ctx, session.TaskID, session.Label)
	if err != nil {
		s.logFailure(err, "taskListService.CommitEdit").
			Int64("task_id", session.TaskID).
			Msg("failed to update task, edit session stays open")
		return fmt.Errorf("update task %d: %w", session.TaskID, err)
	}

	if _, err = s.store.ReplaceByID(session.TaskID, updated); errors.Is(err, store.ErrTaskNotFound) {
		s.logger.Warn().
			Str("func", "taskListService.CommitEdit").
			Int64("task_id", session.TaskID).
			Msg("updated task is no longer in the list, dropping server record")
	}
	s.store.CloseEditIf(session.Revision)

	return nil
}

func (s *taskListService) SetInput(text string) {
	s.store.SetInput(text)
}

func (s *taskListService) Snapshot() store.Snapshot {
	return s.store.Snapshot()
}

func (s *taskListService) Subscribe() (<-chan store.Snapshot, func()) {
	return s.store.Subscribe()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-todo-fetch/models"
)

// Snapshot is an immutable copy of the client list state handed to readers
// and subscribers. Edit is nil while no edit session is open.
type Snapshot struct {
	Tasks []models.Task
	Input string
	Edit  *models.EditSession
}

// TaskListStore is the client-side state container: the ordered task list,
// the new-task input buffer and the edit session. Every method is safe for
// concurrent use; each call is applied atomically, but nothing spans
// several calls.
//
// Subscribers receive a [Snapshot] after every mutation. Delivery is
// latest-wins: a slow subscriber only ever sees the newest state.
type TaskListStore struct {
	mu       sync.RWMutex
	tasks    []models.Task
	input    string
	edit     *models.EditSession
	revision uint64

	subMu  sync.Mutex
	nextID int
	subs   map[int]chan Snapshot
}

// NewTaskListStore returns an empty store with the edit session closed.
func NewTaskListStore() *TaskListStore {
	return &TaskListStore{
		tasks: make([]models.Task, 0),
		subs:  make(map[int]chan Snapshot),
	}
}

// Replace swaps the whole list for tasks.
func (s *TaskListStore) Replace(tasks []models.Task) {
	s.mu.Lock()
	s.tasks = slices.Clone(tasks)
	if s.tasks == nil {
		s.tasks = make([]models.Task, 0)
	}
	s.mu.Unlock()

	s.notify()
}

// AppendAndResetInput appends task and clears the input buffer in one step.
func (s *TaskListStore) AppendAndResetInput(task models.Task) {
	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.input = ""
	s.mu.Unlock()

	s.notify()
}

// RemoveAt deletes the task at index and returns it.
func (s *TaskListStore) RemoveAt(index int) (models.Task, error) {
	s.mu.Lock()
	if index < 0 || index >= len(s.tasks) {
		s.mu.Unlock()
		return models.Task{}, ErrIndexOutOfRange
	}
	removed := s.tasks[index]
	s.tasks = slices.Delete(s.tasks, index, index+1)
	s.mu.Unlock()

	s.notify()
	return removed, nil
}

// TaskAt returns the task at index.
func (s *TaskListStore) TaskAt(index int) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.tasks) {
		return models.Task{}, ErrIndexOutOfRange
	}
	return s.tasks[index], nil
}

// ReplaceByID overwrites the first task whose ID equals id with task and
// returns its index. task may carry a different ID than the one it replaces.
func (s *TaskListStore) ReplaceByID(id int64, task models.Task) (int, error) {
	s.mu.Lock()
	index := slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
	if index < 0 {
		s.mu.Unlock()
		return -1, ErrTaskNotFound
	}
	s.tasks[index] = task
	s.mu.Unlock()

	s.notify()
	return index, nil
}

// Len returns the number of tasks.
func (s *TaskListStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// SetInput sets the new-task input buffer.
func (s *TaskListStore) SetInput(text string) {
	s.mu.Lock()
	s.input = text
	s.mu.Unlock()

	s.notify()
}

// Input returns the new-task input buffer.
func (s *TaskListStore) Input() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.input
}

// OpenEdit opens an edit session for the task at index, replacing any open
// session, and returns it. The session gets a fresh revision.
func (s *TaskListStore) OpenEdit(index int) (models.EditSession, error) {
	s.mu.Lock()
	if index < 0 || index >= len(s.tasks) {
		s.mu.Unlock()
		return models.EditSession{}, ErrIndexOutOfRange
	}
	s.revision++
	session := models.EditSession{
		Index:    index,
		TaskID:   s.tasks[index].ID,
		Label:    s.tasks[index].Label,
		Revision: s.revision,
	}
	s.edit = &session
	s.mu.Unlock()

	s.notify()
	return session, nil
}

// EditSession returns the open session, if any.
func (s *TaskListStore) EditSession() (models.EditSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.edit == nil {
		return models.EditSession{}, false
	}
	return *s.edit, true
}

// SetEditLabel changes the in-progress label. It reports false when no
// session is open.
func (s *TaskListStore) SetEditLabel(label string) bool {
	s.mu.Lock()
	if s.edit == nil {
		s.mu.Unlock()
		return false
	}
	s.edit.Label = label
	s.mu.Unlock()

	s.notify()
	return true
}

// CloseEdit closes the session unconditionally.
func (s *TaskListStore) CloseEdit() {
	s.mu.Lock()
	wasOpen := s.edit != nil
	s.edit = nil
	s.mu.Unlock()

	if wasOpen {
		s.notify()
	}
}

// CloseEditIf closes the session only if it is still the one identified by
// revision, and reports whether it did.
func (s *TaskListStore) CloseEditIf(revision uint64) bool {
	s.mu.Lock()
	if s.edit == nil || s.edit.Revision != revision {
		s.mu.Unlock()
		return false
	}
	s.edit = nil
	s.mu.Unlock()

	s.notify()
	return true
}

// Snapshot returns a copy of the current state.
func (s *TaskListStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *TaskListStore) snapshotLocked() Snapshot {
	snap := Snapshot{
		Tasks: slices.Clone(s.tasks),
		Input: s.input,
	}
	if s.edit != nil {
		edit := *s.edit
		snap.Edit = &edit
	}
	return snap
}

// Subscribe registers a listener. The channel immediately holds the current
// state and afterwards the latest state after each mutation. The returned
// function unsubscribes and closes the channel; it is safe to call twice.
func (s *TaskListStore) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)
	ch <- s.Snapshot()

	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			close(ch)
			s.subMu.Unlock()
		})
	}
}

func (s *TaskListStore) notify() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	if len(s.subs) == 0 {
		return
	}
	// taken under subMu so the last delivery always carries the newest state
	snap := s.Snapshot()

	for _, ch := range s.subs {
		// drop the stale value, keep the newest
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

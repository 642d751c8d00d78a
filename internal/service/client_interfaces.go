package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-todo-fetch/internal/store"
)

// TaskListService keeps the local task list in step with the remote list
// service. Remote calls block the calling goroutine; local state changes are
// published through [store.TaskListStore] subscribers.
//
// Every failing operation logs the cause and returns it. Failures never roll
// back an optimistic local change unless the configured delete failure
// policy asks for a reload.
type TaskListService interface {
	// Load fetches the owner's list and replaces the local list with it. On
	// any failure the local list is left unchanged.
	Load(ctx context.Context) error

	// Add creates a task from label. A label that is blank after trimming is
	// ignored without a request. The new task is appended only once the
	// remote service returns it, and the input buffer is cleared with it.
	Add(ctx context.Context, label string) error

	// Delete removes the task at index immediately and then deletes it
	// remotely by id.
	Delete(ctx context.Context, index int) error

	// BeginEdit opens an edit session on the task at index, replacing any
	// open session.
	BeginEdit(index int) error

	// SetEditLabel changes the label of the open session. No-op when closed.
	SetEditLabel(label string)

	// CancelEdit closes the edit session without a remote call.
	CancelEdit()

	// CommitEdit sends the session label for the session's task. On success
	// the local task is replaced with the server record and the session is
	// closed. On failure the session stays open. No-op when closed.
	CommitEdit(ctx context.Context) error

	// SetInput sets the new-task input buffer.
	SetInput(text string)

	// Snapshot returns the current local state.
	Snapshot() store.Snapshot

	// Subscribe streams local state changes; see [store.TaskListStore.Subscribe].
	Subscribe() (<-chan store.Snapshot, func())
}

// ReloadJob periodically reloads the task list in the background.
type ReloadJob interface {
	// Start launches the reload goroutine, stopping any previous one. A
	// non-positive interval leaves the job stopped.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}

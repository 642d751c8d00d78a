// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-fetch/models"
)

func seeded(tasks ...models.Task) *TaskListStore {
	s := NewTaskListStore()
	s.Replace(tasks)
	return s
}

func TestTaskListStore_ReplaceCopies(t *testing.T) {
	in := []models.Task{{ID: 1, Label: "a"}}
	s := seeded(in...)

	in[0].Label = "mutated"

	assert.Equal(t, "a", s.Snapshot().Tasks[0].Label)
}

func TestTaskListStore_ReplaceNil(t *testing.T) {
	s := seeded(models.Task{ID: 1, Label: "a"})
	s.Replace(nil)

	snap := s.Snapshot()
	assert.NotNil(t, snap.Tasks)
	assert.Empty(t, snap.Tasks)
}

func TestTaskListStore_AppendAndResetInput(t *testing.T) {
	s := seeded(models.Task{ID: 1, Label: "a"})
	s.SetInput("b")

	s.AppendAndResetInput(models.Task{ID: 2, Label: "b"})

	snap := s.Snapshot()
	assert.Equal(t, []models.Task{{ID: 1, Label: "a"}, {ID: 2, Label: "b"}}, snap.Tasks)
	assert.Empty(t, snap.Input)
}

func TestTaskListStore_RemoveAt(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		want    models.Task
		left    []models.Task
		wantErr error
	}{
		{name: "first", index: 0, want: models.Task{ID: 1, Label: "a"}, left: []models.Task{{ID: 2, Label: "b"}, {ID: 3, Label: "c"}}},
		{name: "middle", index: 1, want: models.Task{ID: 2, Label: "b"}, left: []models.Task{{ID: 1, Label: "a"}, {ID: 3, Label: "c"}}},
		{name: "negative", index: -1, wantErr: ErrIndexOutOfRange},
		{name: "past end", index: 3, wantErr: ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seeded(models.Task{ID: 1, Label: "a"}, models.Task{ID: 2, Label: "b"}, models.Task{ID: 3, Label: "c"})

			got, err := s.RemoveAt(tt.index)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 3, s.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.left, s.Snapshot().Tasks)
		})
	}
}

func TestTaskListStore_TaskAt(t *testing.T) {
	s := seeded(models.Task{ID: 1, Label: "a"})

	got, err := s.TaskAt(0)
	require.NoError(t, err)
	assert.Equal(t, models.Task{ID: 1, Label: "a"}, got)

	_, err = s.TaskAt(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestTaskListStore_ReplaceByID(t *testing.T) {
	s := seeded(models.Task{ID: 1, Label: "a"}, models.Task{ID: 2, Label: "b"})

	index, err := s.ReplaceByID(2, models.Task{ID: 2, Label: "B"})
	require.NoError(t, err)
	assert.Equal(t, 1, index)
	assert.Equal(t, []models.Task{{ID: 1, Label: "a"}, {ID: 2, Label: "B"}}, s.Snapshot().Tasks)

	_, err = s.ReplaceByID(9, models.Task{ID: 9, Label: "x"})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskListStore_ReplaceByID_RecordWithOtherID(t *testing.T) {
	s := seeded(models.Task{ID: 1, Label: "a"}, models.Task{ID: 9, Label: "other"})

	index, err := s.ReplaceByID(1, models.Task{ID: 9, Label: "new"})
	require.NoError(t, err)
	assert.Equal(t, 0, index)
	assert.Equal(t, []models.Task{{ID: 9, Label: "new"}, {ID: 9, Label: "other"}}, s.Snapshot().Tasks)
}

// ── Edit session ────────────────────────────────────────────────────────────

func TestTaskListStore_OpenEdit(t *testing.T) {
	s := seeded(models.Task{ID: 1, Label: "a"}, models.Task{ID: 2, Label: "b"})

	_, open := s.EditSession()
	assert.False(t, open, "initial state is closed")

	session, err := s.OpenEdit(1)
	require.NoError(t, err)
	assert.Equal(t, 1, session.Index)
	assert.Equal(t, int64(2), session.TaskID)
	assert.Equal(t, "b", session.Label)

	got, open := s.EditSession()
	require.True(t, open)
	assert.Equal(t, session, got)

	_, err = s.OpenEdit(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestTaskListStore_OpenEditOverwrites(t *testing.T) {
	s := seeded(models.Task{ID: 1, Label: "a"}, models.Task{ID: 2, Label: "b"})

	first, err := s.OpenEdit(0)
	require.NoError(t, err)
	second, err := s.OpenEdit(1)
	require.NoError(t, err)

	assert.Greater(t, second.Revision, first.Revision)
	got, _ := s.EditSession()
	assert.Equal(t, int64(2), got.TaskID)
}

func TestTaskListStore_SetEditLabel(t *testing.T) {
	s := seeded(models.Task{ID: 1, Label: "a"})

	assert.False(t, s.SetEditLabel("ignored"))

	_, err := s.OpenEdit(0)
	require.NoError(t, err)
	assert.True(t, s.SetEditLabel("renamed"))

	got, _ := s.EditSession()
	assert.Equal(t, "renamed", got.Label)
	assert.Equal(t, "a", s.Snapshot().Tasks[0].Label, "list is untouched while editing")
}

func TestTaskListStore_CloseEditIf(t *testing.T) {
	s := seeded(models.Task{ID: 1, Label: "a"}, models.Task{ID: 2, Label: "b"})

	first, _ := s.OpenEdit(0)
	second, _ := s.OpenEdit(1)

	assert.False(t, s.CloseEditIf(first.Revision), "stale revision must not close a newer session")
	_, open := s.EditSession()
	assert.True(t, open)

	assert.True(t, s.CloseEditIf(second.Revision))
	_, open = s.EditSession()
	assert.False(t, open)

	assert.False(t, s.CloseEditIf(second.Revision))
}

func TestTaskListStore_CloseEdit(t *testing.T) {
	s := seeded(models.Task{ID: 1, Label: "a"})
	_, _ = s.OpenEdit(0)

	s.CloseEdit()
	s.CloseEdit()

	_, open := s.EditSession()
	assert.False(t, open)
	assert.Nil(t, s.Snapshot().Edit)
}

func TestTaskListStore_SnapshotIsDetached(t *testing.T) {
	s := seeded(models.Task{ID: 1, Label: "a"})
	_, _ = s.OpenEdit(0)

	snap := s.Snapshot()
	snap.Tasks[0].Label = "x"
	snap.Edit.Label = "y"

	fresh := s.Snapshot()
	assert.Equal(t, "a", fresh.Tasks[0].Label)
	assert.Equal(t, "a", fresh.Edit.Label)
}

// ── Subscribe ───────────────────────────────────────────────────────────────

func TestTaskListStore_SubscribeDeliversCurrentState(t *testing.T) {
	s := seeded(models.Task{ID: 1, Label: "a"})

	ch, cancel := s.Subscribe()
	defer cancel()

	snap := <-ch
	assert.Equal(t, []models.Task{{ID: 1, Label: "a"}}, snap.Tasks)
}

func TestTaskListStore_SubscribeLatestWins(t *testing.T) {
	s := NewTaskListStore()
	ch, cancel := s.Subscribe()
	defer cancel()

	s.SetInput("a")
	s.SetInput("ab")
	s.SetInput("abc")

	snap := <-ch
	assert.Equal(t, "abc", snap.Input)

	select {
	case extra := <-ch:
		t.Fatalf("unexpected extra snapshot: %+v", extra)
	default:
	}
}

func TestTaskListStore_UnsubscribeClosesChannel(t *testing.T) {
	s := NewTaskListStore()
	ch, cancel := s.Subscribe()
	<-ch

	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)

	// mutations after unsubscribe must not panic on the closed channel
	s.SetInput("x")
}

func TestTaskListStore_ConcurrentMutations(t *testing.T) {
	s := NewTaskListStore()
	ch, cancel := s.Subscribe()
	defer cancel()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AppendAndResetInput(models.Task{ID: int64(i + 1), Label: "t"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())

	var last Snapshot
	for {
		select {
		case last = <-ch:
			continue
		default:
		}
		break
	}
	assert.Len(t, last.Tasks, 50)
}

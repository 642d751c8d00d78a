// Package models holds the data types shared by the client, the adapter and
// the local stand-in server.
package models

// Task is a single to-do entry.
//
// ID is assigned by the remote service and stays zero until the create call
// returns. Label is the user-visible text and is never empty for records the
// client creates.
type Task struct {
	ID    int64  `json:"id,omitempty"`
	Label string `json:"label"`
}

// EditSession captures the task being edited and its in-progress label.
//
// Index is the display position the task had when the session was opened and
// is informational only: commits target TaskID, which stays valid while other
// operations reorder or shrink the list. Revision identifies this particular
// session instance so a late commit cannot close a newer session.
type EditSession struct {
	Index    int    `json:"index"`
	TaskID   int64  `json:"task_id"`
	Label    string `json:"label"`
	Revision uint64 `json:"revision"`
}

package tui

// stateChangedMsg signals that the task store published a new state. The
// model re-reads the store instead of trusting the delivered copy, which may
// already be stale when the message is processed.
type stateChangedMsg struct{}

// subscriptionClosedMsg is sent once the store subscription is closed.
type subscriptionClosedMsg struct{}

type opKind string

const (
	opLoad   opKind = "load"
	opAdd    opKind = "add"
	opDelete opKind = "delete"
	opCommit opKind = "commit"
)

// opDoneMsg reports the end of a remote operation. err is only logged.
type opDoneMsg struct {
	op  opKind
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

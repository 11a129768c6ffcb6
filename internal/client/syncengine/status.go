package syncengine

// State is the coarse sync state shown to the user.
type State int

const (
	StateIdle State = iota
	StateSyncing
	StateSynced
	StateOffline
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSyncing:
		return "syncing"
	case StateSynced:
		return "synced"
	case StateOffline:
		return "offline"
	case StateError:
		return "error"
	}
	return "unknown"
}

// ConflictMessage is the status message of a detected conflict.
const ConflictMessage = "Conflict detected"

// Status is the engine state plus, for StateError, a message.
type Status struct {
	State   State
	Message string
}

func (s Status) String() string {
	if s.State == StateError {
		return "error(" + s.Message + ")"
	}
	return s.State.String()
}

// Listener observes status changes. It is called outside the engine lock
// and must not block.
type Listener func(Status)

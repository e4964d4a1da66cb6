package command

// EventKind identifies the outcome of handling one key.
type EventKind uint8

const (
	// EventIncomplete means the key was consumed and nothing is dispatched.
	EventIncomplete EventKind = iota

	// EventComplete means BuilderEvent.Command should be dispatched now.
	EventComplete
)

// BuilderEvent is the result of feeding one key to a mode.
type BuilderEvent struct {
	Kind    EventKind
	Command Command
}

// Complete returns the event dispatching c.
func Complete(c Command) BuilderEvent {
	return BuilderEvent{Kind: EventComplete, Command: c}
}

// Incomplete returns the event for a consumed key with nothing to dispatch.
func Incomplete() BuilderEvent {
	return BuilderEvent{Kind: EventIncomplete}
}

// IsComplete returns true if the event carries a command.
func (e BuilderEvent) IsComplete() bool {
	return e.Kind == EventComplete
}

// String returns "Incomplete" or "Complete(<command>)".
func (e BuilderEvent) String() string {
	if e.Kind == EventComplete {
		return "Complete(" + e.Command.String() + ")"
	}
	return "Incomplete"
}

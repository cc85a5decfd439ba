package domain

// InteractionKind tags the recognized inbound chat-platform events.
// Anything the bridge does not understand maps to Unrecognized and is
// acknowledged without touching any state.
type InteractionKind int

const (
	InteractionUnrecognized InteractionKind = iota
	InteractionPing
	InteractionComponentClick
)

// InteractionEvent is an inbound button event stripped of its platform
// envelope.
type InteractionEvent struct {
	Kind        InteractionKind
	ComponentID string // "<action>_<submissionId>" for component clicks
	ActorID     string
	ActorName   string
}

// InteractionAck is the reply to an interaction. Ephemeral replies are
// visible only to the clicking user.
type InteractionAck struct {
	Pong      bool
	Content   string
	Ephemeral bool
}

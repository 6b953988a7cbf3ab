package core

// EventKind identifies something noteworthy that happened during a tick.
// Platforms use events to trigger sound effects and log lines.
type EventKind int

const (
	EventPhaserFired EventKind = iota
	EventShipHit
	EventShipDestroyed
	EventRespawned
	EventMatchOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPhaserFired:
		return "PhaserFired"
	case EventShipHit:
		return "ShipHit"
	case EventShipDestroyed:
		return "ShipDestroyed"
	case EventRespawned:
		return "Respawned"
	case EventMatchOver:
		return "MatchOver"
	default:
		return "Unknown"
	}
}

// Side identifies which ship an event refers to.
type Side int

const (
	SidePlayer Side = iota
	SideOpponent
)

// String returns "player" or "opponent".
func (s Side) String() string {
	if s == SideOpponent {
		return "opponent"
	}
	return "player"
}

// Event is a single gameplay occurrence.
type Event struct {
	Kind EventKind
	Side Side // Ship the event happened to (the shooter for PhaserFired)
}

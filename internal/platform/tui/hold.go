package tui

import (
	"time"

	"github.com/vovakirdan/penguin-warrior/internal/core"
)

// DefaultHold is how long a steering key stays down after its last repeat.
const DefaultHold = 150 * time.Millisecond

// holdLatch keeps steering keys active between terminal key repeats.
// Terminals report presses and repeats but never releases.
type holdLatch struct {
	ticks int
	left  map[core.Action]int
}

// opposite actions cancel each other when pressed.
var opposite = map[core.Action]core.Action{
	core.ActionTurnLeft:  core.ActionTurnRight,
	core.ActionTurnRight: core.ActionTurnLeft,
	core.ActionThrust:    core.ActionReverse,
	core.ActionReverse:   core.ActionThrust,
}

func newHoldLatch(tickRate int, hold time.Duration) *holdLatch {
	ticks := int(hold * time.Duration(tickRate) / time.Second)
	if ticks < 1 {
		ticks = 1
	}
	return &holdLatch{ticks: ticks, left: make(map[core.Action]int)}
}

// latches reports whether the action is held rather than one-shot.
func latches(a core.Action) bool {
	switch a {
	case core.ActionTurnLeft, core.ActionTurnRight, core.ActionThrust, core.ActionReverse, core.ActionFire:
		return true
	}
	return false
}

// Press records a key press or repeat.
func (h *holdLatch) Press(a core.Action) {
	h.left[a] = h.ticks
	if o, ok := opposite[a]; ok {
		delete(h.left, o)
	}
}

// Apply sets every held action on the frame and counts the holds down.
func (h *holdLatch) Apply(frame *core.InputFrame) {
	for a, n := range h.left {
		frame.Set(a)
		if n <= 1 {
			delete(h.left, a)
		} else {
			h.left[a] = n - 1
		}
	}
}

// Release drops every held action.
func (h *holdLatch) Release() {
	clear(h.left)
}

package core

import (
	"strconv"
	"strings"
)

// Action is something the player asked for this tick. The platform decides
// which keys and buttons produce which actions.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionLaunch  // serve a parked ball
	ActionConfirm // dismiss the game over screen
	ActionPause
	ActionRestart
	ActionQuit
)

var actionNames = [...]string{"None", "Left", "Right", "Launch", "Confirm", "Pause", "Restart", "Quit"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is everything the player did during one tick. The zero value is
// an empty frame and frames are plain values, safe to copy.
type InputFrame struct {
	actions uint16

	// Pointer is the pointer's horizontal position in [-1, 1] across the
	// playfield. It is only meaningful when HasPointer is set.
	Pointer    float64
	HasPointer bool
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || int(a) >= 16 {
		return
	}
	f.actions |= 1 << a
}

// SetPointer records where the pointer is, clamped to [-1, 1].
func (f *InputFrame) SetPointer(nx float64) {
	f.Pointer = Clamp(nx, -1, 1)
	f.HasPointer = true
}

// Has reports whether a was recorded this tick.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && int(a) < 16 && f.actions&(1<<a) != 0
}

// Empty reports whether the frame carries neither actions nor a pointer.
func (f InputFrame) Empty() bool {
	return f.actions == 0 && !f.HasPointer
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}

// String lists the recorded actions, e.g. "Launch+Confirm@0.25".
func (f InputFrame) String() string {
	var parts []string
	for a := ActionLeft; a <= ActionQuit; a++ {
		if f.Has(a) {
			parts = append(parts, a.String())
		}
	}
	s := strings.Join(parts, "+")
	if s == "" {
		s = ActionNone.String()
	}
	if f.HasPointer {
		s += "@" + strconv.FormatFloat(f.Pointer, 'f', 2, 64)
	}
	return s
}

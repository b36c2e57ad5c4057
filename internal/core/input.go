package core

import "fmt"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionMoveUp          // W, Up arrow - push the ball upward
	ActionMoveDown        // S, Down arrow - push the ball downward
	ActionConfirm         // Enter, Space - start a round from the menu
	ActionQuit            // Q, Ctrl+C, Esc - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputKind distinguishes discrete input edges.
type InputKind int

const (
	KeyDown InputKind = iota
	KeyUp
	PointerDown
	PointerUp
)

// String returns a human-readable name for the input kind.
func (k InputKind) String() string {
	switch k {
	case KeyDown:
		return "KeyDown"
	case KeyUp:
		return "KeyUp"
	case PointerDown:
		return "PointerDown"
	case PointerUp:
		return "PointerUp"
	default:
		return "Unknown"
	}
}

// InputEvent is a single input edge delivered by a frontend.
// Key events carry an Action; pointer events carry arena coordinates.
type InputEvent struct {
	Kind   InputKind
	Action Action
	X, Y   float64
}

// KeyDownEvent creates a key-down edge for the action.
func KeyDownEvent(a Action) InputEvent {
	return InputEvent{Kind: KeyDown, Action: a}
}

// KeyUpEvent creates a key-up edge for the action.
func KeyUpEvent(a Action) InputEvent {
	return InputEvent{Kind: KeyUp, Action: a}
}

// PointerDownEvent creates a pointer press at arena coordinates (x, y).
func PointerDownEvent(x, y float64) InputEvent {
	return InputEvent{Kind: PointerDown, X: x, Y: y}
}

// PointerUpEvent creates a pointer release at arena coordinates (x, y).
func PointerUpEvent(x, y float64) InputEvent {
	return InputEvent{Kind: PointerUp, X: x, Y: y}
}

func (e InputEvent) String() string {
	switch e.Kind {
	case PointerDown, PointerUp:
		return fmt.Sprintf("%s(%.1f, %.1f)", e.Kind, e.X, e.Y)
	default:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Action)
	}
}

// KeyTracker turns level-triggered "is this action held" samples into
// edges. Frontends that can only poll key state feed it once per frame.
type KeyTracker struct {
	held map[Action]bool
}

// NewKeyTracker creates a tracker with nothing held.
func NewKeyTracker() *KeyTracker {
	return &KeyTracker{held: make(map[Action]bool)}
}

// Sample records whether the action is held now. It returns the edge
// event and true when the held state changed since the last sample.
func (t *KeyTracker) Sample(a Action, pressed bool) (InputEvent, bool) {
	if t.held[a] == pressed {
		return InputEvent{}, false
	}
	t.held[a] = pressed
	if pressed {
		return KeyDownEvent(a), true
	}
	return KeyUpEvent(a), true
}

// Held reports whether the action is currently held.
func (t *KeyTracker) Held(a Action) bool {
	return t.held[a]
}

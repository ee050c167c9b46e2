package core

import "fmt"

// EventKind discriminates the semantic input events.
type EventKind uint8

const (
	EventKeyPress EventKind = iota + 1
	EventKeyRelease
	EventMouseMove
)

// String returns a human-readable name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventKeyPress:
		return "KeyPress"
	case EventKeyRelease:
		return "KeyRelease"
	case EventMouseMove:
		return "MouseMove"
	default:
		return "Unknown"
	}
}

// Event is one semantic input event handed to MainLoop.HandleEvent.
// Key is set for key events, DX/DY for mouse motion.
type Event struct {
	Kind   EventKind
	Key    Key
	DX, DY int
}

// KeyPress builds a key-press event.
func KeyPress(k Key) Event {
	return Event{Kind: EventKeyPress, Key: k}
}

// KeyRelease builds a key-release event.
func KeyRelease(k Key) Event {
	return Event{Kind: EventKeyRelease, Key: k}
}

// MouseMove builds a relative mouse-motion event.
func MouseMove(dx, dy int) Event {
	return Event{Kind: EventMouseMove, DX: dx, DY: dy}
}

// IsPress reports whether e is a press of k.
func (e Event) IsPress(k Key) bool {
	return e.Kind == EventKeyPress && e.Key == k
}

// IsRelease reports whether e is a release of k.
func (e Event) IsRelease(k Key) bool {
	return e.Kind == EventKeyRelease && e.Key == k
}

func (e Event) String() string {
	switch e.Kind {
	case EventKeyPress, EventKeyRelease:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Key)
	case EventMouseMove:
		return fmt.Sprintf("MouseMove(%d, %d)", e.DX, e.DY)
	default:
		return "Event(?)"
	}
}

// KeyState tracks which keys are currently held. Absent keys read as not
// pressed. The zero value is ready to use.
type KeyState struct {
	pressed map[Key]bool
}

// NewKeyState creates an empty key table.
func NewKeyState() *KeyState {
	return &KeyState{pressed: make(map[Key]bool, int(keyCount))}
}

// Set records the pressed state of k.
func (s *KeyState) Set(k Key, pressed bool) {
	if s.pressed == nil {
		s.pressed = make(map[Key]bool, int(keyCount))
	}
	s.pressed[k] = pressed
}

// Pressed reports whether k is currently held.
func (s *KeyState) Pressed(k Key) bool {
	if s == nil || s.pressed == nil {
		return false
	}
	return s.pressed[k]
}

// Apply updates the table from a key event. Mouse events are ignored.
func (s *KeyState) Apply(e Event) {
	switch e.Kind {
	case EventKeyPress:
		s.Set(e.Key, true)
	case EventKeyRelease:
		s.Set(e.Key, false)
	}
}

// Reset releases every key.
func (s *KeyState) Reset() {
	clear(s.pressed)
}

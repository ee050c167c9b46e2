// Package engine drives a user MainLoop through a fixed-timestep update loop
// with variable-rate rendering on top of a pixel-surface Backend.
//
// Simulation advances in equal steps of 1/UpdateRate seconds regardless of
// wall-clock jitter; rendering happens at most once per outer iteration and is
// capped by a frame-rate ceiling. Everything runs on the goroutine that called
// Run: callbacks are never invoked concurrently.
package engine

import (
	"fmt"

	"github.com/vovakirdan/picofb/internal/clock"
	"github.com/vovakirdan/picofb/internal/core"
)

// RawKind is the category of a native event reported by a Backend.
type RawKind uint8

const (
	// RawOther is any native event the engine does not consume.
	RawOther RawKind = iota
	RawKeyDown
	RawKeyUp
	RawMouseMotion
	// RawQuit is the window-manager close or process quit signal.
	RawQuit
)

func (k RawKind) String() string {
	switch k {
	case RawKeyDown:
		return "key-down"
	case RawKeyUp:
		return "key-up"
	case RawMouseMotion:
		return "mouse-motion"
	case RawQuit:
		return "quit"
	default:
		return "other"
	}
}

// RawEvent is one native event, already stripped of backend types.
// Key is KeyUnknown when the native key code has no mapping.
type RawEvent struct {
	Kind   RawKind
	Key    core.Key
	DX, DY int
}

// Backend is the windowing collaborator: it creates surfaces, reports native
// events and provides the monotonic clock.
type Backend interface {
	clock.Clock

	// Main runs fn to completion. Backends whose toolkit must own the OS
	// main thread run fn on another goroutine and pump the toolkit meanwhile.
	Main(fn func() error) error

	// CreateSurface opens a window with a width x height ARGB surface.
	CreateSurface(width, height int, title string) (Surface, error)

	// PollEvent returns the next pending native event, or false when the
	// queue is empty. It never blocks.
	PollEvent() (RawEvent, bool)

	SetMouseGrab(enabled bool)
	MouseGrabbed() bool
	MousePosition() (x, y int)

	// Close releases the collaborator after every surface is closed.
	Close() error
}

// Surface is one window's streaming pixel target.
type Surface interface {
	// Lock starts a write pass and returns the pixel view together with its
	// row pitch in bytes. The view stays valid until Unlock.
	Lock() (pixels []uint32, pitch int, err error)

	// Present pushes the current view contents to the display. It may be
	// called more than once while locked.
	Present() error

	// Unlock ends the write pass.
	Unlock()

	SetTitle(title string)
	Close() error
}

// OpError is a fatal collaborator failure, naming the operation that failed.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

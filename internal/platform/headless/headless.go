// Package headless provides an in-memory engine backend with no window. Its
// event queue is scripted and its clock can be manual, so the engine can
// run deterministically in tests and on machines without a display.
package headless

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/vovakirdan/picofb/internal/clock"
	"github.com/vovakirdan/picofb/internal/core"
	"github.com/vovakirdan/picofb/internal/engine"
)

// ErrClosed is returned when a closed backend or surface is used.
var ErrClosed = errors.New("headless: closed")

// Backend is an engine.Backend keeping every surface in memory.
type Backend struct {
	clock.Clock

	mu       sync.Mutex
	queue    []engine.RawEvent
	surfaces []*Surface
	grabbed  bool
	mouseX   int
	mouseY   int
	closed   bool

	// FailCreate, when set, is returned by CreateSurface.
	FailCreate error
	// OnPoll, when set, runs at the start of every PollEvent call.
	OnPoll func(b *Backend)
}

// New creates a backend on the given clock. A nil clock uses the system clock.
func New(c clock.Clock) *Backend {
	if c == nil {
		c = clock.NewSystem()
	}
	return &Backend{Clock: c}
}

// Main runs fn on the calling goroutine.
func (b *Backend) Main(fn func() error) error {
	return fn()
}

// CreateSurface allocates an in-memory surface.
func (b *Backend) CreateSurface(width, height int, title string) (engine.Surface, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}
	if b.FailCreate != nil {
		return nil, b.FailCreate
	}
	s := &Surface{
		width:  width,
		height: height,
		title:  title,
		back:   make([]uint32, width*height),
		front:  make([]uint32, width*height),
	}
	b.surfaces = append(b.surfaces, s)
	return s, nil
}

// Push appends native events to the queue.
func (b *Backend) Push(events ...engine.RawEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queue = append(b.queue, events...)
}

// KeyDown queues a key-down event.
func (b *Backend) KeyDown(k core.Key) {
	b.Push(engine.RawEvent{Kind: engine.RawKeyDown, Key: k})
}

// KeyUp queues a key-up event.
func (b *Backend) KeyUp(k core.Key) {
	b.Push(engine.RawEvent{Kind: engine.RawKeyUp, Key: k})
}

// MoveMouse queues a relative motion event and moves the absolute cursor.
func (b *Backend) MoveMouse(dx, dy int) {
	b.mu.Lock()
	b.mouseX += dx
	b.mouseY += dy
	b.mu.Unlock()
	b.Push(engine.RawEvent{Kind: engine.RawMouseMotion, DX: dx, DY: dy})
}

// Quit queues the quit signal.
func (b *Backend) Quit() {
	b.Push(engine.RawEvent{Kind: engine.RawQuit})
}

// Pending returns the number of queued events.
func (b *Backend) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// PollEvent pops the oldest queued event.
func (b *Backend) PollEvent() (engine.RawEvent, bool) {
	if b.OnPoll != nil {
		b.OnPoll(b)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.queue) == 0 {
		return engine.RawEvent{}, false
	}
	ev := b.queue[0]
	b.queue = b.queue[1:]
	return ev, true
}

// SetMouseGrab records the grab state.
func (b *Backend) SetMouseGrab(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.grabbed = enabled
}

// MouseGrabbed reports the recorded grab state.
func (b *Backend) MouseGrabbed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.grabbed
}

// MousePosition returns the cursor position accumulated from MoveMouse.
func (b *Backend) MousePosition() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mouseX, b.mouseY
}

// Surfaces returns every surface created so far, in creation order.
func (b *Backend) Surfaces() []*Surface {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*Surface(nil), b.surfaces...)
}

// Close marks the backend closed. Every surface must already be closed.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	for _, s := range b.surfaces {
		if !s.isClosed() {
			return fmt.Errorf("headless: surface %q still open", s.Title())
		}
	}
	b.closed = true
	return nil
}

// Closed reports whether Close succeeded.
func (b *Backend) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// Surface is an in-memory engine.Surface with a back buffer written during
// a pass and a front buffer holding the last presented frame.
type Surface struct {
	mu       sync.Mutex
	width    int
	height   int
	title    string
	back     []uint32
	front    []uint32
	locked   bool
	closed   bool
	presents int
	locks    int

	// Pitch, when non-zero, overrides the reported row pitch.
	Pitch int
	// Short, when non-zero, drops that many pixels from the end of the view.
	Short int
}

// Lock returns the back buffer.
func (s *Surface) Lock() ([]uint32, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, 0, ErrClosed
	}
	if s.locked {
		return nil, 0, errors.New("headless: surface already locked")
	}
	s.locked = true
	s.locks++
	pitch := s.width * 4
	if s.Pitch != 0 {
		pitch = s.Pitch
	}
	return s.back[:len(s.back)-s.Short], pitch, nil
}

// Present copies the back buffer to the front buffer.
func (s *Surface) Present() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	copy(s.front, s.back)
	s.presents++
	return nil
}

// Unlock ends the pass.
func (s *Surface) Unlock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked = false
}

// SetTitle records the title.
func (s *Surface) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
}

// Close marks the surface closed.
func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	return nil
}

func (s *Surface) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Title returns the last title set.
func (s *Surface) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

// Locked reports whether a pass is in progress.
func (s *Surface) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Presents returns the number of Present calls.
func (s *Surface) Presents() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presents
}

// Locks returns the number of successful Lock calls.
func (s *Surface) Locks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locks
}

// Frame returns a copy of the last presented frame.
func (s *Surface) Frame() *core.Surface {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.NewSurfaceView(s.width, s.height, append([]uint32(nil), s.front...))
}

// Image returns the last presented frame as an RGBA image.
func (s *Surface) Image() image.Image {
	return s.Frame().Image()
}

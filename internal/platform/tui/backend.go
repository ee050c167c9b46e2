package tui

import (
	"errors"
	"image"
	"os"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/picofb/internal/clock"
	"github.com/vovakirdan/picofb/internal/core"
	"github.com/vovakirdan/picofb/internal/engine"
)

// EventBuffer is the capacity of the event channel. Events arriving while
// it is full are dropped.
const EventBuffer = 256

// DefaultHold is the synthesized key-release delay.
const DefaultHold = 150 * time.Millisecond

// Backend runs a Bubble Tea program while the engine runs on a goroutine.
type Backend struct {
	clock.Clock

	logger *log.Logger
	hold   time.Duration
	events chan engine.RawEvent
	quit   atomic.Bool

	mu       sync.Mutex
	surfaces []*Surface
	tiles    []tile
	cols     int
	rows     int
	mouseX   int
	mouseY   int
	grab     bool
	dropped  int
	closed   bool
	program  *tea.Program
}

// tile is where a surface was last drawn, in cells.
type tile struct {
	col, row   int
	cols, rows int
	surface    *Surface
}

// New creates a terminal backend sized from stdout, falling back to 80x24.
func New(logger *log.Logger, hold time.Duration) (*Backend, error) {
	if logger == nil {
		logger = log.Default()
	}
	if hold <= 0 {
		hold = DefaultHold
	}
	cols, rows := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols, rows = w, h
	}
	return &Backend{
		Clock:  clock.NewSystem(),
		logger: logger,
		hold:   hold,
		events: make(chan engine.RawEvent, EventBuffer),
		cols:   cols,
		rows:   rows,
	}, nil
}

// Main runs fn on a goroutine while Bubble Tea owns the terminal.
func (b *Backend) Main(fn func() error) error {
	p := tea.NewProgram(
		NewModel(b),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	b.mu.Lock()
	b.program = p
	b.mu.Unlock()

	finished := make(chan error, 1)
	go func() {
		err := fn()
		finished <- err
		p.Send(engineDoneMsg{})
	}()

	_, runErr := p.Run()
	// The program may have ended on its own; make the engine see a quit.
	b.quit.Store(true)
	return errors.Join(runErr, <-finished)
}

// ReleaseTerminal restores the terminal. Call it before exiting the process
// while the program is still running.
func (b *Backend) ReleaseTerminal() {
	b.mu.Lock()
	p := b.program
	b.mu.Unlock()
	if p != nil {
		if err := p.ReleaseTerminal(); err != nil {
			b.logger.Warn("failed to release terminal", "error", err)
		}
	}
}

// CreateSurface adds a surface; all surfaces are drawn side by side.
func (b *Backend) CreateSurface(width, height int, title string) (engine.Surface, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, errors.New("tui: backend closed")
	}
	s := &Surface{
		backend: b,
		width:   width,
		height:  height,
		title:   title,
		back:    make([]uint32, width*height),
		front:   make([]uint32, width*height),
	}
	b.surfaces = append(b.surfaces, s)
	return s, nil
}

func (b *Backend) emit(ev engine.RawEvent) {
	select {
	case b.events <- ev:
	default:
		b.mu.Lock()
		b.dropped++
		b.mu.Unlock()
	}
}

func (b *Backend) requestQuit() {
	b.quit.Store(true)
}

// PollEvent returns the next queued event. A pending quit is reported once
// the queue is empty.
func (b *Backend) PollEvent() (engine.RawEvent, bool) {
	select {
	case ev := <-b.events:
		return ev, true
	default:
	}
	if b.quit.Swap(false) {
		return engine.RawEvent{Kind: engine.RawQuit}, true
	}
	return engine.RawEvent{}, false
}

// SetMouseGrab records the grab state; terminals cannot capture the pointer.
func (b *Backend) SetMouseGrab(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.grab = enabled
}

// MouseGrabbed reports the recorded grab state.
func (b *Backend) MouseGrabbed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.grab
}

// MousePosition returns the pointer position in pixels of the surface under it.
func (b *Backend) MousePosition() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mouseX, b.mouseY
}

// setPointer maps a cell position to surface pixels using the last layout.
func (b *Backend) setPointer(col, row int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, t := range b.tiles {
		if col < t.col || col >= t.col+t.cols || row < t.row || row >= t.row+t.rows {
			continue
		}
		b.mouseX = (col - t.col) * t.surface.width / t.cols
		b.mouseY = (row - t.row) * t.surface.height / t.rows
		return
	}
}

func (b *Backend) resize(cols, rows int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cols, b.rows = cols, rows
}

// frame is a copy of one surface taken for drawing.
type frame struct {
	title  string
	img    *image.RGBA
	width  int
	height int
	owner  *Surface
}

func (b *Backend) frames() ([]frame, int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []frame
	for _, s := range b.surfaces {
		if s.closed {
			continue
		}
		view := core.NewSurfaceView(s.width, s.height, s.front)
		out = append(out, frame{title: s.title, img: view.Image(), width: s.width, height: s.height, owner: s})
	}
	return out, b.cols, b.rows
}

func (b *Backend) setTiles(tiles []tile) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tiles = tiles
}

// Close marks the backend closed.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dropped > 0 {
		b.logger.Warn("events dropped on a full queue", "count", b.dropped)
	}
	b.closed = true
	return nil
}

// Surface is one framebuffer drawn into the terminal.
type Surface struct {
	backend *Backend
	width   int
	height  int
	title   string
	back    []uint32
	front   []uint32 // guarded by backend.mu
	closed  bool
}

// Lock returns the back buffer, owned by the engine goroutine.
func (s *Surface) Lock() ([]uint32, int, error) {
	return s.back, s.width * 4, nil
}

// Present publishes the back buffer for the next redraw.
func (s *Surface) Present() error {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	if s.closed {
		return errors.New("tui: surface closed")
	}
	copy(s.front, s.back)
	return nil
}

// Unlock ends the pass.
func (s *Surface) Unlock() {}

// SetTitle sets the caption drawn above the surface.
func (s *Surface) SetTitle(title string) {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	s.title = title
}

// Close removes the surface from the terminal.
func (s *Surface) Close() error {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	s.closed = true
	return nil
}

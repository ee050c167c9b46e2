//go:build cgo

package window

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/picofb/internal/clock"
	"github.com/vovakirdan/picofb/internal/core"
	"github.com/vovakirdan/picofb/internal/engine"
)

// EventBuffer is the capacity of the event channel. Events arriving while
// it is full are dropped.
const EventBuffer = 256

// Backend runs an ebiten window on the main thread and the engine on a
// goroutine.
type Backend struct {
	clock.Clock

	logger *log.Logger
	scale  int
	events chan engine.RawEvent
	quit   atomic.Bool
	done   atomic.Bool

	mu       sync.Mutex
	surfaces []*Surface
	mouseX   int
	mouseY   int
	dropped  int
	closed   bool
}

// New creates the backend. The window opens when Main is called.
func New(logger *log.Logger, scale int) (*Backend, error) {
	if logger == nil {
		logger = log.Default()
	}
	if scale <= 0 {
		scale = 1
	}
	return &Backend{
		Clock:  clock.NewSystem(),
		logger: logger,
		scale:  scale,
		events: make(chan engine.RawEvent, EventBuffer),
	}, nil
}

// Main runs fn on a goroutine while ebiten drives the window from the
// calling goroutine. It returns once both have finished.
func (b *Backend) Main(fn func() error) error {
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetWindowTitle("picofb")
	ebiten.SetTPS(ebiten.SyncWithFPS)

	finished := make(chan error, 1)
	go func() {
		err := fn()
		b.done.Store(true)
		finished <- err
	}()

	runErr := ebiten.RunGame(&game{b: b})
	if errors.Is(runErr, ebiten.Termination) {
		runErr = nil
	}
	if runErr != nil {
		// The window is gone; make the engine see a quit.
		b.quit.Store(true)
	}
	return errors.Join(runErr, <-finished)
}

// CreateSurface adds a tile to the window.
func (b *Backend) CreateSurface(width, height int, title string) (engine.Surface, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, errors.New("window: backend closed")
	}

	s := &Surface{
		backend: b,
		width:   width,
		height:  height,
		title:   title,
		back:    make([]uint32, width*height),
		front:   make([]byte, width*height*4),
	}
	b.surfaces = append(b.surfaces, s)
	b.relayoutLocked()
	return s, nil
}

// relayoutLocked resizes and retitles the OS window. b.mu must be held.
func (b *Backend) relayoutLocked() {
	widths, heights, titles := b.dimsLocked()
	t := Tile(widths, heights)
	ebiten.SetWindowSize(t.Width*b.scale, t.Height*b.scale)
	ebiten.SetWindowTitle(JoinTitles(titles))
}

func (b *Backend) dimsLocked() (widths, heights []int, titles []string) {
	for _, s := range b.surfaces {
		if s.closed {
			continue
		}
		widths = append(widths, s.width)
		heights = append(heights, s.height)
		titles = append(titles, s.title)
	}
	return widths, heights, titles
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

// PollEvent returns the next queued event. Once the window asks to close,
// an empty queue yields the quit category.
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

// SetMouseGrab captures or releases the cursor.
func (b *Backend) SetMouseGrab(enabled bool) {
	if enabled {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// MouseGrabbed reports whether the cursor is captured.
func (b *Backend) MouseGrabbed() bool {
	return ebiten.CursorMode() == ebiten.CursorModeCaptured
}

// MousePosition returns the cursor position relative to the tile under it.
func (b *Backend) MousePosition() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mouseX, b.mouseY
}

// Close marks the backend closed. The window itself closes when Main's
// function returns.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dropped > 0 {
		b.logger.Warn("events dropped on a full queue", "count", b.dropped)
	}
	b.closed = true
	return nil
}

// Surface is one tile of the window.
type Surface struct {
	backend *Backend
	width   int
	height  int
	title   string
	back    []uint32
	front   []byte // RGBA, guarded by backend.mu
	dirty   bool
	closed  bool
	img     *ebiten.Image
}

// Lock returns the back buffer, owned by the engine goroutine.
func (s *Surface) Lock() ([]uint32, int, error) {
	return s.back, s.width * 4, nil
}

// Present publishes the back buffer for the next ebiten Draw.
func (s *Surface) Present() error {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	if s.closed {
		return errors.New("window: surface closed")
	}
	core.CopyToRGBA(s.front, s.back)
	s.dirty = true
	return nil
}

// Unlock ends the pass.
func (s *Surface) Unlock() {}

// SetTitle updates this tile's part of the window title.
func (s *Surface) SetTitle(title string) {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	s.title = title
	_, _, titles := s.backend.dimsLocked()
	ebiten.SetWindowTitle(JoinTitles(titles))
}

// Close removes the tile.
func (s *Surface) Close() error {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if !s.backend.done.Load() {
		s.backend.relayoutLocked()
	}
	return nil
}

// game adapts the backend to ebiten.Game. Its methods run on the main thread.
type game struct {
	b        *Backend
	keys     []ebiten.Key
	lastX    int
	lastY    int
	haveLast bool
	closing  bool
}

func (g *game) Update() error {
	b := g.b
	if b.done.Load() {
		return ebiten.Termination
	}

	if ebiten.IsWindowBeingClosed() && !g.closing {
		g.closing = true
		b.quit.Store(true)
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		b.emit(engine.RawEvent{Kind: engine.RawKeyDown, Key: translateKey(k)})
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		b.emit(engine.RawEvent{Kind: engine.RawKeyUp, Key: translateKey(k)})
	}

	x, y := ebiten.CursorPosition()
	if g.haveLast && (x != g.lastX || y != g.lastY) {
		b.emit(engine.RawEvent{Kind: engine.RawMouseMotion, DX: x - g.lastX, DY: y - g.lastY})
	}
	g.lastX, g.lastY, g.haveLast = x, y, true

	b.mu.Lock()
	widths, heights, _ := b.dimsLocked()
	if i, local := Tile(widths, heights).Hit(widths, x); i >= 0 {
		b.mouseX, b.mouseY = local, y
	}
	b.mu.Unlock()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	b := g.b
	b.mu.Lock()
	defer b.mu.Unlock()

	x := 0
	for _, s := range b.surfaces {
		if s.closed {
			continue
		}
		if s.img == nil {
			s.img = ebiten.NewImage(s.width, s.height)
		}
		if s.dirty {
			s.img.WritePixels(s.front)
			s.dirty = false
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), 0)
		screen.DrawImage(s.img, op)
		x += s.width
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.b
	b.mu.Lock()
	defer b.mu.Unlock()
	widths, heights, _ := b.dimsLocked()
	t := Tile(widths, heights)
	return t.Width, t.Height
}

//go:build sdl2

package sdl

import (
	"encoding/binary"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	sdl2 "github.com/veandco/go-sdl2/sdl"

	"github.com/vovakirdan/picofb/internal/engine"
)

// SDL must be driven from the thread that initialized it; the main
// goroutine stays on the main OS thread.
func init() {
	runtime.LockOSThread()
}

// Backend owns the SDL video subsystem.
type Backend struct {
	logger   *log.Logger
	surfaces []*Surface
	start    uint64
	freq     float64
	closed   bool
}

// New initializes SDL video. A nil logger uses log.Default().
func New(logger *log.Logger) (*Backend, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := sdl2.Init(sdl2.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL video: %w", err)
	}
	sdl2.SetHint(sdl2.HINT_RENDER_SCALE_QUALITY, "0")
	logger.Debug("sdl video initialized")

	return &Backend{
		logger: logger,
		start:  sdl2.GetPerformanceCounter(),
		freq:   float64(sdl2.GetPerformanceFrequency()),
	}, nil
}

// Main runs fn on the calling goroutine, which must be the main goroutine.
func (b *Backend) Main(fn func() error) error {
	return fn()
}

// Now returns seconds since New from the SDL performance counter.
func (b *Backend) Now() float64 {
	return float64(sdl2.GetPerformanceCounter()-b.start) / b.freq
}

// Sleep blocks through SDL_Delay.
func (b *Backend) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	sdl2.Delay(uint32(d / time.Millisecond))
}

// CreateSurface opens a window with a streaming texture of the same size.
func (b *Backend) CreateSurface(width, height int, title string) (engine.Surface, error) {
	if b.closed {
		return nil, errors.New("sdl: backend closed")
	}
	w, h := int32(width), int32(height)

	window, err := sdl2.CreateWindow(title, sdl2.WINDOWPOS_UNDEFINED, sdl2.WINDOWPOS_UNDEFINED, w, h, sdl2.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	renderer, err := sdl2.CreateRenderer(window, -1, sdl2.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	texture, err := renderer.CreateTexture(sdl2.PIXELFORMAT_ARGB8888, sdl2.TEXTUREACCESS_STREAMING, w, h)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, fmt.Errorf("create texture: %w", err)
	}

	s := &Surface{
		backend:  b,
		window:   window,
		renderer: renderer,
		texture:  texture,
		width:    width,
		height:   height,
		back:     make([]uint32, width*height),
	}
	b.surfaces = append(b.surfaces, s)
	return s, nil
}

// PollEvent translates the next SDL event.
func (b *Backend) PollEvent() (engine.RawEvent, bool) {
	ev := sdl2.PollEvent()
	if ev == nil {
		return engine.RawEvent{}, false
	}

	switch e := ev.(type) {
	case *sdl2.KeyboardEvent:
		key := translateKey(e.Keysym.Sym)
		if e.Type == sdl2.KEYDOWN {
			return engine.RawEvent{Kind: engine.RawKeyDown, Key: key}, true
		}
		return engine.RawEvent{Kind: engine.RawKeyUp, Key: key}, true
	case *sdl2.MouseMotionEvent:
		return engine.RawEvent{Kind: engine.RawMouseMotion, DX: int(e.XRel), DY: int(e.YRel)}, true
	case *sdl2.WindowEvent:
		if e.Event == sdl2.WINDOWEVENT_CLOSE {
			return engine.RawEvent{Kind: engine.RawQuit}, true
		}
	case *sdl2.QuitEvent:
		return engine.RawEvent{Kind: engine.RawQuit}, true
	}
	return engine.RawEvent{Kind: engine.RawOther}, true
}

// SetMouseGrab toggles SDL relative mouse mode.
func (b *Backend) SetMouseGrab(enabled bool) {
	if sdl2.SetRelativeMouseMode(enabled) != 0 {
		b.logger.Warn("relative mouse mode not supported", "error", sdl2.GetError())
	}
}

// MouseGrabbed reports SDL relative mouse mode.
func (b *Backend) MouseGrabbed() bool {
	return sdl2.GetRelativeMouseMode()
}

// MousePosition returns the cursor position in the focused window.
func (b *Backend) MousePosition() (int, int) {
	x, y, _ := sdl2.GetMouseState()
	return int(x), int(y)
}

// Close destroys any surfaces still open and shuts SDL down.
func (b *Backend) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	var errs []error
	for _, s := range b.surfaces {
		errs = append(errs, s.destroy())
	}
	b.surfaces = nil
	sdl2.Quit()
	return errors.Join(errs...)
}

// Surface is one SDL window. The render pass draws into an in-memory back
// buffer; Present uploads it into the locked streaming texture.
type Surface struct {
	backend  *Backend
	window   *sdl2.Window
	renderer *sdl2.Renderer
	texture  *sdl2.Texture
	width    int
	height   int
	back     []uint32
	closed   bool
}

// Lock returns the back buffer with the texture's row pitch.
func (s *Surface) Lock() ([]uint32, int, error) {
	if s.closed {
		return nil, 0, errors.New("sdl: surface closed")
	}
	_, pitch, err := s.texture.Lock(nil)
	if err != nil {
		return nil, 0, err
	}
	s.texture.Unlock()
	return s.back, pitch, nil
}

// Present uploads the back buffer and shows it.
func (s *Surface) Present() error {
	bytes, pitch, err := s.texture.Lock(nil)
	if err != nil {
		return err
	}
	for y := 0; y < s.height; y++ {
		row := bytes[y*pitch : y*pitch+s.width*4]
		src := s.back[y*s.width : (y+1)*s.width]
		for x, p := range src {
			binary.LittleEndian.PutUint32(row[x*4:], p)
		}
	}
	s.texture.Unlock()

	if err := s.renderer.Clear(); err != nil {
		return err
	}
	if err := s.renderer.Copy(s.texture, nil, nil); err != nil {
		return err
	}
	s.renderer.Present()
	return nil
}

// Unlock ends the pass. The texture is only locked inside Lock and Present.
func (s *Surface) Unlock() {}

// SetTitle sets the OS window title.
func (s *Surface) SetTitle(title string) {
	s.window.SetTitle(title)
}

// Close destroys the texture, renderer and window.
func (s *Surface) Close() error {
	return s.destroy()
}

func (s *Surface) destroy() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return errors.Join(s.texture.Destroy(), s.renderer.Destroy(), s.window.Destroy())
}

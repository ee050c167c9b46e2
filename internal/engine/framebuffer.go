package engine

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/picofb/internal/clock"
	"github.com/vovakirdan/picofb/internal/core"
)

// FrameRateCeiling caps rendering at this many frames per second.
const FrameRateCeiling = 500.0

// MainLoop is implemented by the embedding application.
type MainLoop interface {
	// HandleEvent is called once per semantic event, in queue order.
	HandleEvent(fb *Framebuffer, e core.Event)
	// Update advances the simulation by the fixed step dt; t is the new
	// simulation time in seconds.
	Update(fb *Framebuffer, dt, t float64)
	// Render draws one frame through the scoped handle.
	Render(d *DrawHandle)
}

// Framebuffer owns the main window, the key table and the running flag.
type Framebuffer struct {
	backend    Backend
	main       *Window
	secondary  []*Window
	keys       *core.KeyState
	running    bool
	updateRate int
	dt         float64
	fps        *clock.FPSCounter
	ceiling    float64
	logger     *log.Logger
	exit       func(code int)

	motionX, motionY int
	frames           uint64
	updates          uint64
}

// Option configures a Framebuffer.
type Option func(*Framebuffer)

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) Option {
	return func(fb *Framebuffer) {
		fb.logger = l
	}
}

// WithExit replaces os.Exit as the process-termination hook used by Pause.
func WithExit(exit func(code int)) Option {
	return func(fb *Framebuffer) {
		fb.exit = exit
	}
}

// WithFrameRateCeiling overrides FrameRateCeiling. Non-positive values
// disable the ceiling.
func WithFrameRateCeiling(fps float64) Option {
	return func(fb *Framebuffer) {
		fb.ceiling = fps
	}
}

// DefaultLogger returns the logger used when WithLogger is not given.
func DefaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "picofb",
	})
}

// New opens the main window on backend. Window creation failures are
// returned as *OpError and are meant to be fatal.
func New(backend Backend, cfg core.RuntimeConfig, opts ...Option) (*Framebuffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &OpError{Op: "validate window config", Err: err}
	}

	fb := &Framebuffer{
		backend:    backend,
		keys:       core.NewKeyState(),
		running:    true,
		updateRate: cfg.UpdateRate,
		dt:         cfg.DT(),
		fps:        clock.NewFPSCounter(clock.DefaultFPSSamples),
		ceiling:    FrameRateCeiling,
		exit:       os.Exit,
	}
	for _, opt := range opts {
		opt(fb)
	}
	if fb.logger == nil {
		fb.logger = DefaultLogger()
	}

	main, err := fb.openWindow(cfg.Width, cfg.Height, cfg.Title)
	if err != nil {
		return nil, err
	}
	fb.main = main
	return fb, nil
}

// AddWindow opens a secondary window. It is drawn from within the main
// render pass with DrawHandle.RenderWindow.
func (fb *Framebuffer) AddWindow(width, height int, title string) (*Window, error) {
	w, err := fb.openWindow(width, height, title)
	if err != nil {
		return nil, err
	}
	fb.secondary = append(fb.secondary, w)
	return w, nil
}

func (fb *Framebuffer) openWindow(width, height int, title string) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, &OpError{Op: "create window", Err: errors.New("non-positive surface size")}
	}
	s, err := fb.backend.CreateSurface(width, height, title)
	if err != nil {
		return nil, &OpError{Op: "create window", Err: err}
	}
	fb.logger.Debug("window created", "title", title, "width", width, "height", height)
	return &Window{
		fb:      fb,
		surface: s,
		width:   width,
		height:  height,
		title:   title,
	}, nil
}

// Destroy closes every window and then the backend.
func (fb *Framebuffer) Destroy() error {
	var errs []error
	for _, w := range fb.secondary {
		errs = append(errs, w.close())
	}
	fb.secondary = nil
	if fb.main != nil {
		errs = append(errs, fb.main.close())
	}
	errs = append(errs, fb.backend.Close())
	return errors.Join(errs...)
}

// Close requests the loop to stop. It takes effect at the next check point,
// never in the middle of a callback.
func (fb *Framebuffer) Close() {
	fb.running = false
}

// Running reports whether the loop has not been asked to stop.
func (fb *Framebuffer) Running() bool {
	return fb.running
}

// Width returns the main surface width.
func (fb *Framebuffer) Width() int {
	return fb.main.width
}

// Height returns the main surface height.
func (fb *Framebuffer) Height() int {
	return fb.main.height
}

// WidthF returns the main surface width as a float.
func (fb *Framebuffer) WidthF() float64 {
	return float64(fb.main.width)
}

// HeightF returns the main surface height as a float.
func (fb *Framebuffer) HeightF() float64 {
	return float64(fb.main.height)
}

// Title returns the base title of the main window.
func (fb *Framebuffer) Title() string {
	return fb.main.title
}

// SetWindowTitle replaces the displayed main window title. The FPS
// diagnostic overwrites it on the next frame while Run is active.
func (fb *Framebuffer) SetWindowTitle(title string) {
	fb.main.surface.SetTitle(title)
}

// Main returns the main window.
func (fb *Framebuffer) Main() *Window {
	return fb.main
}

// UpdateRate returns the fixed number of updates per simulated second.
func (fb *Framebuffer) UpdateRate() int {
	return fb.updateRate
}

// DT returns the fixed simulation step in seconds.
func (fb *Framebuffer) DT() float64 {
	return fb.dt
}

// KeyPressed reports whether k is currently held.
func (fb *Framebuffer) KeyPressed(k core.Key) bool {
	return fb.keys.Pressed(k)
}

// GrabMouse switches relative (captured) mouse mode.
func (fb *Framebuffer) GrabMouse(enabled bool) {
	fb.backend.SetMouseGrab(enabled)
}

// MouseGrabbed reports whether the mouse is captured.
func (fb *Framebuffer) MouseGrabbed() bool {
	return fb.backend.MouseGrabbed()
}

// MousePosition returns the absolute cursor position in surface pixels.
func (fb *Framebuffer) MousePosition() (x, y int) {
	return fb.backend.MousePosition()
}

// MouseMotion returns the relative motion accumulated from MouseMove
// events since the previous call.
func (fb *Framebuffer) MouseMotion() (dx, dy int) {
	dx, dy = fb.motionX, fb.motionY
	fb.motionX, fb.motionY = 0, 0
	return dx, dy
}

// FPS returns the rolling average frame rate.
func (fb *Framebuffer) FPS() float64 {
	return fb.fps.Average()
}

// Frames returns the number of frames rendered so far.
func (fb *Framebuffer) Frames() uint64 {
	return fb.frames
}

// Updates returns the number of fixed updates run so far.
func (fb *Framebuffer) Updates() uint64 {
	return fb.updates
}

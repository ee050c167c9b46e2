// Package multiwindow drives a second window from the main render pass.
package multiwindow

import (
	"github.com/vovakirdan/picofb/internal/core"
	"github.com/vovakirdan/picofb/internal/engine"
	"github.com/vovakirdan/picofb/internal/registry"
)

// Window colors.
const (
	MainColor   core.Color = 0x330000
	SecondColor core.Color = 0x003300
)

// Demo implements registry.Demo.
type Demo struct {
	second *engine.Window
}

// New creates the demo.
func New() *Demo {
	return &Demo{}
}

// ID returns the demo identifier.
func (d *Demo) ID() string { return "multiwindow" }

// Title returns the window title.
func (d *Demo) Title() string { return "Window 1" }

// Defaults returns the runtime config.
func (d *Demo) Defaults() core.RuntimeConfig {
	return core.RuntimeConfig{Width: 300, Height: 200, Title: d.Title(), UpdateRate: 30}
}

// Attach opens the second window.
func (d *Demo) Attach(fb *engine.Framebuffer) error {
	w, err := fb.AddWindow(200, 300, "Window 2")
	if err != nil {
		return err
	}
	d.second = w
	return nil
}

// HandleEvent closes on Escape.
func (d *Demo) HandleEvent(fb *engine.Framebuffer, e core.Event) {
	if e.IsPress(core.KeyEscape) {
		fb.Close()
	}
}

// Update does nothing.
func (d *Demo) Update(*engine.Framebuffer, float64, float64) {}

// Render draws the main window, then the second one.
func (d *Demo) Render(h *engine.DrawHandle) {
	h.Fill(MainColor)
	h.DrawText(20, 20, core.White, "Hello from window 1")

	if d.second != nil {
		h.RenderWindow(d.second, &secondWindow{color: SecondColor})
	}
}

// secondWindow renders the second window. Only Render is ever called.
type secondWindow struct {
	color core.Color
}

func (s *secondWindow) HandleEvent(*engine.Framebuffer, core.Event)  {}
func (s *secondWindow) Update(*engine.Framebuffer, float64, float64) {}

func (s *secondWindow) Render(h *engine.DrawHandle) {
	h.Fill(s.color)
	h.DrawText(20, 20, core.White, "Hello from window 2")
}

func init() {
	registry.Register("multiwindow", func() registry.Demo {
		return New()
	})
}

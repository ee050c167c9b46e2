// Package drawkp fills the window with one color while Space is held and
// another otherwise.
package drawkp

import (
	"github.com/vovakirdan/picofb/internal/core"
	"github.com/vovakirdan/picofb/internal/engine"
	"github.com/vovakirdan/picofb/internal/registry"
)

// Fill colors.
const (
	HeldColor     core.Color = 0x770000
	ReleasedColor core.Color = 0x007700
)

// Demo implements registry.Demo.
type Demo struct{}

// New creates the demo.
func New() *Demo {
	return &Demo{}
}

// ID returns the demo identifier.
func (d *Demo) ID() string { return "drawkp" }

// Title returns the window title.
func (d *Demo) Title() string { return "Space to change color" }

// Defaults returns the runtime config.
func (d *Demo) Defaults() core.RuntimeConfig {
	return core.RuntimeConfig{Width: 300, Height: 300, Title: d.Title(), UpdateRate: 60}
}

// Attach does nothing.
func (d *Demo) Attach(*engine.Framebuffer) error { return nil }

// HandleEvent closes on Escape.
func (d *Demo) HandleEvent(fb *engine.Framebuffer, e core.Event) {
	if e.IsPress(core.KeyEscape) {
		fb.Close()
	}
}

// Update does nothing; the color is read from the key table at render time.
func (d *Demo) Update(*engine.Framebuffer, float64, float64) {}

// Render fills the surface.
func (d *Demo) Render(h *engine.DrawHandle) {
	if h.KeyPressed(core.KeySpace) {
		h.Fill(HeldColor)
	} else {
		h.Fill(ReleasedColor)
	}
}

func init() {
	registry.Register("drawkp", func() registry.Demo {
		return New()
	})
}

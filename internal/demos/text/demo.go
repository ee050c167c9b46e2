// Package text draws strings with the embedded PSF font, plus one line in
// a tinyfont face drawn through the surface's Displayer adapter.
package text

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/vovakirdan/picofb/internal/core"
	"github.com/vovakirdan/picofb/internal/engine"
	"github.com/vovakirdan/picofb/internal/registry"
)

var _ drivers.Displayer = (*core.Surface)(nil)

// TinyfontLine is drawn near the bottom of the window.
const TinyfontLine = "tinyfont TomThumb"

// Demo implements registry.Demo.
type Demo struct {
	seconds uint64
}

// New creates the demo.
func New() *Demo {
	return &Demo{}
}

// ID returns the demo identifier.
func (d *Demo) ID() string { return "text" }

// Title returns the window title.
func (d *Demo) Title() string { return "Text rendering" }

// Defaults returns the runtime config.
func (d *Demo) Defaults() core.RuntimeConfig {
	return core.RuntimeConfig{Width: 300, Height: 300, Title: d.Title(), UpdateRate: 30}
}

// Attach does nothing.
func (d *Demo) Attach(*engine.Framebuffer) error { return nil }

// HandleEvent closes on Escape.
func (d *Demo) HandleEvent(fb *engine.Framebuffer, e core.Event) {
	if e.IsPress(core.KeyEscape) {
		fb.Close()
	}
}

// Update records the whole simulated seconds.
func (d *Demo) Update(_ *engine.Framebuffer, _, t float64) {
	d.seconds = uint64(t)
}

// Seconds returns the simulation time shown on screen.
func (d *Demo) Seconds() uint64 { return d.seconds }

// Render draws the text.
func (d *Demo) Render(h *engine.DrawHandle) {
	h.Clear()
	h.DrawText(20, 20, core.White, "Hello, world!")
	h.DrawText(20, 40, core.White, fmt.Sprintf("Current time: %d", d.seconds))

	tinyfont.WriteLine(h.Surface(), &tinyfont.TomThumb, 20, int16(h.Height()-20), TinyfontLine,
		color.RGBA{R: 0x80, G: 0xC0, B: 0xFF, A: 0xFF})
}

func init() {
	registry.Register("text", func() registry.Demo {
		return New()
	})
}

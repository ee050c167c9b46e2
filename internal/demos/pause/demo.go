// Package pause draws three circles one at a time, pausing before each
// until C is pressed.
package pause

import (
	"github.com/vovakirdan/picofb/internal/core"
	"github.com/vovakirdan/picofb/internal/engine"
	"github.com/vovakirdan/picofb/internal/registry"
)

// ResumeKey continues past a pause.
const ResumeKey = core.KeyC

// CircleColor is the fill color of every circle.
const CircleColor core.Color = 0x00CC00

// Circle centers, all on the row y = 150 with radius 30.
var Centers = [...]int{70, 150, 230}

const (
	circleY      = 150
	circleRadius = 30
)

// Demo implements registry.Demo.
type Demo struct{}

// New creates the demo.
func New() *Demo {
	return &Demo{}
}

// ID returns the demo identifier.
func (d *Demo) ID() string { return "pause" }

// Title returns the window title.
func (d *Demo) Title() string { return "C to continue" }

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

// Update does nothing.
func (d *Demo) Update(*engine.Framebuffer, float64, float64) {}

// Render clears, then reveals the circles step by step.
func (d *Demo) Render(h *engine.DrawHandle) {
	h.Clear()
	h.Pause(ResumeKey)

	for _, x := range Centers {
		DrawCircle(h.Surface(), x, circleY, circleRadius, CircleColor)
		h.Pause(ResumeKey)
	}
}

// DrawCircle fills the disc of radius r around (x, y), clipped to the
// surface. The covered box starts one pixel up and left of the exact disc.
func DrawCircle(s *core.Surface, x, y, r int, c core.Color) {
	xMin := max(x-(r+1), 0)
	yMin := max(y-(r+1), 0)
	xMax := min(x+r, s.Width()-1)
	yMax := min(y+r, s.Height()-1)

	rr := r * r
	for px := xMin; px < xMax; px++ {
		for py := yMin; py < yMax; py++ {
			dx := px - x + 1
			dy := py - y + 1
			if dx*dx+dy*dy <= rr {
				s.SetUnchecked(px, py, c)
			}
		}
	}
}

func init() {
	registry.Register("pause", func() registry.Demo {
		return New()
	})
}

// Package bounce runs a fixed-step ball simulation. Space drops another
// ball, G toggles the mouse grab and mouse motion pushes every ball.
package bounce

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/picofb/internal/core"
	"github.com/vovakirdan/picofb/internal/engine"
	"github.com/vovakirdan/picofb/internal/registry"
)

// Simulation settings
const (
	Gravity     = 400.0 // Pixels per second squared
	Restitution = 0.85  // Fraction of speed kept on a floor bounce
	BallRadius  = 6
	MaxBalls    = 64
	MouseForce  = 20.0 // Velocity added per pixel of mouse motion
)

var palette = []core.Color{core.Red, core.Green, core.Blue, core.Yellow, core.Cyan, core.Magenta}

// Ball is one simulated ball.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Color  core.Color
}

// Demo implements registry.Demo.
type Demo struct {
	balls []Ball
	rng   *rand.Rand
	steps uint64
	simT  float64
}

// New creates the demo with a fixed seed.
func New() *Demo {
	return NewSeeded(1)
}

// NewSeeded creates the demo with the given seed.
func NewSeeded(seed int64) *Demo {
	return &Demo{rng: rand.New(rand.NewSource(seed))}
}

// ID returns the demo identifier.
func (d *Demo) ID() string { return "bounce" }

// Title returns the window title.
func (d *Demo) Title() string { return "Bounce" }

// Defaults returns the runtime config.
func (d *Demo) Defaults() core.RuntimeConfig {
	return core.RuntimeConfig{Width: 320, Height: 240, Title: d.Title(), UpdateRate: 120}
}

// Attach drops the first ball.
func (d *Demo) Attach(fb *engine.Framebuffer) error {
	d.Spawn(fb.WidthF()/2, fb.HeightF()/4)
	return nil
}

// Balls returns the current balls.
func (d *Demo) Balls() []Ball { return d.balls }

// Spawn adds a ball at (x, y) with a random sideways velocity. It is a
// no-op once MaxBalls exist.
func (d *Demo) Spawn(x, y float64) {
	if len(d.balls) >= MaxBalls {
		return
	}
	d.balls = append(d.balls, Ball{
		X:     x,
		Y:     y,
		VX:    d.rng.Float64()*240 - 120,
		Color: palette[len(d.balls)%len(palette)],
	})
}

// HandleEvent handles the demo's keys.
func (d *Demo) HandleEvent(fb *engine.Framebuffer, e core.Event) {
	switch {
	case e.IsPress(core.KeyEscape):
		fb.Close()
	case e.IsPress(core.KeySpace):
		d.Spawn(d.rng.Float64()*fb.WidthF(), BallRadius)
	case e.IsPress(core.KeyG):
		fb.GrabMouse(!fb.MouseGrabbed())
	}
}

// Update integrates one step with semi-implicit Euler and bounces off the
// window edges.
func (d *Demo) Update(fb *engine.Framebuffer, dt, t float64) {
	d.steps++
	d.simT = t

	mx, my := fb.MouseMotion()
	pushX, pushY := float64(mx)*MouseForce, float64(my)*MouseForce

	w, h := fb.WidthF(), fb.HeightF()
	const r = float64(BallRadius)
	for i := range d.balls {
		b := &d.balls[i]
		b.VX += pushX
		b.VY += pushY + Gravity*dt
		b.X += b.VX * dt
		b.Y += b.VY * dt

		if b.X < r {
			b.X, b.VX = r, -b.VX
		} else if b.X > w-r {
			b.X, b.VX = w-r, -b.VX
		}
		if b.Y < r {
			b.Y, b.VY = r, -b.VY
		} else if b.Y > h-r {
			b.Y, b.VY = h-r, -b.VY*Restitution
		}
	}
}

// Render draws the balls and a status line.
func (d *Demo) Render(h *engine.DrawHandle) {
	h.Clear()
	s := h.Surface()
	for _, b := range d.balls {
		s.FillCircle(int(b.X), int(b.Y), BallRadius, b.Color)
	}
	h.DrawText(4, 4, core.Gray, fmt.Sprintf("balls %d  t %.2f  steps %d", len(d.balls), d.simT, d.steps))
}

func init() {
	registry.Register("bounce", func() registry.Demo {
		return New()
	})
}

package drawkp

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/picofb/internal/clock"
	"github.com/vovakirdan/picofb/internal/core"
	"github.com/vovakirdan/picofb/internal/engine"
	"github.com/vovakirdan/picofb/internal/platform/headless"
)

// probe runs a hook after the demo's own render callback.
type probe struct {
	*Demo
	after func(h *engine.DrawHandle)
}

func (p probe) Render(h *engine.DrawHandle) {
	p.Demo.Render(h)
	p.after(h)
}

func TestColorFollowsSpace(t *testing.T) {
	clk := clock.NewManual(0)
	b := headless.New(clk)
	d := New()
	fb, err := engine.New(b, d.Defaults(), engine.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("engine.New() failed: %v", err)
	}

	var seen []core.Color
	fb.Benchmark(probe{Demo: d, after: func(h *engine.DrawHandle) {
		seen = append(seen, h.Surface().Get(150, 150))
		switch len(seen) {
		case 1:
			b.KeyDown(core.KeySpace)
		case 2:
			b.KeyUp(core.KeySpace)
		}
		clk.Advance(1.0 / 60)
	}}, 3)

	want := []core.Color{0xFF007700, 0xFF770000, 0xFF007700}
	if len(seen) != len(want) {
		t.Fatalf("rendered %d frames, expected %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("frame %d pixel = %#x, expected %#x", i, seen[i], want[i])
		}
	}
}

func TestEscapeCloses(t *testing.T) {
	clk := clock.NewManual(0)
	clk.AutoAdvance = true
	b := headless.New(clk)
	d := New()
	fb, _ := engine.New(b, d.Defaults(), engine.WithLogger(log.New(io.Discard)))

	b.KeyDown(core.KeyEscape)
	fb.Run(d)

	if fb.Running() {
		t.Error("Escape should stop the loop")
	}
	if fb.Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", fb.Frames())
	}
}

package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/picofb/internal/core"
)

// Run drives state until the backend reports quit or a callback calls Close.
func (fb *Framebuffer) Run(state MainLoop) {
	fb.loop(state, -1)
}

// Benchmark is Run bounded to frames rendered frames. It returns the number
// of frames actually rendered, which is lower if the loop was stopped early.
func (fb *Framebuffer) Benchmark(state MainLoop, frames int) int {
	if frames <= 0 {
		return 0
	}
	return fb.loop(state, frames)
}

func (fb *Framebuffer) loop(state MainLoop, limit int) int {
	start := fb.backend.Now()
	var steps uint64
	rendered := 0

	fb.logger.Info("main loop started", "title", fb.main.title, "update_rate", fb.updateRate, "frame_limit", limit)

	for fb.running && (limit < 0 || rendered < limit) {
		realTime := fb.backend.Now()

		// Sim time is derived from the step count so it never drifts from
		// an exact multiple of dt.
		for fb.running && start+float64(steps)*fb.dt < realTime {
			fb.pollEvents(state)
			steps++
			fb.updates++
			state.Update(fb, fb.dt, start+float64(steps)*fb.dt)
		}

		if !fb.running {
			break
		}

		fb.main.render(state.Render)
		fb.frames++
		rendered++

		elapsed := fb.backend.Now() - realTime
		fb.limitFrameRate(elapsed)

		if limit < 0 {
			avg := fb.fps.AddFrameTime(elapsed)
			fb.main.surface.SetTitle(fmt.Sprintf("%s FPS %5.3f", fb.main.title, avg))
		} else {
			fb.main.surface.SetTitle(fmt.Sprintf("%s frame %d/%d", fb.main.title, rendered, limit))
		}
	}

	fb.logger.Info("main loop stopped", "frames", rendered, "updates", steps)
	return rendered
}

// limitFrameRate sleeps off whatever is left of the ceiling's frame budget.
func (fb *Framebuffer) limitFrameRate(elapsed float64) {
	if fb.ceiling <= 0 {
		return
	}
	remaining := 1/fb.ceiling - elapsed
	if remaining <= 0 {
		return
	}
	ms := math.Floor(remaining * 1000)
	if ms <= 0 {
		return
	}
	fb.backend.Sleep(time.Duration(ms) * time.Millisecond)
}

// pollEvents drains the native queue, updating the key table and calling
// HandleEvent once per translated event.
func (fb *Framebuffer) pollEvents(state MainLoop) {
	for {
		raw, ok := fb.backend.PollEvent()
		if !ok {
			return
		}
		ev, ok := fb.translate(raw)
		if !ok {
			continue
		}
		state.HandleEvent(fb, ev)
	}
}

// translate maps a native event to its semantic form and applies its side
// effects. Quit stops the loop; unknown keys and other categories are dropped.
func (fb *Framebuffer) translate(raw RawEvent) (core.Event, bool) {
	switch raw.Kind {
	case RawKeyDown, RawKeyUp:
		if raw.Key == core.KeyUnknown {
			fb.logger.Debug("dropping unmapped key", "kind", raw.Kind)
			return core.Event{}, false
		}
		ev := core.KeyPress(raw.Key)
		if raw.Kind == RawKeyUp {
			ev = core.KeyRelease(raw.Key)
		}
		fb.keys.Apply(ev)
		return ev, true
	case RawMouseMotion:
		fb.motionX += raw.DX
		fb.motionY += raw.DY
		return core.MouseMove(raw.DX, raw.DY), true
	case RawQuit:
		fb.logger.Debug("quit requested by backend")
		fb.running = false
		return core.Event{}, false
	default:
		return core.Event{}, false
	}
}

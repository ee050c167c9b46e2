package engine

import (
	"time"

	"github.com/vovakirdan/picofb/internal/core"
)

// PausePollInterval is the present/poll cadence of the pause loop.
const PausePollInterval = 16 * time.Millisecond

// Pause blocks inside the render pass until resume is pressed, presenting
// the surface as drawn so far. No callbacks run and simulation time does not
// advance. The mouse grab is released while paused and restored afterwards.
//
// Escape or a quit signal terminates the process immediately through the
// exit hook (os.Exit by default) rather than stopping the loop. If the hook
// returns, the pause ends and the framebuffer is closed.
func (d *DrawHandle) Pause(resume core.Key) {
	if d.released {
		panic("engine: DrawHandle used after its render pass")
	}
	fb := d.win.fb

	grab := fb.backend.MouseGrabbed()
	fb.backend.SetMouseGrab(false)
	d.win.surface.SetTitle(d.win.title + " [paused]")
	fb.logger.Debug("paused", "resume", resume)

	for !fb.pollResume(resume) {
		d.win.present()
		fb.backend.Sleep(PausePollInterval)
	}

	fb.backend.SetMouseGrab(grab)
	d.win.surface.SetTitle(d.win.title)
	fb.logger.Debug("resumed")
}

// pollResume drains native events looking for resume. Other events are
// discarded without touching the key table.
func (fb *Framebuffer) pollResume(resume core.Key) bool {
	for {
		raw, ok := fb.backend.PollEvent()
		if !ok {
			return false
		}
		switch raw.Kind {
		case RawKeyDown:
			if raw.Key == resume {
				return true
			}
			if raw.Key == core.KeyEscape {
				return fb.terminate()
			}
		case RawQuit:
			return fb.terminate()
		}
	}
}

func (fb *Framebuffer) terminate() bool {
	fb.logger.Debug("exiting from pause")
	fb.exit(0)
	fb.running = false
	return true
}

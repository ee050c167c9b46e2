package engine

import (
	"fmt"

	"github.com/vovakirdan/picofb/internal/core"
	"github.com/vovakirdan/picofb/internal/font"
)

// Window is one collaborator surface owned by a Framebuffer.
type Window struct {
	fb      *Framebuffer
	surface Surface
	width   int
	height  int
	title   string
	locked  bool
	closed  bool
}

// Width returns the surface width.
func (w *Window) Width() int { return w.width }

// Height returns the surface height.
func (w *Window) Height() int { return w.height }

// Title returns the base title.
func (w *Window) Title() string { return w.title }

// SetTitle replaces the displayed title.
func (w *Window) SetTitle(title string) {
	w.surface.SetTitle(title)
}

// render runs one scoped write pass: lock, draw, present, unlock. The
// surface is unlocked and the handle invalidated on every exit path,
// including a panicking draw function; present is skipped in that case.
func (w *Window) render(draw func(d *DrawHandle)) {
	d := w.begin()
	defer d.release()

	draw(d)
	w.present()
}

func (w *Window) begin() *DrawHandle {
	if w.closed {
		panic(fmt.Sprintf("engine: render on closed window %q", w.title))
	}
	if w.locked {
		panic(fmt.Sprintf("engine: window %q is already being rendered", w.title))
	}
	pixels, pitch, err := w.surface.Lock()
	if err != nil {
		panic(&OpError{Op: "lock texture", Err: err})
	}
	if pitch != w.width*4 {
		w.surface.Unlock()
		panic(&OpError{Op: "lock texture", Err: fmt.Errorf("row pitch %d bytes, expected %d", pitch, w.width*4)})
	}
	if n := w.width * w.height; len(pixels) < n {
		w.surface.Unlock()
		panic(&OpError{Op: "lock texture", Err: fmt.Errorf("view holds %d pixels, expected %d", len(pixels), n)})
	}
	w.locked = true
	return &DrawHandle{
		win:     w,
		surface: core.NewSurfaceView(w.width, w.height, pixels[:w.width*w.height]),
	}
}

func (w *Window) present() {
	if err := w.surface.Present(); err != nil {
		panic(&OpError{Op: "present", Err: err})
	}
}

func (w *Window) close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.surface.Close()
}

// DrawHandle is the exclusive write view of a window's surface for the
// duration of one render pass. It must not be retained past Render.
type DrawHandle struct {
	win      *Window
	surface  *core.Surface
	released bool
}

func (d *DrawHandle) release() {
	if d.released {
		return
	}
	d.released = true
	d.surface = nil
	d.win.locked = false
	d.win.surface.Unlock()
}

// Surface returns the pixel surface of this pass.
func (d *DrawHandle) Surface() *core.Surface {
	if d.released {
		panic("engine: DrawHandle used after its render pass")
	}
	return d.surface
}

// Width returns the surface width.
func (d *DrawHandle) Width() int { return d.win.width }

// Height returns the surface height.
func (d *DrawHandle) Height() int { return d.win.height }

// WidthF returns the surface width as a float.
func (d *DrawHandle) WidthF() float64 { return float64(d.win.width) }

// HeightF returns the surface height as a float.
func (d *DrawHandle) HeightF() float64 { return float64(d.win.height) }

// Clear zeroes the whole surface, alpha included.
func (d *DrawHandle) Clear() {
	d.Surface().Clear()
}

// Fill paints the whole surface with an opaque color.
func (d *DrawHandle) Fill(c core.Color) {
	d.Surface().Fill(c)
}

// Set writes one opaque pixel; out-of-range writes are dropped.
func (d *DrawHandle) Set(x, y int, c core.Color) {
	d.Surface().Set(x, y, c)
}

// SetUnchecked writes one opaque pixel. The caller guarantees the
// coordinates are inside the surface.
func (d *DrawHandle) SetUnchecked(x, y int, c core.Color) {
	d.Surface().SetUnchecked(x, y, c)
}

// Pixels exposes the raw pixel run for bulk writes. Alpha is not forced.
func (d *DrawHandle) Pixels() []uint32 {
	return d.Surface().Pixels()
}

// DrawText renders text with the embedded default font.
func (d *DrawHandle) DrawText(x, y int, c core.Color, text string) {
	font.Default().Render(d.Surface(), x, y, c, text)
}

// KeyPressed reports whether k is currently held.
func (d *DrawHandle) KeyPressed(k core.Key) bool {
	return d.win.fb.KeyPressed(k)
}

// RenderWindow runs state.Render as a scoped pass on a secondary window and
// presents it. Only the render callback of state is used.
func (d *DrawHandle) RenderWindow(w *Window, state MainLoop) {
	if d.released {
		panic("engine: DrawHandle used after its render pass")
	}
	if w.fb != d.win.fb {
		panic("engine: window belongs to another framebuffer")
	}
	w.render(state.Render)
}

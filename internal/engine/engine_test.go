package engine_test

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/picofb/internal/clock"
	"github.com/vovakirdan/picofb/internal/core"
	"github.com/vovakirdan/picofb/internal/engine"
	"github.com/vovakirdan/picofb/internal/platform/headless"
)

// recorder is a MainLoop whose callbacks are optional and whose calls are logged.
type recorder struct {
	calls    []string
	events   []core.Event
	times    []float64
	onEvent  func(fb *engine.Framebuffer, e core.Event)
	onUpdate func(fb *engine.Framebuffer, dt, t float64)
	onRender func(d *engine.DrawHandle)
}

func (r *recorder) HandleEvent(fb *engine.Framebuffer, e core.Event) {
	r.calls = append(r.calls, "event")
	r.events = append(r.events, e)
	if r.onEvent != nil {
		r.onEvent(fb, e)
	}
}

func (r *recorder) Update(fb *engine.Framebuffer, dt, t float64) {
	r.calls = append(r.calls, "update")
	r.times = append(r.times, t)
	if r.onUpdate != nil {
		r.onUpdate(fb, dt, t)
	}
}

func (r *recorder) Render(d *engine.DrawHandle) {
	r.calls = append(r.calls, "render")
	if r.onRender != nil {
		r.onRender(d)
	}
}

func (r *recorder) count(name string) int {
	n := 0
	for _, c := range r.calls {
		if c == name {
			n++
		}
	}
	return n
}

var quiet = log.New(io.Discard)

func newTestFB(t *testing.T, cfg core.RuntimeConfig, opts ...engine.Option) (*engine.Framebuffer, *headless.Backend, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(0)
	b := headless.New(clk)
	opts = append([]engine.Option{engine.WithLogger(quiet)}, opts...)
	fb, err := engine.New(b, cfg, opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return fb, b, clk
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{Width: 16, Height: 8, Title: "test", UpdateRate: 60}
}

func TestFixedStepSixUpdatesPerTenthSecond(t *testing.T) {
	fb, _, clk := newTestFB(t, testConfig())

	r := &recorder{}
	r.onRender = func(d *engine.DrawHandle) {
		if r.count("render") == 1 {
			clk.Advance(0.1)
		}
	}

	if n := fb.Benchmark(r, 2); n != 2 {
		t.Fatalf("Benchmark() rendered %d frames, expected 2", n)
	}

	want := []string{"render", "update", "update", "update", "update", "update", "update", "render"}
	if strings.Join(r.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, expected %v", r.calls, want)
	}

	dt := 1.0 / 60
	for i, tm := range r.times {
		expected := float64(i+1) * dt
		if math.Abs(tm-expected) > 1e-12 {
			t.Errorf("update #%d sim time = %v, expected %v", i, tm, expected)
		}
		if i > 0 && tm <= r.times[i-1] {
			t.Errorf("sim time not increasing at update #%d", i)
		}
	}
}

func TestUpdateReceivesFixedDT(t *testing.T) {
	fb, _, clk := newTestFB(t, core.RuntimeConfig{Width: 4, Height: 4, UpdateRate: 30})

	var dts []float64
	r := &recorder{
		onUpdate: func(_ *engine.Framebuffer, dt, _ float64) { dts = append(dts, dt) },
		onRender: func(*engine.DrawHandle) { clk.Advance(0.0537) },
	}
	fb.Benchmark(r, 5)

	if len(dts) == 0 {
		t.Fatal("no updates ran")
	}
	for i, dt := range dts {
		if dt != 1.0/30 {
			t.Errorf("update #%d dt = %v, expected %v", i, dt, 1.0/30)
		}
	}
}

func TestEventsDrainedInOrderBeforeUpdate(t *testing.T) {
	fb, b, clk := newTestFB(t, testConfig())

	var pressedDuringUpdate []bool
	r := &recorder{
		onUpdate: func(fb *engine.Framebuffer, _, _ float64) {
			pressedDuringUpdate = append(pressedDuringUpdate, fb.KeyPressed(core.KeySpace))
		},
	}
	r.onRender = func(*engine.DrawHandle) {
		if r.count("render") == 1 {
			b.KeyDown(core.KeySpace)
			b.Push(engine.RawEvent{Kind: engine.RawKeyDown, Key: core.KeyUnknown})
			b.Push(engine.RawEvent{Kind: engine.RawOther})
			b.MoveMouse(3, -2)
			b.KeyDown(core.KeySpace)
			clk.Advance(1.0 / 120)
		}
	}
	fb.Benchmark(r, 2)

	want := []core.Event{core.KeyPress(core.KeySpace), core.MouseMove(3, -2), core.KeyPress(core.KeySpace)}
	if len(r.events) != len(want) {
		t.Fatalf("events = %v, expected %v", r.events, want)
	}
	for i := range want {
		if r.events[i] != want[i] {
			t.Errorf("event #%d = %v, expected %v", i, r.events[i], want[i])
		}
	}
	if len(pressedDuringUpdate) != 1 || !pressedDuringUpdate[0] {
		t.Errorf("update should observe Space pressed, got %v", pressedDuringUpdate)
	}
	if dx, dy := fb.MouseMotion(); dx != 3 || dy != -2 {
		t.Errorf("MouseMotion() = (%d, %d), expected (3, -2)", dx, dy)
	}
	if dx, dy := fb.MouseMotion(); dx != 0 || dy != 0 {
		t.Errorf("MouseMotion() should reset after read, got (%d, %d)", dx, dy)
	}
}

func TestKeyReleaseUpdatesState(t *testing.T) {
	fb, b, clk := newTestFB(t, testConfig())

	r := &recorder{}
	r.onRender = func(d *engine.DrawHandle) {
		switch r.count("render") {
		case 1:
			b.KeyDown(core.KeyA)
		case 2:
			if !d.KeyPressed(core.KeyA) {
				t.Error("A should be pressed in the second frame")
			}
			b.KeyUp(core.KeyA)
		case 3:
			if d.KeyPressed(core.KeyA) {
				t.Error("A should be released in the third frame")
			}
		}
		clk.Advance(1.0 / 60)
	}
	fb.Benchmark(r, 3)
}

func TestQuitStopsWithoutRendering(t *testing.T) {
	fb, b, clk := newTestFB(t, testConfig())

	r := &recorder{}
	r.onRender = func(*engine.DrawHandle) {
		b.Quit()
		clk.Advance(0.05)
	}
	fb.Run(r)

	if r.count("render") != 1 {
		t.Errorf("render ran %d times, expected 1", r.count("render"))
	}
	if r.calls[len(r.calls)-1] == "render" {
		t.Error("loop rendered after quit")
	}
	if fb.Running() {
		t.Error("Running() should be false after quit")
	}
}

func TestCloseFromEventHandler(t *testing.T) {
	fb, b, clk := newTestFB(t, testConfig())

	r := &recorder{
		onEvent: func(fb *engine.Framebuffer, e core.Event) {
			if e.IsPress(core.KeyEscape) {
				fb.Close()
			}
		},
	}
	r.onRender = func(*engine.DrawHandle) {
		b.KeyDown(core.KeyEscape)
		clk.Advance(0.1)
	}
	fb.Run(r)

	if r.count("render") != 1 {
		t.Errorf("render ran %d times, expected 1", r.count("render"))
	}
	if r.count("update") != 1 {
		t.Errorf("update ran %d times, expected the in-flight step only", r.count("update"))
	}
}

func TestCloseFromUpdateStopsSteps(t *testing.T) {
	fb, _, clk := newTestFB(t, testConfig())

	r := &recorder{}
	r.onUpdate = func(fb *engine.Framebuffer, _, _ float64) {
		if r.count("update") == 2 {
			fb.Close()
		}
	}
	r.onRender = func(*engine.DrawHandle) { clk.Advance(0.1) }
	fb.Run(r)

	if r.count("update") != 2 {
		t.Errorf("update ran %d times, expected 2", r.count("update"))
	}
}

func TestBenchmarkTitleAndCount(t *testing.T) {
	fb, b, clk := newTestFB(t, testConfig())

	r := &recorder{onRender: func(*engine.DrawHandle) { clk.Advance(0.01) }}
	if n := fb.Benchmark(r, 3); n != 3 {
		t.Errorf("Benchmark() = %d, expected 3", n)
	}
	if got := b.Surfaces()[0].Title(); got != "test frame 3/3" {
		t.Errorf("title = %q, expected %q", got, "test frame 3/3")
	}
	if fb.Frames() != 3 {
		t.Errorf("Frames() = %d, expected 3", fb.Frames())
	}
	if n := fb.Benchmark(r, 0); n != 0 {
		t.Errorf("Benchmark(0) = %d, expected 0", n)
	}
}

func TestRunTitleShowsFPS(t *testing.T) {
	fb, b, clk := newTestFB(t, testConfig())

	r := &recorder{}
	r.onRender = func(*engine.DrawHandle) {
		clk.Advance(0.01)
		if r.count("render") == 4 {
			b.Quit()
		}
	}
	fb.Run(r)

	title := b.Surfaces()[0].Title()
	if !strings.HasPrefix(title, "test FPS ") {
		t.Errorf("title = %q, expected FPS diagnostic", title)
	}
	if fb.FPS() <= 0 {
		t.Errorf("FPS() = %v, expected a positive average", fb.FPS())
	}
}

func TestFrameRateCeilingSleeps(t *testing.T) {
	fb, _, clk := newTestFB(t, testConfig())

	fb.Benchmark(&recorder{}, 3)

	n, total := clk.Slept()
	if n != 3 || total != 6*time.Millisecond {
		t.Errorf("Slept() = %d calls, %v; expected 3 calls, 6ms", n, total)
	}

	fb2, _, clk2 := newTestFB(t, testConfig())
	fb2.Benchmark(&recorder{onRender: func(*engine.DrawHandle) { clk2.Advance(0.01) }}, 3)
	if n, _ := clk2.Slept(); n != 0 {
		t.Errorf("slow frames should not sleep, got %d sleeps", n)
	}
}

func TestRenderPresentsAndUnlocks(t *testing.T) {
	fb, b, _ := newTestFB(t, testConfig())

	r := &recorder{onRender: func(d *engine.DrawHandle) {
		d.Clear()
		d.Set(2, 3, 0x123456)
		d.Set(100, 100, 0x123456)
	}}
	fb.Benchmark(r, 1)

	s := b.Surfaces()[0]
	if s.Locked() {
		t.Error("surface still locked after the pass")
	}
	if s.Presents() != 1 {
		t.Errorf("Presents() = %d, expected 1", s.Presents())
	}
	if got := s.Frame().Get(2, 3); got != 0xFF123456 {
		t.Errorf("presented pixel = %#x, expected 0xff123456", got)
	}
}

func TestRenderPanicReleasesSurface(t *testing.T) {
	fb, b, _ := newTestFB(t, testConfig())

	func() {
		defer func() {
			if recover() == nil {
				t.Error("render panic should propagate")
			}
		}()
		fb.Benchmark(&recorder{onRender: func(*engine.DrawHandle) { panic("boom") }}, 1)
	}()

	s := b.Surfaces()[0]
	if s.Locked() {
		t.Error("surface must be unlocked after a panicking render")
	}
	if s.Presents() != 0 {
		t.Error("a failed pass must not be presented")
	}
}

func TestHandleInvalidAfterPass(t *testing.T) {
	fb, _, _ := newTestFB(t, testConfig())

	var kept *engine.DrawHandle
	fb.Benchmark(&recorder{onRender: func(d *engine.DrawHandle) { kept = d }}, 1)

	defer func() {
		if recover() == nil {
			t.Error("using a DrawHandle after its pass should panic")
		}
	}()
	kept.Set(0, 0, core.White)
}

func TestPitchMismatchIsFatal(t *testing.T) {
	fb, b, _ := newTestFB(t, testConfig())
	b.Surfaces()[0].Pitch = 99

	defer func() {
		r := recover()
		err, ok := r.(error)
		var opErr *engine.OpError
		if !ok || !errors.As(err, &opErr) || opErr.Op != "lock texture" {
			t.Errorf("recovered %v, expected *OpError for lock texture", r)
		}
		if b.Surfaces()[0].Locked() {
			t.Error("surface left locked after pitch failure")
		}
	}()
	fb.Benchmark(&recorder{}, 1)
}

func TestShortViewIsFatal(t *testing.T) {
	fb, b, _ := newTestFB(t, testConfig())
	b.Surfaces()[0].Short = 3

	defer func() {
		r := recover()
		err, ok := r.(error)
		var opErr *engine.OpError
		if !ok || !errors.As(err, &opErr) || opErr.Op != "lock texture" {
			t.Errorf("recovered %v, expected *OpError for lock texture", r)
		}
		if b.Surfaces()[0].Locked() {
			t.Error("surface left locked after short view")
		}
	}()
	fb.Benchmark(&recorder{}, 1)
}

func TestNewReportsCollaboratorFailure(t *testing.T) {
	b := headless.New(clock.NewManual(0))
	b.FailCreate = errors.New("no display")

	_, err := engine.New(b, testConfig(), engine.WithLogger(quiet))
	var opErr *engine.OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("New() error = %v, expected *OpError", err)
	}
	if err.Error() != "failed to create window: no display" {
		t.Errorf("Error() = %q", err.Error())
	}

	_, err = engine.New(headless.New(nil), core.RuntimeConfig{Width: 0, Height: 1, UpdateRate: 60}, engine.WithLogger(quiet))
	if err == nil {
		t.Error("New() with an invalid config should fail")
	}
}

func TestAccessors(t *testing.T) {
	fb, b, _ := newTestFB(t, core.RuntimeConfig{Width: 320, Height: 200, Title: "acc", UpdateRate: 50})

	if fb.Width() != 320 || fb.Height() != 200 || fb.WidthF() != 320 || fb.HeightF() != 200 {
		t.Error("size accessors wrong")
	}
	if fb.DT() != 0.02 || fb.UpdateRate() != 50 || fb.Title() != "acc" {
		t.Errorf("DT() = %v, UpdateRate() = %d, Title() = %q", fb.DT(), fb.UpdateRate(), fb.Title())
	}

	fb.GrabMouse(true)
	if !fb.MouseGrabbed() {
		t.Error("GrabMouse(true) not forwarded")
	}
	b.MoveMouse(5, 7)
	if x, y := fb.MousePosition(); x != 5 || y != 7 {
		t.Errorf("MousePosition() = (%d, %d), expected (5, 7)", x, y)
	}

	fb.SetWindowTitle("custom")
	if b.Surfaces()[0].Title() != "custom" {
		t.Error("SetWindowTitle not forwarded")
	}
}

func TestSecondaryWindow(t *testing.T) {
	fb, b, _ := newTestFB(t, testConfig())
	win, err := fb.AddWindow(6, 4, "second")
	if err != nil {
		t.Fatalf("AddWindow() failed: %v", err)
	}

	inner := &recorder{onRender: func(d *engine.DrawHandle) {
		if d.Width() != 6 || d.Height() != 4 {
			t.Errorf("secondary handle size = %dx%d", d.Width(), d.Height())
		}
		d.Fill(0x003300)
	}}
	outer := &recorder{onRender: func(d *engine.DrawHandle) {
		d.Fill(0x330000)
		d.RenderWindow(win, inner)
	}}
	fb.Benchmark(outer, 1)

	surfaces := b.Surfaces()
	if got := surfaces[0].Frame().Get(0, 0); got != 0xFF330000 {
		t.Errorf("main pixel = %#x", got)
	}
	if got := surfaces[1].Frame().Get(5, 3); got != 0xFF003300 {
		t.Errorf("secondary pixel = %#x", got)
	}
	if inner.count("update") != 0 || inner.count("event") != 0 {
		t.Error("RenderWindow must only use the render callback")
	}

	if err := fb.Destroy(); err != nil {
		t.Fatalf("Destroy() failed: %v", err)
	}
	if !b.Closed() {
		t.Error("backend not closed by Destroy")
	}
}

func TestRenderWindowRejectsMainWindow(t *testing.T) {
	fb, _, _ := newTestFB(t, testConfig())

	defer func() {
		if recover() == nil {
			t.Error("rendering the locked main window again should panic")
		}
	}()
	fb.Benchmark(&recorder{onRender: func(d *engine.DrawHandle) {
		d.RenderWindow(fb.Main(), &recorder{})
	}}, 1)
}

func TestDrawText(t *testing.T) {
	fb, b, _ := newTestFB(t, core.RuntimeConfig{Width: 40, Height: 20, UpdateRate: 60})

	fb.Benchmark(&recorder{onRender: func(d *engine.DrawHandle) {
		d.Clear()
		d.DrawText(0, 0, core.White, "Hi")
	}}, 1)

	lit := 0
	frame := b.Surfaces()[0].Frame()
	for _, p := range frame.Pixels() {
		if p == 0xFFFFFFFF {
			lit++
		}
	}
	if lit == 0 {
		t.Error("DrawText drew nothing")
	}
}

func ExampleOpError() {
	err := &engine.OpError{Op: "create renderer", Err: errors.New("no GL context")}
	fmt.Println(err)
	// Output: failed to create renderer: no GL context
}

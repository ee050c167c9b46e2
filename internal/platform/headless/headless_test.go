package headless

import (
	"errors"
	"testing"

	"github.com/vovakirdan/picofb/internal/clock"
	"github.com/vovakirdan/picofb/internal/core"
	"github.com/vovakirdan/picofb/internal/engine"
)

func TestQueueOrder(t *testing.T) {
	b := New(clock.NewManual(0))
	b.KeyDown(core.KeyA)
	b.MoveMouse(2, -1)
	b.KeyUp(core.KeyA)
	b.Quit()

	want := []engine.RawKind{engine.RawKeyDown, engine.RawMouseMotion, engine.RawKeyUp, engine.RawQuit}
	for i, kind := range want {
		ev, ok := b.PollEvent()
		if !ok {
			t.Fatalf("PollEvent() #%d returned no event", i)
		}
		if ev.Kind != kind {
			t.Errorf("event #%d kind = %v, expected %v", i, ev.Kind, kind)
		}
	}
	if _, ok := b.PollEvent(); ok {
		t.Error("queue should be empty")
	}
	if x, y := b.MousePosition(); x != 2 || y != -1 {
		t.Errorf("MousePosition() = (%d, %d), expected (2, -1)", x, y)
	}
}

func TestSurfacePresentCopiesBackBuffer(t *testing.T) {
	b := New(nil)
	es, err := b.CreateSurface(4, 2, "t")
	if err != nil {
		t.Fatalf("CreateSurface() failed: %v", err)
	}
	s := es.(*Surface)

	pix, pitch, err := s.Lock()
	if err != nil {
		t.Fatalf("Lock() failed: %v", err)
	}
	if pitch != 16 {
		t.Errorf("pitch = %d, expected 16", pitch)
	}
	if _, _, err := s.Lock(); err == nil {
		t.Error("second Lock() should fail while locked")
	}

	pix[5] = 0xFF00FF00
	if s.Frame().Get(1, 1) != 0 {
		t.Error("front buffer changed before Present")
	}
	if err := s.Present(); err != nil {
		t.Fatalf("Present() failed: %v", err)
	}
	s.Unlock()

	if got := s.Frame().Get(1, 1); got != 0xFF00FF00 {
		t.Errorf("presented pixel = %#x, expected 0xff00ff00", got)
	}
	if s.Presents() != 1 || s.Locks() != 1 {
		t.Errorf("Presents() = %d, Locks() = %d; expected 1, 1", s.Presents(), s.Locks())
	}
}

func TestCloseRequiresClosedSurfaces(t *testing.T) {
	b := New(nil)
	s, _ := b.CreateSurface(1, 1, "a")

	if err := b.Close(); err == nil {
		t.Fatal("Close() with an open surface should fail")
	}
	s.Close()
	if err := b.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if _, err := b.CreateSurface(1, 1, "b"); !errors.Is(err, ErrClosed) {
		t.Errorf("CreateSurface() after Close = %v, expected ErrClosed", err)
	}
}

package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/picofb/internal/config"
	"github.com/vovakirdan/picofb/internal/font"
	"github.com/vovakirdan/picofb/internal/platform/headless"
	"github.com/vovakirdan/picofb/internal/registry"
)

func headlessConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Backend = config.BackendHeadless
	cfg.Headless.ManualClock = true
	cfg.Headless.Frames = 5
	cfg.Screenshot.Dir = t.TempDir()
	return cfg
}

func TestHeadlessLaunchUsesFrameBudget(t *testing.T) {
	s, err := openBackend(headlessConfig(t), log.New(io.Discard), 0)
	if err != nil {
		t.Fatalf("openBackend() failed: %v", err)
	}
	if s.limit != 5 {
		t.Errorf("limit = %d, expected 5", s.limit)
	}

	res, err := s.launch("drawkp")
	if err != nil {
		t.Fatalf("launch() failed: %v", err)
	}
	if res.Frames != 5 {
		t.Errorf("Frames = %d, expected 5", res.Frames)
	}
	if !s.backend.(*headless.Backend).Closed() {
		t.Error("backend should be closed after launch")
	}
}

func TestLaunchUnknownDemo(t *testing.T) {
	s, err := openBackend(headlessConfig(t), log.New(io.Discard), 1)
	if err != nil {
		t.Fatalf("openBackend() failed: %v", err)
	}
	if _, err := s.launch("nope"); err == nil {
		t.Error("launch() should fail for an unknown demo")
	}
}

func TestScreenshotOnKey(t *testing.T) {
	cfg := headlessConfig(t)
	s, err := openBackend(cfg, log.New(io.Discard), 3)
	if err != nil {
		t.Fatalf("openBackend() failed: %v", err)
	}
	// F12 is waiting in the queue before the first update.
	b := s.backend.(*headless.Backend)
	key, _ := cfg.ScreenshotKey()
	b.KeyDown(key)
	b.KeyUp(key)

	if _, err := s.launch("text"); err != nil {
		t.Fatalf("launch() failed: %v", err)
	}

	entries, err := os.ReadDir(cfg.Screenshot.Dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("found %d screenshots, expected 1", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "text-") || filepath.Ext(name) != ".png" {
		t.Errorf("screenshot name = %q", name)
	}
}

func TestPreview(t *testing.T) {
	face := font.Default()
	out := preview(face, "I")
	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(rows) != face.Height() {
		t.Fatalf("preview has %d rows, expected %d", len(rows), face.Height())
	}
	if len(rows[0]) != face.Width() {
		t.Errorf("row width = %d, expected %d", len(rows[0]), face.Width())
	}
	if !strings.Contains(out, "#") {
		t.Error("preview of 'I' has no lit pixels")
	}
	if preview(face, "") != "" {
		t.Error("empty text should give an empty preview")
	}
}

func TestRuntimeForFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Demos = map[string]config.DemoOverride{"bounce": {UpdateRate: 30, Height: 50}}

	flagWidth, flagHeight = 100, 0
	t.Cleanup(func() { flagWidth = 0 })

	demo, err := registry.Create("bounce")
	if err != nil {
		t.Fatal(err)
	}
	rc := runtimeFor(cfg, "bounce", demo.Defaults())
	if rc.Width != 100 || rc.Height != 50 || rc.UpdateRate != 30 {
		t.Errorf("runtimeFor() = %+v, expected 100x50 at 30", rc)
	}
	if rc.Title != demo.Defaults().Title {
		t.Errorf("Title = %q, expected %q", rc.Title, demo.Defaults().Title)
	}
}

package snapshot

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/bmp"

	"github.com/vovakirdan/picofb/internal/core"
)

func testSurface() *core.Surface {
	s := core.NewSurface(3, 2)
	s.Set(0, 0, core.RGB(255, 0, 0))
	s.Set(2, 1, core.RGB(0, 0, 255))
	return s
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testSurface(), FormatPNG); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("bounds = %v, expected 3x2", b)
	}
	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 || a>>8 != 255 {
		t.Errorf("At(0, 0) = %d %d %d %d, expected opaque red", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestSaveBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.bmp")
	if err := Save(path, testSurface()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("bmp.Decode() failed: %v", err)
	}
	_, _, b, _ := img.At(2, 1).RGBA()
	if b>>8 != 255 {
		t.Errorf("At(2, 1) blue = %d, expected 255", b>>8)
	}
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	if err := Save(filepath.Join(t.TempDir(), "shot.gif"), testSurface()); err == nil {
		t.Error("Save() with .gif should fail")
	}
}

func TestName(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 6, 7_000_000, time.UTC)
	if got := Name("pause", FormatPNG, ts); got != "pause-20240309-140506.007.png" {
		t.Errorf("Name() = %q", got)
	}
}

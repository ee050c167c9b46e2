// Package snapshot writes surfaces to image files.
package snapshot

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"

	"github.com/vovakirdan/picofb/internal/core"
)

// Image formats.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// Encode writes s to w in format.
func Encode(w io.Writer, s *core.Surface, format string) error {
	img := s.Image()
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("snapshot: unsupported format %q", format)
	}
}

// FormatForPath picks the image format from the file extension.
func FormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	default:
		return "", fmt.Errorf("snapshot: unsupported extension %q", filepath.Ext(path))
	}
}

// Save writes s to path, choosing the format by extension.
func Save(path string, s *core.Surface) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot %s: %w", path, err)
	}
	if err := Encode(f, s, format); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode snapshot %s: %w", path, err)
	}
	return f.Close()
}

// Name returns a timestamped file name like "bounce-20060102-150405.000.png".
func Name(prefix, format string, t time.Time) string {
	return fmt.Sprintf("%s-%s.%s", prefix, t.Format("20060102-150405.000"), format)
}

// Package window is the desktop collaborator built on ebiten. Ebiten owns
// the OS main thread, so Backend.Main runs the engine on its own goroutine
// and the two sides exchange frames through mutex-guarded front buffers and
// events through a bounded channel. All surfaces are tiled left to right
// inside the single ebiten window.
//
// The real implementation requires cgo; without it New reports an error.
package window

import "strings"

// Tiling places surfaces left to right, top-aligned.
type Tiling struct {
	Offsets []int // X offset of each surface
	Width   int
	Height  int
}

// Tile computes the layout of surfaces with the given sizes. An empty set
// yields a 1x1 layout so ebiten always has a valid screen.
func Tile(widths, heights []int) Tiling {
	t := Tiling{Offsets: make([]int, len(widths))}
	for i, w := range widths {
		t.Offsets[i] = t.Width
		t.Width += w
		if heights[i] > t.Height {
			t.Height = heights[i]
		}
	}
	if t.Width == 0 || t.Height == 0 {
		t.Width, t.Height = 1, 1
	}
	return t
}

// Hit returns the index of the surface containing layout column x and the
// column relative to it, or -1.
func (t Tiling) Hit(widths []int, x int) (int, int) {
	for i, off := range t.Offsets {
		if x >= off && x < off+widths[i] {
			return i, x - off
		}
	}
	return -1, 0
}

// JoinTitles builds the window title from the surface titles.
func JoinTitles(titles []string) string {
	parts := make([]string, 0, len(titles))
	for _, t := range titles {
		if t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " | ")
}

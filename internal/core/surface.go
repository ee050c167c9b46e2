package core

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Surface is a rectangular buffer of 32-bit ARGB pixels.
// It is either allocated by NewSurface or wraps a collaborator-owned buffer
// through NewSurfaceView. The pixel slice always holds exactly width*height entries.
type Surface struct {
	width  int
	height int
	pixels []uint32
}

// NewSurface allocates a zeroed surface with the given dimensions.
func NewSurface(width, height int) *Surface {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("core: invalid surface size %dx%d", width, height))
	}
	return &Surface{
		width:  width,
		height: height,
		pixels: make([]uint32, width*height),
	}
}

// NewSurfaceView wraps an existing pixel buffer without copying it.
// Panics if len(pixels) != width*height.
func NewSurfaceView(width, height int, pixels []uint32) *Surface {
	if width < 0 || height < 0 || len(pixels) != width*height {
		panic(fmt.Sprintf("core: pixel view of %d entries does not match %dx%d", len(pixels), width, height))
	}
	return &Surface{
		width:  width,
		height: height,
		pixels: pixels,
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Set writes c with a forced-opaque alpha at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (s *Surface) Set(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pixels[y*s.width+x] = uint32(c) | Opaque
}

// SetUnchecked writes c with a forced-opaque alpha at (x, y) without clipping.
//
// The caller guarantees 0 <= x < Width() and 0 <= y < Height(). Builds with the
// picofb_debug tag panic on violation; other builds only keep Go's slice bounds
// check, so an out-of-range x on a row inside the buffer lands on another row.
func (s *Surface) SetUnchecked(x, y int, c Color) {
	if debugBounds && (x < 0 || x >= s.width || y < 0 || y >= s.height) {
		panic(fmt.Sprintf("core: SetUnchecked(%d, %d) outside %dx%d surface", x, y, s.width, s.height))
	}
	s.pixels[y*s.width+x] = uint32(c) | Opaque
}

// Get returns the stored pixel at (x, y), or 0 for out-of-bounds coordinates.
func (s *Surface) Get(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return Color(s.pixels[y*s.width+x])
}

// Clear zeroes every pixel, alpha included.
func (s *Surface) Clear() {
	clear(s.pixels)
}

// Fill sets every pixel to c with a forced-opaque alpha.
func (s *Surface) Fill(c Color) {
	v := uint32(c) | Opaque
	for i := range s.pixels {
		s.pixels[i] = v
	}
}

// Pixels exposes the raw row-major pixel run. Writes through it bypass the
// opaque-alpha rule.
func (s *Surface) Pixels() []uint32 {
	return s.pixels
}

// FillRect fills r, clipped to the surface, with c.
func (s *Surface) FillRect(r Rect, c Color) {
	x0, y0 := Max(r.X, 0), Max(r.Y, 0)
	x1, y1 := Min(r.Right(), s.width), Min(r.Bottom(), s.height)
	v := uint32(c) | Opaque
	for y := y0; y < y1; y++ {
		row := s.pixels[y*s.width : (y+1)*s.width]
		for x := x0; x < x1; x++ {
			row[x] = v
		}
	}
}

// FillCircle fills the disc of radius r centered on (cx, cy) with c.
func (s *Surface) FillCircle(cx, cy, r int, c Color) {
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= rr {
				s.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

// Image copies the surface into an opaque RGBA image.
func (s *Surface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	CopyToRGBA(img.Pix, s.pixels)
	return img
}

// CopyToRGBA converts ARGB pixels into an RGBA byte buffer with opaque alpha.
// dst must hold at least 4*len(src) bytes.
func CopyToRGBA(dst []byte, src []uint32) {
	for i, p := range src {
		j := i * 4
		dst[j+0] = byte(p >> 16)
		dst[j+1] = byte(p >> 8)
		dst[j+2] = byte(p)
		dst[j+3] = 0xFF
	}
}

// Size implements the tinygo drivers.Displayer interface. Dimensions past
// math.MaxInt16 are reported as math.MaxInt16.
func (s *Surface) Size() (x, y int16) {
	return int16(Min(s.width, math.MaxInt16)), int16(Min(s.height, math.MaxInt16))
}

// SetPixel implements the tinygo drivers.Displayer interface so tinyfont
// fonts can draw into the surface.
func (s *Surface) SetPixel(x, y int16, c color.RGBA) {
	s.Set(int(x), int(y), RGB(c.R, c.G, c.B))
}

// Display implements the tinygo drivers.Displayer interface; presentation is
// owned by the engine, so it is a no-op.
func (s *Surface) Display() error {
	return nil
}

// Package font decodes PSF2 bitmap fonts and blits their 1-bit glyphs onto a
// pixel surface.
package font

import (
	"encoding/binary"
	"fmt"

	"github.com/vovakirdan/picofb/internal/core"
)

// PSF2 header constants.
const (
	Magic      uint32 = 0x864ab572
	Version    uint32 = 0
	HeaderSize uint32 = 32
)

// FormatError reports a malformed font container.
type FormatError struct {
	Field    string
	Got      uint32
	Expected uint32
	Reason   string
}

func (e *FormatError) Error() string {
	if e.Reason != "" {
		return "font: " + e.Reason
	}
	return fmt.Sprintf("font: unexpected %s %#x, expected %#x", e.Field, e.Got, e.Expected)
}

// Header is the fixed PSF2 header.
type Header struct {
	Magic         uint32
	Version       uint32
	HeaderSize    uint32
	Flags         uint32
	GlyphCount    uint32
	BytesPerGlyph uint32
	Height        uint32
	Width         uint32
}

// Face is an immutable decoded bitmap font.
type Face struct {
	header      Header
	bitmap      []byte
	bytesPerRow int
}

// Parse decodes a PSF2 container. The bitmap is referenced, not copied.
func Parse(data []byte) (*Face, error) {
	if len(data) < int(HeaderSize) {
		return nil, &FormatError{Reason: fmt.Sprintf("unexpected end of file: %d header bytes", len(data))}
	}

	var h Header
	fields := []*uint32{&h.Magic, &h.Version, &h.HeaderSize, &h.Flags,
		&h.GlyphCount, &h.BytesPerGlyph, &h.Height, &h.Width}
	for i, f := range fields {
		*f = binary.LittleEndian.Uint32(data[i*4:])
	}

	if h.Magic != Magic {
		return nil, &FormatError{Field: "magic", Got: h.Magic, Expected: Magic}
	}
	if h.Version != Version {
		return nil, &FormatError{Field: "version", Got: h.Version, Expected: Version}
	}
	if h.HeaderSize != HeaderSize {
		return nil, &FormatError{Field: "header size", Got: h.HeaderSize, Expected: HeaderSize}
	}
	if h.Width == 0 || h.Height == 0 {
		return nil, &FormatError{Reason: fmt.Sprintf("empty glyph size %dx%d", h.Width, h.Height)}
	}

	bytesPerRow := int(h.Width+7) / 8
	if uint64(h.BytesPerGlyph) < uint64(bytesPerRow)*uint64(h.Height) {
		return nil, &FormatError{Reason: fmt.Sprintf("%d bytes per glyph cannot hold %dx%d", h.BytesPerGlyph, h.Width, h.Height)}
	}
	need := uint64(h.GlyphCount) * uint64(h.BytesPerGlyph)
	bitmap := data[h.HeaderSize:]
	if uint64(len(bitmap)) < need {
		return nil, &FormatError{Reason: fmt.Sprintf("bitmap holds %d bytes, %d glyphs need %d", len(bitmap), h.GlyphCount, need)}
	}

	return &Face{
		header:      h,
		bitmap:      bitmap[:need],
		bytesPerRow: bytesPerRow,
	}, nil
}

// Header returns a copy of the decoded header.
func (f *Face) Header() Header {
	return f.header
}

// Width returns the glyph width, which is also the cursor advance.
func (f *Face) Width() int {
	return int(f.header.Width)
}

// Height returns the glyph height.
func (f *Face) Height() int {
	return int(f.header.Height)
}

// GlyphCount returns the number of glyphs in the font.
func (f *Face) GlyphCount() int {
	return int(f.header.GlyphCount)
}

// Glyph returns the raw bitmap of glyph code, or nil if the font has no such glyph.
func (f *Face) Glyph(code int) []byte {
	if code < 0 || code >= int(f.header.GlyphCount) {
		return nil
	}
	bpg := int(f.header.BytesPerGlyph)
	return f.bitmap[code*bpg : (code+1)*bpg]
}

// Measure returns the pixel width of text. Every character advances by
// exactly one glyph width.
func (f *Face) Measure(text string) int {
	n := 0
	for range text {
		n++
	}
	return n * f.Width()
}

// Render draws text left to right starting at (x, y). Non-ASCII characters
// are drawn as '?'. No clipping is done here; pixels falling outside dst
// are dropped by dst.Set.
func (f *Face) Render(dst *core.Surface, x, y int, c core.Color, text string) {
	for _, r := range text {
		f.DrawGlyph(dst, x, y, c, Substitute(r))
		x += f.Width()
	}
}

// DrawGlyph blits one glyph. Bits are read most-significant first, so bit b
// of byte k in a row lands on column k*8 + 7 - b.
func (f *Face) DrawGlyph(dst *core.Surface, x, y int, c core.Color, code byte) {
	g := f.Glyph(int(code))
	if g == nil {
		g = f.Glyph('?')
		if g == nil {
			return
		}
	}
	for row := 0; row < f.Height(); row++ {
		for k := 0; k < f.bytesPerRow; k++ {
			bits := g[row*f.bytesPerRow+k]
			if bits == 0 {
				continue
			}
			for b := 0; b < 8; b++ {
				if bits&(1<<b) != 0 {
					dst.Set(x+k*8+7-b, y+row, c)
				}
			}
		}
	}
}

// Substitute maps a rune to the glyph code used to draw it.
func Substitute(r rune) byte {
	if r < 0 || r > 0x7F {
		return '?'
	}
	return byte(r)
}

package core

// Color is a 32-bit ARGB pixel value (0xAARRGGBB).
type Color uint32

// Opaque is the alpha mask every explicit pixel write forces on.
const Opaque uint32 = 0xFF000000

// Common colors.
const (
	Black   Color = 0x000000
	White   Color = 0xFFFFFF
	Red     Color = 0xFF0000
	Green   Color = 0x00FF00
	Blue    Color = 0x0000FF
	Yellow  Color = 0xFFFF00
	Cyan    Color = 0x00FFFF
	Magenta Color = 0xFF00FF
	Gray    Color = 0x808080
)

// RGB builds an opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color(Opaque | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// Lerp blends c toward o by t in [0, 1], keeping c's alpha.
func (c Color) Lerp(o Color, t float64) Color {
	t = ClampF(t, 0, 1)
	mix := func(a, b uint8) uint32 {
		return uint32(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return Color(uint32(c.A())<<24 | mix(c.R(), o.R())<<16 | mix(c.G(), o.G())<<8 | mix(c.B(), o.B()))
}

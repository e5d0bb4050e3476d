package curl

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Predefined colors.
var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}

	// Default shadow colors: inner is drawn next to the surface where the
	// shadowed area starts, outer is the color the shadow fades out to.
	DefaultShadowInner = Color{0, 0, 0, 0.5}
	DefaultShadowOuter = Color{0, 0, 0, 0}
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// Unpack creates a color from a packed 0xRRGGBBAA value.
func Unpack(c uint32) Color {
	return RGBA(uint8(c>>24), uint8(c>>16), uint8(c>>8), uint8(c))
}

// Pack returns the color as a packed 0xRRGGBBAA value.
func (c Color) Pack() uint32 {
	return uint32(to8(c.R))<<24 | uint32(to8(c.G))<<16 | uint32(to8(c.B))<<8 | uint32(to8(c.A))
}

// Scale multiplies the RGB components by f, leaving alpha untouched.
func (c Color) Scale(f float32) Color {
	return Color{c.R * f, c.G * f, c.B * f, c.A}
}

// Lerp returns the linear interpolation from c to other at t.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

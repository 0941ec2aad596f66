package render

// Color is stored as ARGB (0xAARRGGBB) and satisfies image/color.Color.
type Color uint32

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return Color(0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// RGBA returns alpha-premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	a8 := uint32(c >> 24)
	premul := func(v uint32) uint32 { return (v & 0xFF) * a8 / 0xFF * 0x101 }
	return premul(uint32(c >> 16)), premul(uint32(c >> 8)), premul(uint32(c)), a8 * 0x101
}

// Diagram colors.
var (
	ColorCanvas  = RGB(0xFA, 0xFA, 0xFA)
	ColorAnchor  = RGB(0x25, 0x63, 0xEB)
	ColorPanel   = RGB(0xFF, 0xFF, 0xFF)
	ColorOutline = RGB(0x33, 0x41, 0x55)
	ColorInk     = RGB(0x0F, 0x17, 0x2A)
	ColorOnFill  = RGB(0xFF, 0xFF, 0xFF)
)

package render

// RGBA stores explicit 8-bit color channels plus alpha, decoupled from any
// terminal or display library. Equality is bitwise.
type RGBA struct {
	R, G, B, A uint8
}

// Predefined default colors
var (
	RGBABlack       = RGBA{0, 0, 0, 255}
	RGBAWhite       = RGBA{255, 255, 255, 255}
	RGBATransparent = RGBA{0, 0, 0, 0}
)

// NewRGB creates a fully opaque color.
func NewRGB(r, g, b uint8) RGBA {
	return RGBA{r, g, b, 255}
}

// ARGB packs the color into the 0xAARRGGBB pixel format written by the
// rasterizer.
func (c RGBA) ARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// FromARGB unpacks a 0xAARRGGBB pixel value.
func FromARGB(v uint32) RGBA {
	return RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: uint8(v >> 24),
	}
}

// Blend alpha-composites src over dst using src's alpha channel:
// result = src*α + dst*(1-α). The result keeps dst's alpha.
func (dst RGBA) Blend(src RGBA) RGBA {
	switch src.A {
	case 0:
		return dst
	case 255:
		return RGBA{src.R, src.G, src.B, dst.A}
	}
	a := uint32(src.A)
	inv := 255 - a
	return RGBA{
		R: uint8((uint32(src.R)*a + uint32(dst.R)*inv) / 255),
		G: uint8((uint32(src.G)*a + uint32(dst.G)*inv) / 255),
		B: uint8((uint32(src.B)*a + uint32(dst.B)*inv) / 255),
		A: dst.A,
	}
}

// Add performs additive blend with saturation (light accumulation).
// Channels clamp at 255, never wrap.
func (dst RGBA) Add(src RGBA) RGBA {
	return RGBA{
		R: satAdd(dst.R, src.R),
		G: satAdd(dst.G, src.G),
		B: satAdd(dst.B, src.B),
		A: satAdd(dst.A, src.A),
	}
}

// Max returns the per-channel maximum (non-destructive highlight).
func (dst RGBA) Max(src RGBA) RGBA {
	return RGBA{
		R: max(dst.R, src.R),
		G: max(dst.G, src.G),
		B: max(dst.B, src.B),
		A: max(dst.A, src.A),
	}
}

func satAdd(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// The classic 16-entry VGA text palette.
var (
	RGBABlue          = NewRGB(0, 0, 170)
	RGBAGreen         = NewRGB(0, 170, 0)
	RGBACyan          = NewRGB(0, 170, 170)
	RGBARed           = NewRGB(170, 0, 0)
	RGBAMagenta       = NewRGB(170, 0, 170)
	RGBABrown         = NewRGB(170, 85, 0)
	RGBALightGray     = NewRGB(170, 170, 170)
	RGBADarkGray      = NewRGB(85, 85, 85)
	RGBABrightBlue    = NewRGB(85, 85, 255)
	RGBABrightGreen   = NewRGB(85, 255, 85)
	RGBABrightCyan    = NewRGB(85, 255, 255)
	RGBABrightRed     = NewRGB(255, 85, 85)
	RGBABrightMagenta = NewRGB(255, 85, 255)
	RGBAYellow        = NewRGB(255, 255, 85)
)

// Palette is the VGA text palette in attribute order.
var Palette = [16]RGBA{
	RGBABlack, RGBABlue, RGBAGreen, RGBACyan,
	RGBARed, RGBAMagenta, RGBABrown, RGBALightGray,
	RGBADarkGray, RGBABrightBlue, RGBABrightGreen, RGBABrightCyan,
	RGBABrightRed, RGBABrightMagenta, RGBAYellow, RGBAWhite,
}

// FromHSV creates an opaque color from hue (degrees), saturation, and
// value in [0, 1].
func FromHSV(h, s, v float64) RGBA {
	r, g, b := colorful.Hsv(h, s, v).RGB255()
	return RGBA{r, g, b, 255}
}

// Ramp returns n colors interpolated between a and b in HCL space, which
// keeps perceived brightness even across the ramp. Used for gradient
// fills and demo effects.
func Ramp(a, b RGBA, n int) []RGBA {
	if n <= 0 {
		return nil
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	out := make([]RGBA, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r, g, bl := ca.BlendHcl(cb, t).Clamped().RGB255()
		out[i] = RGBA{r, g, bl, 255}
	}
	return out
}

// WithAlpha returns the color with its alpha channel replaced.
func (c RGBA) WithAlpha(a uint8) RGBA {
	c.A = a
	return c
}

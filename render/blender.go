package render

// BlendMode selects the compositing operation used when a layer's cell is
// merged into the flattened grid. The mode set is closed and dispatched by
// a fixed switch in the flatten loop, no interface indirection in the hot
// path.
type BlendMode uint8

const (
	// BlendReplace overwrites the accumulator with the layer cell.
	// Cells whose glyph is the transparent sentinel are skipped.
	BlendReplace BlendMode = iota

	// BlendAlpha composites fg/bg channel-wise using the layer cell's
	// alpha. The glyph replaces the accumulator's glyph only when the
	// foreground alpha is non-zero.
	BlendAlpha

	// BlendAdd adds colors with saturation; glyph rule as BlendReplace.
	BlendAdd

	// BlendMax keeps the per-channel maximum; glyph rule as BlendReplace.
	BlendMax
)

// TransparentGlyph is the sentinel glyph index that makes a cell invisible
// to BlendReplace/BlendAdd/BlendMax composition. It doubles as the zero
// value of Cell, so an untouched cell never obscures layers beneath it.
const TransparentGlyph byte = 0

// blend merges src into dst according to mode. dst is the accumulator of
// the bottom-to-top flatten walk.
func blend(dst, src Cell, mode BlendMode) Cell {
	switch mode {
	case BlendAlpha:
		dst.Fg = dst.Fg.Blend(src.Fg)
		dst.Bg = dst.Bg.Blend(src.Bg)
		if src.Fg.A > 0 {
			dst.Glyph = src.Glyph
		}
		return dst
	case BlendAdd:
		if src.Glyph == TransparentGlyph {
			return dst
		}
		dst.Fg = dst.Fg.Add(src.Fg)
		dst.Bg = dst.Bg.Add(src.Bg)
		dst.Glyph = src.Glyph
		return dst
	case BlendMax:
		if src.Glyph == TransparentGlyph {
			return dst
		}
		dst.Fg = dst.Fg.Max(src.Fg)
		dst.Bg = dst.Bg.Max(src.Bg)
		dst.Glyph = src.Glyph
		return dst
	default: // BlendReplace
		if src.Glyph == TransparentGlyph {
			return dst
		}
		return src
	}
}

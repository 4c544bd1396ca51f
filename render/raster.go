package render

import (
	"fmt"

	"github.com/lixenwraith/pixelterm/font"
)

// PixelBuffer borrows a caller-owned linear buffer of packed 0xAARRGGBB
// pixels for the duration of a render call. The core only writes it. The
// stride is in pixels and may exceed the terminal's pixel width when
// drawing into a larger host surface.
type PixelBuffer struct {
	pixels []uint32
	stride int
}

// NewPixelBuffer wraps pixels with the given row stride.
func NewPixelBuffer(pixels []uint32, stride int) *PixelBuffer {
	return &PixelBuffer{pixels: pixels, stride: stride}
}

// Stride returns the row stride in pixels.
func (p *PixelBuffer) Stride() int { return p.stride }

// At returns the pixel at (x, y). Intended for tests and picking debug.
func (p *PixelBuffer) At(x, y int) uint32 {
	return p.pixels[y*p.stride+x]
}

// PixelExtent returns the terminal's full footprint in pixels: cell
// dimensions times glyph dimensions times scale.
func (g *Grid) PixelExtent() (width, height int) {
	gw, gh := g.glyphSize()
	return g.cfg.Width * gw, g.cfg.Height * gh
}

func (g *Grid) glyphSize() (w, h int) {
	return font.GlyphWidth * g.cfg.Scale, font.GlyphHeight * g.cfg.Scale
}

// Render flattens pending changes and rasterizes every dirty cell into the
// pixel buffer: for each pixel of the cell's glyph footprint, fg where the
// mask bit is set, bg otherwise. On success the dirty bitmap is cleared
// for all rasterized cells, so re-rendering an unchanged grid touches
// nothing and leaves the buffer byte-identical.
func (g *Grid) Render(pb *PixelBuffer) error {
	pw, ph := g.PixelExtent()
	if pb.stride < pw {
		return fmt.Errorf("%w: stride %d < %d", ErrBufferTooSmall, pb.stride, pw)
	}
	if need := (ph-1)*pb.stride + pw; len(pb.pixels) < need {
		return fmt.Errorf("%w: %d pixels < %d", ErrBufferTooSmall, len(pb.pixels), need)
	}

	g.Flatten()

	gw, gh := g.glyphSize()
	scale := g.cfg.Scale
	w := g.cfg.Width
	for idx, d := range g.dirty {
		if !d {
			continue
		}
		cell := g.flattened[idx]
		glyph := g.cfg.Font.Glyph(cell.Glyph)
		fg := cell.Fg.ARGB()
		bg := cell.Bg.ARGB()
		px := (idx % w) * gw
		py := (idx / w) * gh

		for gy := 0; gy < font.GlyphHeight; gy++ {
			mask := glyph[gy]
			rowBase := (py + gy*scale) * pb.stride
			for gx := 0; gx < font.GlyphWidth; gx++ {
				v := bg
				if mask&(0x80>>uint(gx)) != 0 {
					v = fg
				}
				at := rowBase + px + gx*scale
				for sy := 0; sy < scale; sy++ {
					row := pb.pixels[at+sy*pb.stride:]
					for sx := 0; sx < scale; sx++ {
						row[sx] = v
					}
				}
			}
		}
		g.dirty[idx] = false
	}
	return nil
}

package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/pixelterm/font"
)

// smallFont builds an atlas of n empty glyphs for validation tests.
func smallFont(n int) *font.Font {
	return font.New(make([]font.Glyph, n))
}

// crossFont builds a 2-glyph atlas where glyph 1 is an X across the top
// 8 rows. Glyph 0 stays empty (it is the transparent sentinel).
func crossFont() *font.Font {
	var x font.Glyph
	copy(x[:], []byte{
		0b1000_0001,
		0b0100_0010,
		0b0010_0100,
		0b0001_1000,
		0b0001_1000,
		0b0010_0100,
		0b0100_0010,
		0b1000_0001,
	})
	return font.New([]font.Glyph{{}, x})
}

// bufferString visualizes a pixel region the way the glyph viewer does:
// one character per pixel, '#' for fg, '.' for anything else.
func bufferString(pb *PixelBuffer, w, h int, fg uint32) string {
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if pb.At(x, y) == fg {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func renderTarget(g *Grid) (*PixelBuffer, []uint32) {
	w, h := g.PixelExtent()
	pixels := make([]uint32, w*h)
	return NewPixelBuffer(pixels, w), pixels
}

func TestRenderSingleGlyph(t *testing.T) {
	g := mustGrid(t, Config{Width: 1, Height: 1, Font: crossFont()})
	h := mustLayer(t, g, 0, BlendReplace)
	if err := g.Put(h, 0, 0, NewCell(1, RGBAWhite, RGBABlack)); err != nil {
		t.Fatal(err)
	}

	pb, _ := renderTarget(g)
	if err := g.Render(pb); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := strings.Join([]string{
		"#......#",
		".#....#.",
		"..#..#..",
		"...##...",
		"...##...",
		"..#..#..",
		".#....#.",
		"#......#",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	}, "\n") + "\n"
	got := bufferString(pb, font.GlyphWidth, font.GlyphHeight, RGBAWhite.ARGB())
	if got != want {
		t.Errorf("Rendered glyph mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderPickAgreement(t *testing.T) {
	// The rasterizer and the compositor must never disagree: the pixels
	// in a cell's footprint derive exactly from the picked cell
	g := mustGrid(t, Config{Width: 4, Height: 3, MaxLayers: 2})
	base := mustLayer(t, g, 0, BlendReplace)
	top := mustLayer(t, g, 1, BlendAlpha)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			g.Put(base, x, y, NewCell('A', RGBAWhite, NewRGB(10, 20, 30)))
		}
	}
	g.Put(top, 2, 1, Cell{Glyph: 'B', Fg: RGBA{255, 0, 0, 255}, Bg: RGBA{0, 0, 255, 128}})

	pb, _ := renderTarget(g)
	if err := g.Render(pb); err != nil {
		t.Fatal(err)
	}

	f := g.Font()
	for cy := 0; cy < 3; cy++ {
		for cx := 0; cx < 4; cx++ {
			cell, ok := g.Pick(cx, cy)
			if !ok {
				t.Fatalf("Pick(%d, %d) out of bounds", cx, cy)
			}
			glyph := f.Glyph(cell.Glyph)
			for gy := 0; gy < font.GlyphHeight; gy++ {
				for gx := 0; gx < font.GlyphWidth; gx++ {
					want := cell.Bg.ARGB()
					if glyph.Set(gx, gy) {
						want = cell.Fg.ARGB()
					}
					got := pb.At(cx*font.GlyphWidth+gx, cy*font.GlyphHeight+gy)
					if got != want {
						t.Fatalf("Pixel (%d, %d) of cell (%d, %d) = %#08x, want %#08x",
							gx, gy, cx, cy, got, want)
					}
				}
			}
		}
	}
}

func TestRenderIdempotent(t *testing.T) {
	g := mustGrid(t, Config{Width: 3, Height: 2})
	h := mustLayer(t, g, 0, BlendReplace)
	g.Put(h, 1, 1, NewCell('Z', RGBAYellow, RGBABlack))

	pb, pixels := renderTarget(g)
	if err := g.Render(pb); err != nil {
		t.Fatal(err)
	}
	if g.dirtyCount() != 0 {
		t.Errorf("Expected no dirty cells after full render, got %d", g.dirtyCount())
	}

	first := make([]uint32, len(pixels))
	copy(first, pixels)

	// Second render with no mutation must touch nothing and leave the
	// buffer byte-identical
	if err := g.Render(pb); err != nil {
		t.Fatal(err)
	}
	for i := range pixels {
		if pixels[i] != first[i] {
			t.Fatalf("Pixel %d changed on idempotent re-render", i)
		}
	}
}

func TestRenderPartialRedraw(t *testing.T) {
	g := mustGrid(t, Config{Width: 3, Height: 1})
	h := mustLayer(t, g, 0, BlendReplace)
	for x := 0; x < 3; x++ {
		g.Put(h, x, 0, NewCell('A', RGBAWhite, RGBABlack))
	}
	pb, pixels := renderTarget(g)
	if err := g.Render(pb); err != nil {
		t.Fatal(err)
	}

	// Poison the buffer outside cell 1, then mutate only cell 1: a
	// dirty-only render must leave the poison untouched
	poison := uint32(0xDEADBEEF)
	for i := range pixels {
		pixels[i] = poison
	}
	g.Put(h, 1, 0, NewCell('B', RGBAWhite, RGBABlack))
	if err := g.Render(pb); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < font.GlyphHeight; y++ {
		for x := 0; x < 3*font.GlyphWidth; x++ {
			inCell1 := x >= font.GlyphWidth && x < 2*font.GlyphWidth
			got := pb.At(x, y)
			if inCell1 && got == poison {
				t.Fatalf("Expected cell 1 pixel (%d, %d) redrawn", x, y)
			}
			if !inCell1 && got != poison {
				t.Fatalf("Expected pixel (%d, %d) outside dirty cell untouched", x, y)
			}
		}
	}
}

func TestRenderBufferTooSmall(t *testing.T) {
	g := mustGrid(t, Config{Width: 2, Height: 2})
	pw, ph := g.PixelExtent()

	short := NewPixelBuffer(make([]uint32, pw*ph-1), pw)
	if err := g.Render(short); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("Expected ErrBufferTooSmall for short buffer, got %v", err)
	}

	narrow := NewPixelBuffer(make([]uint32, pw*ph), pw-1)
	if err := g.Render(narrow); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("Expected ErrBufferTooSmall for narrow stride, got %v", err)
	}
}

func TestRenderWiderStride(t *testing.T) {
	// Partial redraw into a larger host surface: stride wider than the
	// terminal's pixel extent
	g := mustGrid(t, Config{Width: 1, Height: 1, Font: crossFont()})
	h := mustLayer(t, g, 0, BlendReplace)
	g.Put(h, 0, 0, NewCell(1, RGBAWhite, RGBABlack))

	stride := font.GlyphWidth + 5
	pixels := make([]uint32, stride*font.GlyphHeight)
	pb := NewPixelBuffer(pixels, stride)
	if err := g.Render(pb); err != nil {
		t.Fatal(err)
	}
	if pb.At(0, 0) != RGBAWhite.ARGB() {
		t.Error("Expected fg pixel at (0, 0)")
	}
	// Columns beyond the glyph stay untouched
	for y := 0; y < font.GlyphHeight; y++ {
		for x := font.GlyphWidth; x < stride; x++ {
			if pb.At(x, y) != 0 {
				t.Fatalf("Expected pixel (%d, %d) beyond extent untouched", x, y)
			}
		}
	}
}

func TestRenderScale(t *testing.T) {
	g := mustGrid(t, Config{Width: 1, Height: 1, Font: crossFont(), Scale: 2})
	h := mustLayer(t, g, 0, BlendReplace)
	g.Put(h, 0, 0, NewCell(1, RGBAWhite, RGBABlack))

	pw, ph := g.PixelExtent()
	if pw != 2*font.GlyphWidth || ph != 2*font.GlyphHeight {
		t.Fatalf("PixelExtent = (%d, %d), want (%d, %d)", pw, ph, 2*font.GlyphWidth, 2*font.GlyphHeight)
	}
	pb, _ := renderTarget(g)
	if err := g.Render(pb); err != nil {
		t.Fatal(err)
	}
	// Each glyph pixel becomes a 2x2 block
	fg := RGBAWhite.ARGB()
	glyph := g.Font().Glyph(1)
	for gy := 0; gy < font.GlyphHeight; gy++ {
		for gx := 0; gx < font.GlyphWidth; gx++ {
			want := RGBABlack.ARGB()
			if glyph.Set(gx, gy) {
				want = fg
			}
			for sy := 0; sy < 2; sy++ {
				for sx := 0; sx < 2; sx++ {
					if got := pb.At(gx*2+sx, gy*2+sy); got != want {
						t.Fatalf("Scaled pixel (%d, %d) = %#08x, want %#08x", gx*2+sx, gy*2+sy, got, want)
					}
				}
			}
		}
	}
}

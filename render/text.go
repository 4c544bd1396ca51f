package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/pixelterm/font"
)

// substituteGlyph stands in for runes with no CP437 mapping.
const substituteGlyph byte = '?'

// advance returns how many cells a rune occupies in this renderer: zero
// for zero-width runes (combining marks, ZWJ), otherwise one. Wide runes
// cannot be drawn on a 256-glyph code page and collapse to a single
// substituted cell.
func advance(r rune) int {
	if runewidth.RuneWidth(r) == 0 {
		return 0
	}
	return 1
}

// layout walks text with wrapping and calls visit for every placed rune.
// maxWidth <= 0 means unconstrained. Shared by Measure and Print so the
// two can never disagree on where a glyph lands.
func layout(text string, maxWidth int, visit func(col, line int, r rune)) (width, height int) {
	col, line := 0, 0
	for _, r := range text {
		if r == '\n' {
			col = 0
			line++
			continue
		}
		if advance(r) == 0 {
			continue
		}
		if maxWidth > 0 && col >= maxWidth {
			col = 0
			line++
		}
		if visit != nil {
			visit(col, line, r)
		}
		col++
		if col > width {
			width = col
		}
	}
	if width > 0 || line > 0 {
		height = line + 1
	}
	return width, height
}

// Measure returns the bounding box in cells a Print of text would occupy,
// wrapping at maxWidth columns (0 for unconstrained). Pure and
// side-effect-free so callers can pre-size layout before writing.
func (g *Grid) Measure(text string, maxWidth int) (width, height int) {
	return layout(text, maxWidth, nil)
}

// Print writes text to a layer starting at (x, y), wrapping at maxWidth
// columns exactly as Measure predicts. Runes map to CP437 through the
// atlas table; unmappable runes become '?'. Cells falling out of bounds
// or outside the layer's crop are silently clipped.
func (g *Grid) Print(h LayerHandle, x, y int, text string, fg, bg RGBA, maxWidth int) error {
	if _, err := g.layer(h); err != nil {
		return err
	}
	var putErr error
	layout(text, maxWidth, func(col, line int, r rune) {
		glyph, ok := font.IndexOf(r)
		if !ok {
			glyph = substituteGlyph
		}
		if err := g.Put(h, x+col, y+line, Cell{Glyph: glyph, Fg: fg, Bg: bg}); err != nil && putErr == nil {
			putErr = err
		}
	})
	return putErr
}

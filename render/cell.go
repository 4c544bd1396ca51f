package render

// Cell is a single grid position: CP437 glyph index plus foreground and
// background colors. Cells are value types, copied, never shared.
//
// The zero value is the blank cell: transparent glyph, transparent
// colors. It composites as invisible under every blend mode.
type Cell struct {
	Glyph byte
	Fg    RGBA
	Bg    RGBA
}

// Blank is the default empty cell.
var Blank Cell

// NewCell creates an opaque cell with the given glyph and colors.
func NewCell(glyph byte, fg, bg RGBA) Cell {
	return Cell{Glyph: glyph, Fg: fg, Bg: bg}
}

// Package font provides the fixed-size bitmap glyph atlas used by the
// rasterizer, including the built-in CP437 8x16 set.
package font

const (
	glyphWidth  = 8
	glyphHeight = 16
)

// GlyphWidth is the pixel width of every glyph in an atlas.
const GlyphWidth = glyphWidth

// GlyphHeight is the pixel height of every glyph in an atlas.
const GlyphHeight = glyphHeight

// Glyph is a fixed 8x16 bitmap mask, one byte per row, MSB = leftmost pixel.
type Glyph [glyphHeight]byte

// Empty is the all-clear glyph.
var Empty Glyph

// Set reports whether the pixel at (x, y) is on.
// Coordinates outside the glyph footprint are off.
func (g Glyph) Set(x, y int) bool {
	if x < 0 || x >= glyphWidth || y < 0 || y >= glyphHeight {
		return false
	}
	return g[y]&(0x80>>uint(x)) != 0
}

// Font is an immutable glyph atlas. Lookup is array indexing; a Font is
// loaded once and read-only thereafter, safe for concurrent readers.
type Font struct {
	glyphs []Glyph
}

// New creates a Font from the given glyph table. The table is copied so
// the atlas cannot be mutated through the caller's slice.
func New(glyphs []Glyph) *Font {
	own := make([]Glyph, len(glyphs))
	copy(own, glyphs)
	return &Font{glyphs: own}
}

// Count returns the number of glyphs in the atlas.
func (f *Font) Count() int {
	return len(f.glyphs)
}

// Glyph returns the bitmap for the given index, or the empty glyph if the
// index is outside the atlas.
func (f *Font) Glyph(index byte) Glyph {
	if int(index) >= len(f.glyphs) {
		return Empty
	}
	return f.glyphs[index]
}

var cp437 = loadCP437()

func loadCP437() *Font {
	glyphs := make([]Glyph, 256)
	for i := range glyphs {
		copy(glyphs[i][:], rom[i*glyphHeight:(i+1)*glyphHeight])
	}
	return &Font{glyphs: glyphs}
}

// CP437 returns the built-in IBM VGA code page 437 atlas. All 256 byte
// values are valid indices into it.
func CP437() *Font {
	return cp437
}

// RuneFor returns the Unicode rune displayed for a CP437 glyph index.
func RuneFor(index byte) rune {
	return runes[index]
}

var runeIndex = buildRuneIndex()

func buildRuneIndex() map[rune]byte {
	m := make(map[rune]byte, 256)
	// Reverse iteration so the lower (canonical ASCII) index wins on
	// duplicate runes.
	for i := 255; i >= 0; i-- {
		m[runes[i]] = byte(i)
	}
	return m
}

// IndexOf returns the CP437 glyph index for a rune, if one exists.
func IndexOf(r rune) (byte, bool) {
	i, ok := runeIndex[r]
	return i, ok
}

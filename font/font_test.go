package font

import "testing"

func TestCP437Count(t *testing.T) {
	f := CP437()
	if f.Count() != 256 {
		t.Errorf("Expected 256 glyphs, got %d", f.Count())
	}
}

func TestGlyphBitAccess(t *testing.T) {
	f := CP437()
	// 'A' must have some pixels on, index 0 none
	a := f.Glyph('A')
	if a == Empty {
		t.Error("Expected glyph 'A' to be non-empty")
	}
	if f.Glyph(0) != Empty {
		t.Error("Expected glyph 0 to be empty")
	}

	// Set must agree with the raw row bytes
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			want := a[y]&(0x80>>uint(x)) != 0
			if a.Set(x, y) != want {
				t.Errorf("Set(%d, %d) = %v, want %v", x, y, a.Set(x, y), want)
			}
		}
	}
	if a.Set(-1, 0) || a.Set(0, GlyphHeight) {
		t.Error("Expected out-of-footprint pixels to be off")
	}
}

func TestGlyphOutOfAtlas(t *testing.T) {
	f := New([]Glyph{{0xFF}})
	if f.Count() != 1 {
		t.Errorf("Expected count 1, got %d", f.Count())
	}
	if f.Glyph(1) != Empty {
		t.Error("Expected out-of-atlas lookup to return the empty glyph")
	}
}

func TestNewCopiesTable(t *testing.T) {
	table := []Glyph{{0x01}}
	f := New(table)
	table[0][0] = 0xFF
	if f.Glyph(0)[0] != 0x01 {
		t.Error("Expected atlas to be immune to caller mutation")
	}
}

func TestRuneMapping(t *testing.T) {
	tests := []struct {
		index byte
		r     rune
	}{
		{'A', 'A'},
		{0x20, ' '},
		{0x01, '☺'},
		{0xB0, '░'},
		{0xCD, '═'},
		{0xDB, '█'},
		{0xE0, 'α'},
		{0xF8, '°'},
	}
	for _, tt := range tests {
		if got := RuneFor(tt.index); got != tt.r {
			t.Errorf("RuneFor(%#02x) = %q, want %q", tt.index, got, tt.r)
		}
		idx, ok := IndexOf(tt.r)
		if !ok || idx != tt.index {
			t.Errorf("IndexOf(%q) = %#02x, %v, want %#02x", tt.r, idx, ok, tt.index)
		}
	}
}

func TestIndexOfUnmapped(t *testing.T) {
	if _, ok := IndexOf('中'); ok {
		t.Error("Expected no CP437 index for a CJK rune")
	}
}

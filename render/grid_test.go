package render

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, cfg Config) *Grid {
	t.Helper()
	g, err := NewGrid(cfg)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func mustLayer(t *testing.T, g *Grid, z int, mode BlendMode) LayerHandle {
	t.Helper()
	h, err := g.CreateLayer(z, mode)
	if err != nil {
		t.Fatalf("CreateLayer(z=%d): %v", z, err)
	}
	return h
}

func (g *Grid) dirtyCount() int {
	n := 0
	for _, d := range g.dirty {
		if d {
			n++
		}
	}
	return n
}

func (g *Grid) clearDirtyForTest() {
	for i := range g.dirty {
		g.dirty[i] = false
	}
}

func TestCreateLayerErrors(t *testing.T) {
	g := mustGrid(t, Config{Width: 4, Height: 4, MaxLayers: 2})

	mustLayer(t, g, 0, BlendReplace)
	if _, err := g.CreateLayer(0, BlendReplace); !errors.Is(err, ErrDuplicateZOrder) {
		t.Errorf("Expected ErrDuplicateZOrder, got %v", err)
	}
	mustLayer(t, g, 5, BlendReplace)
	if _, err := g.CreateLayer(9, BlendReplace); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("Expected ErrCapacityExceeded, got %v", err)
	}
}

func TestCreateLayerTopStacksUpward(t *testing.T) {
	g := mustGrid(t, Config{Width: 2, Height: 2, MaxLayers: 4})
	a, _ := g.CreateLayerTop(BlendReplace)
	b, _ := g.CreateLayerTop(BlendReplace)
	la, _ := g.layer(a)
	lb, _ := g.layer(b)
	if lb.Z() <= la.Z() {
		t.Errorf("Expected second layer above first, got z %d <= %d", lb.Z(), la.Z())
	}
}

func TestPutMarksDirtyAndStores(t *testing.T) {
	g := mustGrid(t, Config{Width: 8, Height: 4})
	h := mustLayer(t, g, 0, BlendReplace)
	g.clearDirtyForTest()

	c := NewCell('A', RGBAWhite, RGBABlack)
	if err := g.Put(h, 3, 2, c); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !g.dirty[2*8+3] {
		t.Error("Expected put cell to be marked dirty")
	}
	if g.dirtyCount() != 1 {
		t.Errorf("Expected exactly one dirty cell, got %d", g.dirtyCount())
	}
	l, _ := g.layer(h)
	if l.cell(3, 2) != c {
		t.Errorf("Expected stored cell %v, got %v", c, l.cell(3, 2))
	}
}

func TestPutOutOfBoundsIsNoOp(t *testing.T) {
	g := mustGrid(t, Config{Width: 4, Height: 4})
	h := mustLayer(t, g, 0, BlendReplace)
	g.clearDirtyForTest()

	coords := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}}
	for _, xy := range coords {
		if err := g.Put(h, xy[0], xy[1], NewCell('X', RGBAWhite, RGBABlack)); err != nil {
			t.Errorf("Put(%d, %d) returned error: %v", xy[0], xy[1], err)
		}
	}
	if g.dirtyCount() != 0 {
		t.Errorf("Expected no dirty cells after out-of-bounds puts, got %d", g.dirtyCount())
	}
}

func TestPutInvalidGlyph(t *testing.T) {
	// A two-glyph atlas makes every index >= 2 invalid
	small := smallFont(2)
	g := mustGrid(t, Config{Width: 4, Height: 4, Font: small})
	h := mustLayer(t, g, 0, BlendReplace)

	if err := g.Put(h, 0, 0, Cell{Glyph: 1}); err != nil {
		t.Errorf("Expected glyph 1 to be accepted, got %v", err)
	}
	if err := g.Put(h, 0, 0, Cell{Glyph: 2}); !errors.Is(err, ErrInvalidGlyph) {
		t.Errorf("Expected ErrInvalidGlyph, got %v", err)
	}
}

func TestPutInvalidLayer(t *testing.T) {
	g := mustGrid(t, Config{Width: 4, Height: 4})
	if err := g.Put(LayerHandle(3), 0, 0, Blank); !errors.Is(err, ErrInvalidLayer) {
		t.Errorf("Expected ErrInvalidLayer, got %v", err)
	}
}

func TestCropContainment(t *testing.T) {
	g := mustGrid(t, Config{Width: 8, Height: 8})
	h := mustLayer(t, g, 0, BlendReplace)

	inside := NewCell('I', RGBAWhite, RGBABlack)
	outside := NewCell('O', RGBAWhite, RGBABlack)

	if err := g.Put(h, 6, 6, inside); err != nil {
		t.Fatal(err)
	}
	if err := g.Crop(h, Area{X: 0, Y: 0, Width: 4, Height: 4}); err != nil {
		t.Fatal(err)
	}

	// Writes outside the crop never change the stored value
	if err := g.Put(h, 6, 6, outside); err != nil {
		t.Fatal(err)
	}
	l, _ := g.layer(h)
	if l.cell(6, 6) != inside {
		t.Error("Expected cropped-out put to leave the stored cell unchanged")
	}

	// Crop does not retroactively blank memory, but composition stops
	// reading outside it
	g.Flatten()
	if c, _ := g.Pick(6, 6); c != Blank {
		t.Errorf("Expected cropped cell to composite as blank, got %v", c)
	}

	// Restoring the crop brings the stored value back into view
	if err := g.Crop(h, Area{X: 0, Y: 0, Width: 8, Height: 8}); err != nil {
		t.Fatal(err)
	}
	g.Flatten()
	if c, _ := g.Pick(6, 6); c != inside {
		t.Errorf("Expected stored cell back after crop restore, got %v", c)
	}
}

func TestClearArea(t *testing.T) {
	g := mustGrid(t, Config{Width: 4, Height: 4})
	h := mustLayer(t, g, 0, BlendReplace)
	c := NewCell('X', RGBAWhite, RGBABlack)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			g.Put(h, x, y, c)
		}
	}
	g.clearDirtyForTest()

	if err := g.ClearArea(h, Area{X: 1, Y: 1, Width: 2, Height: 2}); err != nil {
		t.Fatal(err)
	}
	l, _ := g.layer(h)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			inCleared := x >= 1 && x < 3 && y >= 1 && y < 3
			got := l.cell(x, y)
			if inCleared && got != Blank {
				t.Errorf("Expected (%d, %d) cleared, got %v", x, y, got)
			}
			if !inCleared && got != c {
				t.Errorf("Expected (%d, %d) untouched, got %v", x, y, got)
			}
			if g.dirty[y*4+x] != inCleared {
				t.Errorf("Expected dirty=%v at (%d, %d)", inCleared, x, y)
			}
		}
	}
}

func TestZOrderDeterminism(t *testing.T) {
	// Opaque fully covering writes: the flattened result must equal the
	// topmost layer everywhere, regardless of write order in time
	g := mustGrid(t, Config{Width: 3, Height: 3, MaxLayers: 3})
	top := mustLayer(t, g, 2, BlendReplace)
	bottom := mustLayer(t, g, 0, BlendReplace)
	middle := mustLayer(t, g, 1, BlendReplace)

	fill := func(h LayerHandle, glyph byte) {
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				if err := g.Put(h, x, y, NewCell(glyph, RGBAWhite, RGBABlack)); err != nil {
					t.Fatal(err)
				}
			}
		}
	}
	// Write top first to prove time order does not matter
	fill(top, 'T')
	fill(bottom, 'B')
	fill(middle, 'M')

	g.Flatten()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			c, ok := g.Pick(x, y)
			if !ok || c.Glyph != 'T' {
				t.Errorf("Expected topmost glyph at (%d, %d), got %v", x, y, c)
			}
		}
	}
}

func TestAlphaBlendScenario(t *testing.T) {
	// 10x5 terminal: base layer glyph=1 white on black, AlphaBlend layer
	// writes glyph=2 red alpha=255 at (3,2)
	g := mustGrid(t, Config{Width: 10, Height: 5, MaxLayers: 2})
	base := mustLayer(t, g, 0, BlendReplace)
	overlay := mustLayer(t, g, 1, BlendAlpha)

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			g.Put(base, x, y, NewCell(1, RGBAWhite, RGBABlack))
		}
	}
	red := RGBA{255, 0, 0, 255}
	g.Put(overlay, 3, 2, Cell{Glyph: 2, Fg: red})

	g.Flatten()
	c, ok := g.Pick(3, 2)
	if !ok {
		t.Fatal("Expected pick inside bounds")
	}
	if c.Glyph != 2 {
		t.Errorf("Expected glyph 2, got %d", c.Glyph)
	}
	if c.Fg.R != 255 || c.Fg.G != 0 || c.Fg.B != 0 {
		t.Errorf("Expected red foreground, got %v", c.Fg)
	}
	c, _ = g.Pick(0, 0)
	if c.Glyph != 1 || c.Fg != RGBAWhite || c.Bg != RGBABlack {
		t.Errorf("Expected base cell unchanged at (0, 0), got %v", c)
	}
}

func TestPickOutOfBounds(t *testing.T) {
	g := mustGrid(t, Config{Width: 2, Height: 2})
	if _, ok := g.Pick(2, 0); ok {
		t.Error("Expected out-of-bounds pick to report false")
	}
	if _, ok := g.Pick(-1, -1); ok {
		t.Error("Expected negative pick to report false")
	}
}

func TestVisibilityToggle(t *testing.T) {
	g := mustGrid(t, Config{Width: 2, Height: 1, MaxLayers: 2})
	h := mustLayer(t, g, 0, BlendReplace)
	c := NewCell('V', RGBAWhite, RGBABlack)
	g.Put(h, 0, 0, c)

	g.Flatten()
	if got, _ := g.Pick(0, 0); got != c {
		t.Fatalf("Expected visible cell, got %v", got)
	}

	if err := g.SetVisible(h, false); err != nil {
		t.Fatal(err)
	}
	g.Flatten()
	if got, _ := g.Pick(0, 0); got != Blank {
		t.Errorf("Expected blank after hiding layer, got %v", got)
	}

	g.SetVisible(h, true)
	g.Flatten()
	if got, _ := g.Pick(0, 0); got != c {
		t.Errorf("Expected cell back after showing layer, got %v", got)
	}
}

func TestRemoveLayer(t *testing.T) {
	g := mustGrid(t, Config{Width: 2, Height: 1, MaxLayers: 2})
	h := mustLayer(t, g, 0, BlendReplace)
	g.Put(h, 0, 0, NewCell('R', RGBAWhite, RGBABlack))

	if err := g.RemoveLayer(h); err != nil {
		t.Fatal(err)
	}
	g.Flatten()
	if got, _ := g.Pick(0, 0); got != Blank {
		t.Errorf("Expected blank after layer removal, got %v", got)
	}
	if err := g.RemoveLayer(h); !errors.Is(err, ErrInvalidLayer) {
		t.Errorf("Expected ErrInvalidLayer on double remove, got %v", err)
	}

	// The slot and its z are reusable afterward
	if _, err := g.CreateLayer(0, BlendReplace); err != nil {
		t.Errorf("Expected slot reuse after removal, got %v", err)
	}
}

func TestAddBlend(t *testing.T) {
	g := mustGrid(t, Config{Width: 1, Height: 1, MaxLayers: 2})
	base := mustLayer(t, g, 0, BlendReplace)
	add := mustLayer(t, g, 1, BlendAdd)

	g.Put(base, 0, 0, NewCell(1, NewRGB(200, 0, 0), NewRGB(100, 100, 100)))
	g.Put(add, 0, 0, NewCell(2, NewRGB(100, 50, 0), NewRGB(200, 10, 0)))

	g.Flatten()
	c, _ := g.Pick(0, 0)
	if c.Glyph != 2 {
		t.Errorf("Expected glyph 2, got %d", c.Glyph)
	}
	if c.Fg.R != 255 || c.Fg.G != 50 {
		t.Errorf("Expected saturating fg add, got %v", c.Fg)
	}
	if c.Bg.R != 255 || c.Bg.G != 110 {
		t.Errorf("Expected saturating bg add, got %v", c.Bg)
	}
}

func TestConfigLimits(t *testing.T) {
	if _, err := NewGrid(Config{Width: 10000, Height: 10000}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for oversized grid, got %v", err)
	}
	if _, err := NewGrid(Config{Width: 2, Height: 2, MaxLayers: 1000}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for oversized layer cap, got %v", err)
	}
}

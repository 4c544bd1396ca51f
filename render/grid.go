package render

import (
	"fmt"

	"github.com/lixenwraith/pixelterm/font"
	"github.com/lixenwraith/pixelterm/parameter"
)

// Config fixes a Grid's shape at creation time. None of it is
// reconfigurable mid-session.
type Config struct {
	Width     int        // terminal width in cells
	Height    int        // terminal height in cells
	MaxLayers int        // layer arena capacity
	Font      *font.Font // glyph atlas, CP437 when nil
	Scale     int        // integer pixel scale at rasterization, >= 1
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = parameter.DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = parameter.DefaultHeight
	}
	if c.MaxLayers <= 0 {
		c.MaxLayers = parameter.DefaultMaxLayers
	}
	if c.Font == nil {
		c.Font = font.CP437()
	}
	if c.Scale < 1 {
		c.Scale = 1
	}
	return c
}

// LayerHandle names a layer slot in a Grid. Handles stay valid until the
// layer is removed, regardless of z-order changes elsewhere in the stack.
type LayerHandle int

// Grid is the compositor: an ordered stack of layers, the flattened
// visible grid, and a per-cell dirty bitmap. The dirty bitmap is a
// conservative superset of cells whose composited value may have changed
// since the last rasterization; false positives are allowed, false
// negatives are not. All storage is allocated at construction, nothing
// grows afterward.
type Grid struct {
	cfg       Config
	layers    []Layer // fixed-capacity arena, indexed by LayerHandle
	order     []int   // live slots sorted by strictly increasing z
	flattened []Cell
	dirty     []bool
}

// NewGrid creates a compositor for the given configuration.
func NewGrid(cfg Config) (*Grid, error) {
	cfg = cfg.withDefaults()
	if cfg.Width*cfg.Height > parameter.MaxCells {
		return nil, fmt.Errorf("%w: %dx%d cells", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	if cfg.MaxLayers > parameter.MaxLayers {
		return nil, fmt.Errorf("%w: %d layers", ErrInvalidConfig, cfg.MaxLayers)
	}
	size := cfg.Width * cfg.Height
	g := &Grid{
		cfg:       cfg,
		layers:    make([]Layer, cfg.MaxLayers),
		order:     make([]int, 0, cfg.MaxLayers),
		flattened: make([]Cell, size),
		dirty:     make([]bool, size),
	}
	g.markAllDirty()
	return g, nil
}

// Width returns the terminal width in cells.
func (g *Grid) Width() int { return g.cfg.Width }

// Height returns the terminal height in cells.
func (g *Grid) Height() int { return g.cfg.Height }

// Font returns the glyph atlas the grid validates against and renders with.
func (g *Grid) Font() *font.Font { return g.cfg.Font }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.cfg.Width && y >= 0 && y < g.cfg.Height
}

func (g *Grid) markDirty(x, y int) {
	g.dirty[y*g.cfg.Width+x] = true
}

func (g *Grid) markAllDirty() {
	for i := range g.dirty {
		g.dirty[i] = true
	}
}

func (g *Grid) layer(h LayerHandle) (*Layer, error) {
	if int(h) < 0 || int(h) >= len(g.layers) || !g.layers[h].used {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLayer, h)
	}
	return &g.layers[h], nil
}

// ===== LAYER STACK =====

// CreateLayer inserts an empty layer at the given z-order. Layers with a
// lower z composite first; z values must be unique across the stack.
func (g *Grid) CreateLayer(z int, mode BlendMode) (LayerHandle, error) {
	slot := -1
	for i := range g.layers {
		if !g.layers[i].used {
			slot = i
			break
		}
	}
	if slot < 0 {
		return 0, fmt.Errorf("%w: max %d", ErrCapacityExceeded, len(g.layers))
	}
	for _, i := range g.order {
		if g.layers[i].z == z {
			return 0, fmt.Errorf("%w: z=%d", ErrDuplicateZOrder, z)
		}
	}
	g.layers[slot].reset(g.cfg.Width, g.cfg.Height, z, mode)
	g.insertOrdered(slot)
	// New layers start blank and cannot change composition until written
	// to, so nothing is marked dirty here.
	return LayerHandle(slot), nil
}

// CreateLayerTop appends a layer above the current topmost z.
func (g *Grid) CreateLayerTop(mode BlendMode) (LayerHandle, error) {
	z := 0
	if n := len(g.order); n > 0 {
		z = g.layers[g.order[n-1]].z + 1
	}
	return g.CreateLayer(z, mode)
}

func (g *Grid) insertOrdered(slot int) {
	z := g.layers[slot].z
	pos := len(g.order)
	for i, idx := range g.order {
		if g.layers[idx].z > z {
			pos = i
			break
		}
	}
	g.order = append(g.order, 0)
	copy(g.order[pos+1:], g.order[pos:])
	g.order[pos] = slot
}

// RemoveLayer destroys a layer and frees its slot. Everything it may have
// contributed to the composition is re-derived on the next flatten.
func (g *Grid) RemoveLayer(h LayerHandle) error {
	l, err := g.layer(h)
	if err != nil {
		return err
	}
	l.used = false
	for i, idx := range g.order {
		if idx == int(h) {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	g.markAllDirty()
	return nil
}

// SetVisible toggles a layer's participation in composition.
func (g *Grid) SetVisible(h LayerHandle, visible bool) error {
	l, err := g.layer(h)
	if err != nil {
		return err
	}
	if l.visible != visible {
		l.visible = visible
		g.markAllDirty()
	}
	return nil
}

// Crop sets a layer's active rectangle. Subsequent puts and clears outside
// it are no-ops and composition only reads inside it. Cells already
// written outside the new rectangle keep their stored values; crop never
// retroactively blanks memory.
func (g *Grid) Crop(h LayerHandle, area Area) error {
	l, err := g.layer(h)
	if err != nil {
		return err
	}
	bounds := Area{Width: g.cfg.Width, Height: g.cfg.Height}
	l.crop = area.Intersect(bounds)
	g.markAllDirty()
	return nil
}

// ===== CELL WRITES =====

// Put writes a cell at (x, y) in the given layer. Writes out of bounds or
// outside the layer's crop rectangle are silent no-ops; bad coordinates
// from untrusted input must never crash a rendering API. Glyph indices
// outside the atlas are rejected here so the mistake surfaces at its
// cause, not at render time.
func (g *Grid) Put(h LayerHandle, x, y int, c Cell) error {
	l, err := g.layer(h)
	if err != nil {
		return err
	}
	if int(c.Glyph) >= g.cfg.Font.Count() {
		return fmt.Errorf("%w: %d (atlas size %d)", ErrInvalidGlyph, c.Glyph, g.cfg.Font.Count())
	}
	if !l.writable(x, y) {
		return nil
	}
	l.cells[y*l.width+x] = c
	g.markDirty(x, y)
	return nil
}

// Clear resets every cell of the layer inside its crop rectangle to blank.
func (g *Grid) Clear(h LayerHandle) error {
	l, err := g.layer(h)
	if err != nil {
		return err
	}
	return g.clearArea(l, l.crop)
}

// ClearArea resets cells to blank over a sub-rectangle, clipped to the
// layer's bounds and crop rectangle.
func (g *Grid) ClearArea(h LayerHandle, area Area) error {
	l, err := g.layer(h)
	if err != nil {
		return err
	}
	return g.clearArea(l, area.Intersect(l.crop))
}

func (g *Grid) clearArea(l *Layer, area Area) error {
	bounds := Area{Width: l.width, Height: l.height}
	area = area.Intersect(bounds)
	for y := area.Y; y < area.Y+area.Height; y++ {
		row := l.cells[y*l.width : (y+1)*l.width]
		for x := area.X; x < area.X+area.Width; x++ {
			row[x] = Blank
			g.markDirty(x, y)
		}
	}
	return nil
}

// ===== COMPOSITION =====

// Flatten recomputes the composited grid for all currently dirty cells,
// walking layers bottom to top in strictly increasing z. Clean cells are
// untouched, which amortizes cost when only a few cells changed. The
// dirty bitmap is left set; rasterization consumes and clears it.
func (g *Grid) Flatten() {
	w := g.cfg.Width
	for idx, d := range g.dirty {
		if !d {
			continue
		}
		x, y := idx%w, idx/w
		acc := Blank
		for _, slot := range g.order {
			l := &g.layers[slot]
			if !l.visible || !l.crop.Contains(x, y) {
				continue
			}
			acc = blend(acc, l.cell(x, y), l.mode)
		}
		g.flattened[idx] = acc
	}
}

// Pick hit-tests a coordinate against the flattened grid, returning the
// same composition result the rasterizer draws. It reads the flattened
// grid rather than re-deriving composition, so it can never disagree with
// what was rendered. Out-of-bounds coordinates report false.
func (g *Grid) Pick(x, y int) (Cell, bool) {
	if !g.inBounds(x, y) {
		return Cell{}, false
	}
	return g.flattened[y*g.cfg.Width+x], true
}

// Flattened exposes the composited grid in row-major order, valid as of
// the last Flatten or Render. Callers must not mutate it.
func (g *Grid) Flattened() []Cell {
	return g.flattened
}

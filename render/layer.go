package render

// Layer is a dense width*height cell grid composited into the final frame
// by z-order. Layers are exclusively owned by their Grid; handles index
// into the grid's fixed-capacity layer arena and stay stable while other
// layers come and go.
type Layer struct {
	cells   []Cell
	width   int
	height  int
	z       int
	mode    BlendMode
	visible bool
	crop    Area // active write/composition window
	used    bool // slot allocated in the arena
}

// Z returns the layer's z-order.
func (l *Layer) Z() int { return l.z }

// Mode returns the layer's composition mode.
func (l *Layer) Mode() BlendMode { return l.mode }

// Visible reports whether the layer participates in composition.
func (l *Layer) Visible() bool { return l.visible }

// Crop returns the layer's active rectangle.
func (l *Layer) Crop() Area { return l.crop }

func (l *Layer) inBounds(x, y int) bool {
	return x >= 0 && x < l.width && y >= 0 && y < l.height
}

// writable reports whether a put/clear may touch (x, y): in bounds and
// inside the crop rectangle. Crop gates future writes and composition
// only; cells already stored outside it keep their values.
func (l *Layer) writable(x, y int) bool {
	return l.inBounds(x, y) && l.crop.Contains(x, y)
}

// cell returns the stored cell without bounds checking. Callers validate.
func (l *Layer) cell(x, y int) Cell {
	return l.cells[y*l.width+x]
}

func (l *Layer) reset(width, height, z int, mode BlendMode) {
	if cap(l.cells) < width*height {
		l.cells = make([]Cell, width*height)
	} else {
		l.cells = l.cells[:width*height]
		clear(l.cells)
	}
	l.width = width
	l.height = height
	l.z = z
	l.mode = mode
	l.visible = true
	l.crop = Area{X: 0, Y: 0, Width: width, Height: height}
	l.used = true
}

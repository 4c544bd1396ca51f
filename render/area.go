package render

// Area represents a rectangular target region in cell coordinates
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Contains reports whether the cell coordinate lies inside the area.
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// Empty reports whether the area covers no cells.
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Intersect clips a against b, returning the overlapping region.
func (a Area) Intersect(b Area) Area {
	x0 := max(a.X, b.X)
	y0 := max(a.Y, b.Y)
	x1 := min(a.X+a.Width, b.X+b.Width)
	y1 := min(a.Y+a.Height, b.Y+b.Height)
	if x1 <= x0 || y1 <= y0 {
		return Area{}
	}
	return Area{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

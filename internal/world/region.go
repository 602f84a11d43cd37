package world

// Region is a rectangular area carved into the map (a floor clearing or a water pool).
type Region struct {
	X, Y          int // Top-left corner position
	Width, Height int
}

// Center returns the center coordinates of the region.
func (r Region) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

package core

// Grid stores a 2D field of live/dead cells in row-major order. Its
// dimensions are fixed once allocated.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid. There is no wrapping.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Alive reports the state at (x, y). Out-of-bounds positions are dead.
func (g *Grid) Alive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.data[y*g.W+x]
}

// Set updates the cell at (x, y); out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[y*g.W+x] = alive
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, data: append([]bool(nil), g.data...)}
}

package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Rows run along H and columns along W; the slice is never resized.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for a row and column.
func (g *ByteGrid) Index(row, col int) int { return row*g.W + col }

// In reports whether the row and column address a slot of the grid.
func (g *ByteGrid) In(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Row returns the slice window holding a single row.
func (g *ByteGrid) Row(row int) []uint8 {
	start := row * g.W
	return g.data[start : start+g.W]
}

// Fill sets every slot to v.
func (g *ByteGrid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() { g.Fill(0) }

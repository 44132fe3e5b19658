package life

// RotateClockwise turns the population a quarter turn clockwise about the
// centre of the odd-sided square enclosing it. Cells rotated off the board are
// lost.
func (g *Grid) RotateClockwise() {
	g.rotate(func(row, col, size int) (int, int) {
		return col, size - 1 - row
	})
}

// RotateCounterClockwise turns the population a quarter turn counter-clockwise.
func (g *Grid) RotateCounterClockwise() {
	g.rotate(func(row, col, size int) (int, int) {
		return size - 1 - col, row
	})
}

// rotate remaps every live cell of the square around the bounding box. The
// square has an odd side so it has a centre cell, and the box stays inside it
// after a quarter turn.
func (g *Grid) rotate(remap func(row, col, size int) (int, int)) {
	lower, upper, ok := g.Bounds()
	if !ok {
		return
	}
	height := upper.Row - lower.Row + 1
	width := upper.Col - lower.Col + 1
	size := makeOdd(max(height, width))
	minRow := lower.Row - (size-height)/2
	minCol := lower.Col - (size-width)/2

	var rotated []Cell
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if g.CellState(minRow+row, minCol+col) != Populated {
				continue
			}
			r, c := remap(row, col, size)
			rotated = append(rotated, Cell{Row: minRow + r, Col: minCol + c})
		}
	}
	g.SetPopulatedCells(rotated)
}

// FlipHorizontal mirrors the population top to bottom within its bounding box.
func (g *Grid) FlipHorizontal() {
	g.flip(func(c, lower, upper Cell) Cell {
		return Cell{Row: lower.Row + upper.Row - c.Row, Col: c.Col}
	})
}

// FlipVertical mirrors the population left to right within its bounding box.
func (g *Grid) FlipVertical() {
	g.flip(func(c, lower, upper Cell) Cell {
		return Cell{Row: c.Row, Col: lower.Col + upper.Col - c.Col}
	})
}

// flip rewrites only the slots of the bounding box; nothing outside it is
// touched.
func (g *Grid) flip(mirror func(c, lower, upper Cell) Cell) {
	lower, upper, ok := g.Bounds()
	if !ok {
		return
	}
	var flipped []Cell
	for row := lower.Row; row <= upper.Row; row++ {
		for col := lower.Col; col <= upper.Col; col++ {
			if g.CellState(row, col) != Populated {
				continue
			}
			flipped = append(flipped, mirror(Cell{Row: row, Col: col}, lower, upper))
			g.SetCellState(row, col, Vacant)
		}
	}
	for _, c := range flipped {
		g.SetCellState(c.Row, c.Col, Populated)
	}
}

// ShiftUp moves every row up by one; the top row wraps to the bottom.
func (g *Grid) ShiftUp() {
	data := g.cells.Cells()
	top := append([]uint8(nil), g.cells.Row(0)...)
	copy(data, data[g.count:])
	copy(g.cells.Row(g.count-1), top)
}

// ShiftDown moves every row down by one; the bottom row wraps to the top.
func (g *Grid) ShiftDown() {
	data := g.cells.Cells()
	bottom := append([]uint8(nil), g.cells.Row(g.count-1)...)
	copy(data[g.count:], data[:len(data)-g.count])
	copy(g.cells.Row(0), bottom)
}

// ShiftLeft moves every column left by one; the left column wraps to the right.
func (g *Grid) ShiftLeft() {
	for row := 0; row < g.count; row++ {
		r := g.cells.Row(row)
		left := r[0]
		copy(r, r[1:])
		r[len(r)-1] = left
	}
}

// ShiftRight moves every column right by one; the right column wraps to the left.
func (g *Grid) ShiftRight() {
	for row := 0; row < g.count; row++ {
		r := g.cells.Row(row)
		right := r[len(r)-1]
		copy(r[1:], r)
		r[0] = right
	}
}

func makeOdd(n int) int {
	if n%2 == 0 {
		return n + 1
	}
	return n
}

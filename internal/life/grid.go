package life

import (
	"math"

	"lifegrid/internal/core"
)

// Grid is a bounded square Game of Life board. Neighbours outside the board
// count as vacant; only the Shift operations wrap around the edges.
type Grid struct {
	cells    *core.ByteGrid
	next     []uint8
	count    int
	gridSize float64
	surface  Surface
}

// New returns a vacant grid of cellCount x cellCount slots drawn into a
// gridSize x gridSize pixel area on surface. A nil surface makes Draw a no-op.
func New(gridSize float64, cellCount int, surface Surface) *Grid {
	if cellCount <= 0 {
		cellCount = 1
	}
	cells := core.NewByteGrid(cellCount, cellCount)
	return &Grid{
		cells:    cells,
		next:     make([]uint8, len(cells.Cells())),
		count:    cellCount,
		gridSize: gridSize,
		surface:  surface,
	}
}

// NewWithConfig returns an unbound grid configured from cfg.
func NewWithConfig(cfg Config) *Grid {
	return New(cfg.GridSize, cfg.CellCount, nil)
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "life" }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.count, H: g.count} }

// Cells exposes the row-major state buffer. Each byte holds a CellState.
func (g *Grid) Cells() []uint8 { return g.cells.Cells() }

// CellCount returns the number of rows (and columns).
func (g *Grid) CellCount() int { return g.count }

// GridSize returns the pixel extent of the drawing.
func (g *Grid) GridSize() float64 { return g.gridSize }

// CellState returns the state at row, col or Invalid when the address lies
// outside the grid.
func (g *Grid) CellState(row, col int) CellState {
	if !g.cells.In(row, col) {
		return Invalid
	}
	return CellState(g.cells.Cells()[g.cells.Index(row, col)])
}

// SetCellState overwrites the slot at row, col. Out-of-range addresses and the
// Invalid state are ignored.
func (g *Grid) SetCellState(row, col int, state CellState) {
	if !g.cells.In(row, col) || state == Invalid {
		return
	}
	g.cells.Cells()[g.cells.Index(row, col)] = uint8(state)
}

// ToggleCellState flips a populated cell to vacant and anything else to
// populated.
func (g *Grid) ToggleCellState(row, col int) {
	next := Populated
	if g.CellState(row, col) == Populated {
		next = Vacant
	}
	g.SetCellState(row, col, next)
}

// CellFromPoint maps a pixel position to the cell under it. The result is not
// bounds checked.
func (g *Grid) CellFromPoint(x, y float64) Cell {
	size := g.cellSize()
	return Cell{
		Row: int(math.Floor((y - BorderWidth) / size)),
		Col: int(math.Floor((x - BorderWidth) / size)),
	}
}

// VacateAll sets every slot to Vacant.
func (g *Grid) VacateAll() { g.cells.Fill(uint8(Vacant)) }

// SetPopulatedCells replaces the population with cells. Cells outside the grid
// are dropped.
func (g *Grid) SetPopulatedCells(cells []Cell) {
	g.VacateAll()
	for _, c := range cells {
		g.SetCellState(c.Row, c.Col, Populated)
	}
}

// PopulatedCells returns the live cells in row-major order.
func (g *Grid) PopulatedCells() []Cell {
	var live []Cell
	for i, v := range g.cells.Cells() {
		if CellState(v) == Populated {
			live = append(live, Cell{Row: i / g.count, Col: i % g.count})
		}
	}
	return live
}

// Population returns the number of populated cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.cells.Cells() {
		if CellState(v) == Populated {
			n++
		}
	}
	return n
}

// Evolve advances the board by one generation. Every cell is evaluated against
// the current generation before any slot is written.
func (g *Grid) Evolve() {
	n := g.count
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			neighbors := g.countNeighbors(row, col)
			idx := g.cells.Index(row, col)
			alive := CellState(g.cells.Cells()[idx]) == Populated
			g.next[idx] = uint8(Vacant)
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				g.next[idx] = uint8(Populated)
			}
		}
	}
	copy(g.cells.Cells(), g.next)
}

func (g *Grid) countNeighbors(row, col int) int {
	neighbors := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.CellState(row+dr, col+dc) == Populated {
				neighbors++
			}
		}
	}
	return neighbors
}

// Bounds returns the smallest and largest row and column holding a populated
// cell. ok is false when nothing is populated.
func (g *Grid) Bounds() (lower, upper Cell, ok bool) {
	lower = Cell{Row: math.MaxInt, Col: math.MaxInt}
	for row := 0; row < g.count; row++ {
		for col := 0; col < g.count; col++ {
			if g.CellState(row, col) != Populated {
				continue
			}
			ok = true
			lower.Row = min(lower.Row, row)
			lower.Col = min(lower.Col, col)
			upper.Row = max(upper.Row, row)
			upper.Col = max(upper.Col, col)
		}
	}
	return lower, upper, ok
}

// Reset replaces the board with a random population seeded by seed. The
// cells are scattered over the middle three fifths of the board.
func (g *Grid) Reset(seed int64) {
	rng := core.NewRNG(seed)
	lo := g.count / 5
	hi := lo * 4
	samples := int(g.gridSize)
	if samples <= 0 {
		samples = g.count * g.count / 10
	}
	cells := make([]Cell, 0, samples)
	for i := 0; i < samples; i++ {
		cells = append(cells, Cell{Row: rng.IntRange(lo, hi), Col: rng.IntRange(lo, hi)})
	}
	g.SetPopulatedCells(cells)
}

// Step advances the board by one generation.
func (g *Grid) Step() { g.Evolve() }

// CellAt maps a pixel position to a row and column.
func (g *Grid) CellAt(x, y float64) (int, int) {
	c := g.CellFromPoint(x, y)
	return c.Row, c.Col
}

// Toggle flips the cell at row, col.
func (g *Grid) Toggle(row, col int) { g.ToggleCellState(row, col) }

// Clear vacates the board.
func (g *Grid) Clear() { g.VacateAll() }

// Populate replaces the population with the given row/column pairs.
func (g *Grid) Populate(cells [][2]int) {
	live := make([]Cell, len(cells))
	for i, rc := range cells {
		live[i] = Cell{Row: rc[0], Col: rc[1]}
	}
	g.SetPopulatedCells(live)
}

func (g *Grid) cellSize() float64 {
	return (g.gridSize - 2*BorderWidth) / float64(g.count)
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}

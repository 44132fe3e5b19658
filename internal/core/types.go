package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Editor is implemented by sims whose cells can be edited from pointer input.
type Editor interface {
	// CellAt maps a pixel position to a row and column. The result may lie
	// outside the grid.
	CellAt(x, y float64) (row, col int)
	Toggle(row, col int)
	Clear()
}

// Transformer is implemented by sims that can move their live population.
type Transformer interface {
	RotateClockwise()
	RotateCounterClockwise()
	FlipHorizontal()
	FlipVertical()
	ShiftUp()
	ShiftDown()
	ShiftLeft()
	ShiftRight()
}

// Populator is implemented by sims that can be seeded from a list of live
// cells given as row/column pairs.
type Populator interface {
	Populate(cells [][2]int)
	Population() int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

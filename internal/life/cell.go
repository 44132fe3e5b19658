package life

// Cell addresses a grid slot by row and column. Patterns and transforms also
// use it as a live-cell record.
type Cell struct {
	Row int
	Col int
}

// CellState is the value of a grid slot. Only Vacant and Populated are ever
// stored; Invalid is returned for addresses outside the grid.
type CellState uint8

const (
	Vacant CellState = iota
	Populated
	Invalid
)

// String returns the state name.
func (s CellState) String() string {
	switch s {
	case Vacant:
		return "vacant"
	case Populated:
		return "populated"
	default:
		return "invalid"
	}
}

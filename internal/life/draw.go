package life

import "image/color"

// BorderWidth is the pixel width of the frame drawn around the cells.
const BorderWidth = 10.0

// Colours used by Draw.
var (
	BorderColor          = color.RGBA{R: 170, G: 170, B: 0, A: 255}
	BorderHighlightColor = color.RGBA{R: 255, G: 255, B: 170, A: 255}
	VacantCellColor      = color.RGBA{R: 170, G: 170, B: 170, A: 255}
	PopulatedCellColor   = color.RGBA{R: 10, G: 10, B: 0, A: 255}
	CellStrokeColor      = color.RGBA{A: 255}
)

// CellStrokeWidth is the line width of the outline around each cell.
const CellStrokeWidth = 0.25

// Surface is a 2D drawing target. Coordinates are in pixels with the origin at
// the top left corner.
type Surface interface {
	// Save pushes the drawing state; Restore pops it.
	Save()
	Restore()
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h, lineWidth float64, c color.Color)
}

// Bind attaches the grid to a drawing surface, replacing any previous one.
func (g *Grid) Bind(surface Surface) { g.surface = surface }

// Draw paints the frame and every cell onto the bound surface.
func (g *Grid) Draw() {
	s := g.surface
	if s == nil {
		return
	}
	s.Save()
	defer s.Restore()

	s.FillRect(0, 0, g.gridSize, g.gridSize, BorderColor)
	inset := BorderWidth / 4 * 3
	s.FillRect(inset, inset, g.gridSize-2*inset, g.gridSize-2*inset, BorderHighlightColor)

	size := g.cellSize()
	for i, v := range g.cells.Cells() {
		fill := VacantCellColor
		if CellState(v) == Populated {
			fill = PopulatedCellColor
		}
		x := BorderWidth + float64(i%g.count)*size
		y := BorderWidth + float64(i/g.count)*size
		s.FillRect(x, y, size, size, fill)
		s.StrokeRect(x, y, size, size, CellStrokeWidth, CellStrokeColor)
	}
}

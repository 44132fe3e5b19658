package life

import (
	"image/color"
	"slices"
	"testing"

	"lifegrid/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populate(g *Grid, cells ...Cell) {
	for _, c := range cells {
		g.SetCellState(c.Row, c.Col, Populated)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := New(70, 5, nil)
	populate(g, Cell{1, 0}, Cell{1, 1}, Cell{1, 2})

	g.Evolve()

	expects := map[Cell]bool{
		{0, 1}: true,
		{1, 1}: true,
		{2, 1}: true,
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			alive := g.CellState(row, col) == Populated
			if expects[Cell{row, col}] != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", row, col, alive, expects[Cell{row, col}])
			}
		}
	}

	g.Evolve()

	expects = map[Cell]bool{
		{1, 0}: true,
		{1, 1}: true,
		{1, 2}: true,
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			alive := g.CellState(row, col) == Populated
			if expects[Cell{row, col}] != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", row, col, alive, expects[Cell{row, col}])
			}
		}
	}
}

func TestGliderTranslatesAfterFourGenerations(t *testing.T) {
	g := New(120, 10, nil)
	glider := []Cell{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	populate(g, glider...)

	for i := 0; i < 4; i++ {
		g.Evolve()
	}

	want := make([]Cell, len(glider))
	for i, c := range glider {
		want[i] = Cell{c.Row + 1, c.Col + 1}
	}
	assert.ElementsMatch(t, want, g.PopulatedCells())
}

func TestEvolveEmptyGridStaysEmpty(t *testing.T) {
	g := New(120, 10, nil)
	g.Evolve()
	assert.Zero(t, g.Population())
}

func TestEvolveDoesNotWrapAtEdges(t *testing.T) {
	g := New(70, 5, nil)
	// A vertical line against the left edge would feed column 4 on a torus.
	populate(g, Cell{1, 0}, Cell{2, 0}, Cell{3, 0})
	g.Evolve()
	assert.ElementsMatch(t, []Cell{{2, 0}, {2, 1}}, g.PopulatedCells())
}

func TestOutOfBoundsAccess(t *testing.T) {
	g := New(70, 5, nil)
	populate(g, Cell{2, 2})
	before := slices.Clone(g.Cells())

	for _, c := range []Cell{{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {100, 100}} {
		assert.Equalf(t, Invalid, g.CellState(c.Row, c.Col), "cell %v", c)
		g.SetCellState(c.Row, c.Col, Populated)
		g.ToggleCellState(c.Row, c.Col)
	}
	assert.Equal(t, before, g.Cells())
}

func TestSetCellStateNeverStoresInvalid(t *testing.T) {
	g := New(70, 5, nil)
	populate(g, Cell{1, 1})
	g.SetCellState(1, 1, Invalid)
	assert.Equal(t, Populated, g.CellState(1, 1))
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	g := New(70, 5, nil)
	populate(g, Cell{3, 3})

	for _, c := range []Cell{{3, 3}, {0, 4}} {
		orig := g.CellState(c.Row, c.Col)
		g.ToggleCellState(c.Row, c.Col)
		require.NotEqual(t, orig, g.CellState(c.Row, c.Col))
		g.ToggleCellState(c.Row, c.Col)
		require.Equal(t, orig, g.CellState(c.Row, c.Col))
	}
}

func TestCellFromPoint(t *testing.T) {
	g := New(120, 10, nil)
	cases := []struct {
		x, y float64
		want Cell
	}{
		{10, 10, Cell{0, 0}},
		{35, 25, Cell{1, 2}},
		{109.9, 109.9, Cell{9, 9}},
		{5, 5, Cell{-1, -1}},
		{115, 50, Cell{4, 10}},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, g.CellFromPoint(tc.x, tc.y), "point (%v,%v)", tc.x, tc.y)
	}
}

func TestVacateAllAndSetPopulatedCells(t *testing.T) {
	g := New(70, 5, nil)
	g.SetPopulatedCells([]Cell{{0, 0}, {4, 4}, {9, 9}, {-1, 2}, {0, 0}})
	assert.Equal(t, []Cell{{0, 0}, {4, 4}}, g.PopulatedCells())

	g.VacateAll()
	assert.Zero(t, g.Population())
	for _, v := range g.Cells() {
		require.Equal(t, uint8(Vacant), v)
	}
}

func TestBounds(t *testing.T) {
	g := New(120, 10, nil)
	_, _, ok := g.Bounds()
	assert.False(t, ok)

	populate(g, Cell{3, 7}, Cell{5, 2}, Cell{8, 4})
	lower, upper, ok := g.Bounds()
	require.True(t, ok)
	assert.Equal(t, Cell{3, 2}, lower)
	assert.Equal(t, Cell{8, 7}, upper)
}

func TestResetDeterministic(t *testing.T) {
	g := New(900, 100, nil)
	g.Reset(42)
	first := slices.Clone(g.Cells())
	require.NotZero(t, g.Population())

	lower, upper, _ := g.Bounds()
	assert.GreaterOrEqual(t, lower.Row, 20)
	assert.GreaterOrEqual(t, lower.Col, 20)
	assert.Less(t, upper.Row, 80)
	assert.Less(t, upper.Col, 80)

	g.Reset(42)
	assert.Equal(t, first, g.Cells())
}

func TestRegisteredAsSim(t *testing.T) {
	factory, ok := core.Sims()["life"]
	require.True(t, ok)

	sim := factory(map[string]string{"cells": "20", "size": "300"})
	assert.Equal(t, "life", sim.Name())
	assert.Equal(t, core.Size{W: 20, H: 20}, sim.Size())
	assert.Len(t, sim.Cells(), 400)

	_, ok = sim.(core.Editor)
	assert.True(t, ok)
	_, ok = sim.(core.Transformer)
	assert.True(t, ok)
	_, ok = sim.(core.Populator)
	assert.True(t, ok)
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	cfg := FromMap(map[string]string{"cells": "-3", "size": "abc"})
	assert.Equal(t, DefaultConfig(), cfg)
}

type drawCall struct {
	op         string
	x, y, w, h float64
	c          color.Color
}

type recordingSurface struct {
	calls []drawCall
	depth int
}

func (r *recordingSurface) Save()    { r.depth++; r.calls = append(r.calls, drawCall{op: "save"}) }
func (r *recordingSurface) Restore() { r.depth--; r.calls = append(r.calls, drawCall{op: "restore"}) }
func (r *recordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	r.calls = append(r.calls, drawCall{op: "fill", x: x, y: y, w: w, h: h, c: c})
}
func (r *recordingSurface) StrokeRect(x, y, w, h, _ float64, c color.Color) {
	r.calls = append(r.calls, drawCall{op: "stroke", x: x, y: y, w: w, h: h, c: c})
}

func TestDrawSequence(t *testing.T) {
	surface := &recordingSurface{}
	g := New(60, 4, surface)
	populate(g, Cell{1, 2})

	g.Draw()

	calls := surface.calls
	require.Len(t, calls, 1+2+2*16+1)
	assert.Equal(t, "save", calls[0].op)
	assert.Equal(t, "restore", calls[len(calls)-1].op)
	assert.Zero(t, surface.depth)

	assert.Equal(t, drawCall{op: "fill", w: 60, h: 60, c: BorderColor}, calls[1])
	assert.Equal(t, drawCall{op: "fill", x: 7.5, y: 7.5, w: 45, h: 45, c: BorderHighlightColor}, calls[2])

	// Slot (1,2) is the seventh cell; each cell emits a fill and a stroke.
	fill := calls[3+2*6]
	assert.Equal(t, drawCall{op: "fill", x: 30, y: 20, w: 10, h: 10, c: PopulatedCellColor}, fill)
	assert.Equal(t, "stroke", calls[4+2*6].op)
	assert.Equal(t, VacantCellColor, calls[3].c)
}

func TestDrawWithoutSurfaceIsNoop(t *testing.T) {
	g := New(60, 4, nil)
	g.Draw()

	surface := &recordingSurface{}
	g.Bind(surface)
	g.Draw()
	assert.NotEmpty(t, surface.calls)
}

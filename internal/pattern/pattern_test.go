package pattern

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lifegrid/internal/life"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var glider = []life.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}

func TestParseCells(t *testing.T) {
	p := ParseCells("!Name: Test\n.O.\nOOO\n")

	if diff := cmp.Diff([]string{"!Name: Test"}, p.Metadata()); diff != "" {
		t.Fatalf("metadata mismatch (-want +got):\n%s", diff)
	}
	want := []life.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}
	if diff := cmp.Diff(want, p.Cells()); diff != "" {
		t.Fatalf("cells mismatch (-want +got):\n%s", diff)
	}
	name, ok := p.Name()
	require.True(t, ok)
	assert.Equal(t, "Test", name)
}

func TestParseCellsMetadataDoesNotAdvanceRow(t *testing.T) {
	p := ParseCells("O..\r\n!comment in the middle\r\n\r\n..*\r\n")

	assert.Equal(t, []string{"!comment in the middle"}, p.Metadata())
	// The blank line is still a row; any non-dot character is alive.
	assert.Equal(t, []life.Cell{{Row: 0, Col: 0}, {Row: 2, Col: 2}}, p.Cells())
}

func TestParseCellsEmpty(t *testing.T) {
	p := ParseCells("")
	assert.Empty(t, p.Metadata())
	assert.Empty(t, p.Cells())
	_, ok := p.Name()
	assert.False(t, ok)
}

func TestParseRLEGlider(t *testing.T) {
	p := ParseRLE("#N Glider\nx = 3, y = 3\nbob$2bo$3o!")

	assert.Equal(t, []string{"#N Glider", "x = 3, y = 3"}, p.Metadata())
	if diff := cmp.Diff(glider, p.Cells()); diff != "" {
		t.Fatalf("cells mismatch (-want +got):\n%s", diff)
	}
	name, ok := p.Name()
	require.True(t, ok)
	assert.Equal(t, "Glider", name)
	assert.Equal(t, Extent{Width: 2, Height: 2}, p.Dimensions())
}

func rowRun(n int) []life.Cell {
	cells := make([]life.Cell, n)
	for i := range cells {
		cells[i] = life.Cell{Row: 0, Col: i}
	}
	return cells
}

func TestParseRLETokens(t *testing.T) {
	cases := []struct {
		name string
		body string
		want []life.Cell
	}{
		{"upper case tags", "2O$B2X", []life.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}},
		{"alive aliases", "oxyz", []life.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}}},
		{"multi digit run", "12bo", []life.Cell{{Row: 0, Col: 12}}},
		{"row skip", "o3$o", []life.Cell{{Row: 0, Col: 0}, {Row: 3, Col: 0}}},
		{"bang ends the line", "o!oo", []life.Cell{{Row: 0, Col: 0}}},
		{"count spans lines", "o2\n$o", []life.Cell{{Row: 0, Col: 0}, {Row: 2, Col: 0}}},
		{"unknown characters keep count", "1q2o", rowRun(12)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := ParseRLE("x = 0, y = 0\n" + tc.body)
			assert.Equal(t, tc.want, p.Cells())
		})
	}
}

func TestParseRLEDiagnostics(t *testing.T) {
	p, diag := ParseRLEWithDiagnostics("#C comment\nx = 2, y = 1\no q\nk$o!zzz")

	assert.Equal(t, []life.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}}, p.Cells())
	want := []Ignored{
		{Char: 'q', Line: 3, Column: 3},
		{Char: 'k', Line: 4, Column: 1},
	}
	if diff := cmp.Diff(want, diag.Ignored); diff != "" {
		t.Fatalf("ignored mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRLEOnlyFirstUntaggedLineIsHeader(t *testing.T) {
	p := ParseRLE("x = 1, y = 1\n#C late comment\no!")
	assert.Equal(t, []string{"x = 1, y = 1", "#C late comment"}, p.Metadata())
	assert.Equal(t, []life.Cell{{Row: 0, Col: 0}}, p.Cells())
}

func TestParseRLECapsRunLength(t *testing.T) {
	p := ParseRLE("x = 0, y = 0\n99999999999b$o")
	assert.Equal(t, []life.Cell{{Row: 1, Col: 0}}, p.Cells())

	p = ParseRLE("x = 0, y = 0\n99999999999o")
	assert.Equal(t, maxRunLength, p.Len())
}

func TestName(t *testing.T) {
	cases := []struct {
		name     string
		metadata []string
		want     string
		ok       bool
	}{
		{"no metadata", nil, "", false},
		{"cells name tag", []string{"!Author: me", "!Name:  Pulsar "}, "Pulsar", true},
		{"rle name tag", []string{"#C made by hand", "#N Gosper glider gun"}, "Gosper glider gun", true},
		{"fallback to first line", []string{"#C Just a comment", "x = 1"}, "C Just a comment", true},
		{"first line not tagged", []string{"x = 1, y = 1"}, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := New(tc.metadata, nil).Name()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDimensions(t *testing.T) {
	p := New(nil, []life.Cell{{Row: 4, Col: 1}, {Row: 0, Col: 9}, {Row: 4, Col: 1}})
	assert.Equal(t, Extent{Width: 9, Height: 4}, p.Dimensions())
	assert.Equal(t, Extent{}, New(nil, nil).Dimensions())
}

func TestPatternIsImmutable(t *testing.T) {
	meta := []string{"!Name: a"}
	cells := []life.Cell{{Row: 1, Col: 1}}
	p := New(meta, cells)
	meta[0] = "changed"
	cells[0].Row = 9
	p.Cells()[0].Col = 7

	assert.Equal(t, []string{"!Name: a"}, p.Metadata())
	assert.Equal(t, []life.Cell{{Row: 1, Col: 1}}, p.Cells())
}

func TestApply(t *testing.T) {
	g := life.New(120, 10, nil)
	g.SetCellState(9, 9, life.Populated)

	ParseRLE("x = 3, y = 3\nbob$2bo$3o!").Apply(g)

	assert.ElementsMatch(t, glider, g.PopulatedCells())
}

func TestDecodeByExtension(t *testing.T) {
	p, _, err := Decode("glider.RLE", "x = 3, y = 3\nbob$2bo$3o!")
	require.NoError(t, err)
	assert.Equal(t, glider, p.Cells())

	p, _, err = Decode("blinker.cells", "OOO")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Len())

	_, _, err = Decode("notes.txt", "OOO")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glider.rle")
	require.NoError(t, os.WriteFile(path, []byte("#N Glider\nx = 3, y = 3\nbob$2bo$3o!\n"), 0o644))

	p, diag, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, diag.Ignored)
	assert.Equal(t, glider, p.Cells())

	_, _, err = Load(filepath.Join(dir, "missing.cells"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, _, err = Load(filepath.Join(dir, "glider.png"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

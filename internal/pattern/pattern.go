// Package pattern decodes Game of Life pattern files. Two text encodings are
// supported: plaintext (.cells) and run length encoded (.rle). Decoding never
// fails on malformed content; unknown characters are skipped.
package pattern

import (
	"strings"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
)

// Extent is the width and height reach of a pattern, measured as the largest
// column and row index of its live cells.
type Extent struct {
	Width  int
	Height int
}

// Pattern is a decoded pattern: the raw metadata lines in file order and the
// live cells in the order they were read. Cells may repeat.
type Pattern struct {
	metadata []string
	cells    []life.Cell
}

// New returns a Pattern holding copies of metadata and cells.
func New(metadata []string, cells []life.Cell) Pattern {
	return Pattern{
		metadata: append([]string(nil), metadata...),
		cells:    append([]life.Cell(nil), cells...),
	}
}

// Metadata returns a copy of the metadata lines.
func (p Pattern) Metadata() []string { return append([]string(nil), p.metadata...) }

// Cells returns a copy of the live cells.
func (p Pattern) Cells() []life.Cell { return append([]life.Cell(nil), p.cells...) }

// Len returns the number of live cell records.
func (p Pattern) Len() int { return len(p.cells) }

// Name returns the pattern name. A "!Name:" or "#N" line wins; otherwise the
// first metadata line is used with its leading '!' or '#' removed.
func (p Pattern) Name() (string, bool) {
	for _, line := range p.metadata {
		if rest, ok := strings.CutPrefix(line, "!Name:"); ok {
			return strings.TrimSpace(rest), true
		}
		if rest, ok := strings.CutPrefix(line, "#N"); ok {
			return strings.TrimSpace(rest), true
		}
	}
	if len(p.metadata) == 0 {
		return "", false
	}
	first := p.metadata[0]
	if strings.HasPrefix(first, "!") || strings.HasPrefix(first, "#") {
		return strings.TrimSpace(first[1:]), true
	}
	return "", false
}

// Dimensions returns the largest column as Width and the largest row as Height.
func (p Pattern) Dimensions() Extent {
	var e Extent
	for _, c := range p.cells {
		e.Width = max(e.Width, c.Col)
		e.Height = max(e.Height, c.Row)
	}
	return e
}

// Apply replaces the population of dst with the pattern's cells. Cells
// outside the board are dropped by dst.
func (p Pattern) Apply(dst core.Populator) {
	pairs := make([][2]int, len(p.cells))
	for i, c := range p.cells {
		pairs[i] = [2]int{c.Row, c.Col}
	}
	dst.Populate(pairs)
}

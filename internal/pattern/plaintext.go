package pattern

import "lifegrid/internal/life"

// ParseCells decodes the plaintext format. Lines starting with '!' are kept as
// metadata; every other line is a row where any character except '.' is a
// live cell.
func ParseCells(data string) Pattern {
	var (
		metadata []string
		cells    []life.Cell
		row      int
	)
	for _, line := range lines(data) {
		if len(line) > 0 && line[0] == '!' {
			metadata = append(metadata, line)
			continue
		}
		col := 0
		for _, ch := range line {
			if ch != '.' {
				cells = append(cells, life.Cell{Row: row, Col: col})
			}
			col++
		}
		row++
	}
	return Pattern{metadata: metadata, cells: cells}
}

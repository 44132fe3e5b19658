package pattern

import (
	"strings"
	"unicode"

	"lifegrid/internal/life"
)

// maxRunLength caps a run count so a corrupt file cannot ask for billions of
// cells.
const maxRunLength = 1 << 16

// Ignored records a character the RLE decoder skipped. Line and Column are
// 1-based positions in the input.
type Ignored struct {
	Char   rune
	Line   int
	Column int
}

// Diagnostics lists what the RLE decoder skipped while decoding.
type Diagnostics struct {
	Ignored []Ignored
}

// ParseRLE decodes the run length encoded format. Lines starting with '#' are
// metadata, the first other line is the header and is kept as metadata too.
// The remaining lines are decoded up to the first '!'.
func ParseRLE(data string) Pattern {
	p, _ := ParseRLEWithDiagnostics(data)
	return p
}

// ParseRLEWithDiagnostics decodes like ParseRLE and also reports every
// non-space character it ignored.
func ParseRLEWithDiagnostics(data string) (Pattern, Diagnostics) {
	var (
		metadata    []string
		cells       []life.Cell
		diag        Diagnostics
		headerFound bool
		row, col    int
		count       int
	)
	for n, line := range lines(data) {
		if strings.HasPrefix(line, "#") {
			metadata = append(metadata, line)
			continue
		}
		if !headerFound {
			metadata = append(metadata, line)
			headerFound = true
			continue
		}
		column := 0
	tokens:
		for _, ch := range strings.ToLower(line) {
			column++
			switch {
			case ch == '!':
				break tokens
			case ch >= '0' && ch <= '9':
				count = min(count*10+int(ch-'0'), maxRunLength)
			case ch == 'o' || ch == 'x' || ch == 'y' || ch == 'z':
				run := max(count, 1)
				for i := 0; i < run; i++ {
					cells = append(cells, life.Cell{Row: row, Col: col})
					col++
				}
				count = 0
			case ch == 'b':
				col += max(count, 1)
				count = 0
			case ch == '$':
				col = 0
				row += max(count, 1)
				count = 0
			case unicode.IsSpace(ch):
			default:
				diag.Ignored = append(diag.Ignored, Ignored{Char: ch, Line: n + 1, Column: column})
			}
		}
	}
	return Pattern{metadata: metadata, cells: cells}, diag
}

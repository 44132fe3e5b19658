package tui

import (
	"strings"

	"lifegrid/internal/core"

	"github.com/charmbracelet/lipgloss"
)

var (
	populatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFAA")).Background(lipgloss.Color("#0A0A00"))
	vacantStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")).Background(lipgloss.Color("#0A0A00"))
	boardStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#AAAA00"))
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFAA"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
)

const (
	populatedGlyph = "██"
	vacantGlyph    = "··"
)

// Plain renders sim in the plaintext pattern format: 'O' for a populated cell
// and '.' for a vacant one, one line per row.
func Plain(sim core.Sim) string {
	size := sim.Size()
	cells := sim.Cells()
	var b strings.Builder
	b.Grow((size.W + 1) * size.H)
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			if cells[row*size.W+col] != 0 {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Board renders sim as a bordered block two columns wide per cell.
func Board(sim core.Sim) string {
	size := sim.Size()
	cells := sim.Cells()
	populated := populatedStyle.Render(populatedGlyph)
	vacant := vacantStyle.Render(vacantGlyph)

	rows := make([]string, size.H)
	var b strings.Builder
	for row := 0; row < size.H; row++ {
		b.Reset()
		for col := 0; col < size.W; col++ {
			if cells[row*size.W+col] != 0 {
				b.WriteString(populated)
			} else {
				b.WriteString(vacant)
			}
		}
		rows[row] = b.String()
	}
	return boardStyle.Render(strings.Join(rows, "\n"))
}

//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status renders the generation counter and board summary below the board.
type Status struct {
	width int
	panel *ebiten.Image
}

// NewStatus constructs a status line for a board of the given pixel width.
func NewStatus(width int) *Status {
	if width <= 0 {
		width = 1
	}
	return &Status{width: width, panel: ebiten.NewImage(width, statusHeight)}
}

// Height returns the pixel height of the status line.
func (s *Status) Height() int { return statusHeight }

// Draw paints the status line at offsetY.
func (s *Status) Draw(screen *ebiten.Image, offsetY int, info StatusInfo) {
	if s == nil {
		return
	}
	s.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13

	text.Draw(s.panel, info.Left(), face, panelPadding, textBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	right := info.Right()
	bounds := text.BoundString(face, right)
	text.Draw(s.panel, right, face, s.width-panelPadding-bounds.Dx(), textBaseline, color.RGBA{R: 160, G: 160, B: 170, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(s.panel, op)
}

const (
	panelPadding = 12
	statusHeight = 28
	textBaseline = 19
)


//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws onto an ebiten image. The target is swapped every frame
// with SetTarget.
type EbitenSurface struct {
	dst   *ebiten.Image
	depth int
}

// NewEbitenSurface constructs a surface without a target.
func NewEbitenSurface() *EbitenSurface { return &EbitenSurface{} }

// SetTarget selects the image subsequent calls draw on.
func (s *EbitenSurface) SetTarget(dst *ebiten.Image) { s.dst = dst }

// Save opens a drawing scope.
func (s *EbitenSurface) Save() { s.depth++ }

// Restore closes the innermost drawing scope.
func (s *EbitenSurface) Restore() {
	if s.depth > 0 {
		s.depth--
	}
}

// FillRect fills the rectangle with c.
func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// StrokeRect outlines the rectangle with c.
func (s *EbitenSurface) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	if s.dst == nil {
		return
	}
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(lineWidth), c, false)
}

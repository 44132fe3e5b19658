// Package render provides drawing surfaces for life.Grid.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
)

// ImageSurface draws into an in-memory RGBA image. It keeps no drawing state
// of its own, so Save and Restore only track nesting.
type ImageSurface struct {
	img   *image.RGBA
	depth int
}

// NewImageSurface allocates a transparent size x size image.
func NewImageSurface(size int) *ImageSurface {
	if size <= 0 {
		size = 1
	}
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, size, size))}
}

// Image returns the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Depth reports how many Save calls are still open.
func (s *ImageSurface) Depth() int { return s.depth }

// Save opens a drawing scope.
func (s *ImageSurface) Save() { s.depth++ }

// Restore closes the innermost drawing scope.
func (s *ImageSurface) Restore() {
	if s.depth > 0 {
		s.depth--
	}
}

// FillRect paints the pixels covered by the rectangle.
func (s *ImageSurface) FillRect(x, y, w, h float64, c color.Color) {
	draw.Draw(s.img, pixelRect(x, y, w, h), image.NewUniform(c), image.Point{}, draw.Src)
}

// StrokeRect outlines the rectangle. Lines are at least one pixel wide.
func (s *ImageSurface) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	lw := math.Max(1, math.Round(lineWidth))
	src := image.NewUniform(c)
	for _, r := range []image.Rectangle{
		pixelRect(x, y, w, lw),
		pixelRect(x, y+h-lw, w, lw),
		pixelRect(x, y, lw, h),
		pixelRect(x+w-lw, y, lw, h),
	} {
		draw.Draw(s.img, r, src, image.Point{}, draw.Src)
	}
}

// WritePNG encodes the image as PNG.
func (s *ImageSurface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func pixelRect(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
}

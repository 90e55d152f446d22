// Package render defines the drawing contract screens paint against. The
// ebiten-backed implementation lives in render/ebitenrender; Recorder is an
// in-memory implementation for tests and tools.
package render

import (
	"image"
	"image/color"
)

// Image is an immutable image handle. Both image.Image and *ebiten.Image satisfy it.
type Image interface {
	Bounds() image.Rectangle
}

// FontSize selects one of the fixed text sizes used across the screens.
type FontSize int

const (
	FontSmall FontSize = iota
	FontBody
	FontHeading
	FontTitle
)

// Pixels returns the nominal line height of the size.
func (s FontSize) Pixels() int {
	switch s {
	case FontBody:
		return 24
	case FontHeading:
		return 36
	case FontTitle:
		return 64
	default:
		return 16
	}
}

// Surface is an abstract 2D drawing target.
type Surface interface {
	Size() (width, height int)
	Fill(clr color.Color)
	FillRect(x, y, w, h float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	DrawImage(img Image, x, y float64)
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, x, y float64, size FontSize, clr color.Color)
	TextWidth(s string, size FontSize) float64
}

// Size returns the pixel size of img.
func Size(img Image) (int, int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// CenteredX returns the x that centres text of the given size in the span [x, x+width).
func CenteredX(s Surface, text string, size FontSize, x, width float64) float64 {
	return x + (width-s.TextWidth(text, size))/2
}

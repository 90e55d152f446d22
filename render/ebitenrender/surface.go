// Package ebitenrender implements render.Surface on top of an *ebiten.Image.
package ebitenrender

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"pig-dice/render"
)

const baseFontHeight = 13

// Surface draws onto the current frame's screen image. Images that are not
// already ebiten images are uploaded once and cached.
type Surface struct {
	target *ebiten.Image
	face   *text.GoXFace
	cache  map[render.Image]*ebiten.Image
}

// NewSurface creates a surface with an empty image cache.
func NewSurface() *Surface {
	return &Surface{
		face:  text.NewGoXFace(basicfont.Face7x13),
		cache: make(map[render.Image]*ebiten.Image),
	}
}

// Target points the surface at this frame's screen and returns it.
func (s *Surface) Target(screen *ebiten.Image) *Surface {
	s.target = screen
	return s
}

func (s *Surface) Size() (int, int) {
	b := s.target.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Fill(clr color.Color) {
	s.target.Fill(clr)
}

func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *Surface) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.target, float32(cx), float32(cy), float32(r), clr, true)
}

func (s *Surface) DrawImage(img render.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	s.target.DrawImage(s.upload(img), op)
}

func (s *Surface) DrawText(str string, x, y float64, size render.FontSize, clr color.Color) {
	scale := float64(size.Pixels()) / baseFontHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(s.target, str, s.face, op)
}

func (s *Surface) TextWidth(str string, size render.FontSize) float64 {
	return text.Advance(str, s.face) * float64(size.Pixels()) / baseFontHeight
}

func (s *Surface) upload(img render.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if e, ok := s.cache[img]; ok {
		return e
	}
	src, ok := img.(image.Image)
	if !ok {
		panic("ebitenrender: unsupported image type")
	}
	e := ebiten.NewImageFromImage(src)
	s.cache[img] = e
	return e
}

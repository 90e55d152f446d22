package transition

import (
	"image/color"

	"pig-dice/render"
)

// Fade darkens the whole screen to opaque black.
type Fade struct {
	timer
	width, height int
	color         color.RGBA
}

// NewFade creates a fade lasting the given number of ticks.
func NewFade(w, h, ticks int) *Fade {
	return &Fade{
		timer:  newTimer(ticks),
		width:  w,
		height: h,
		color:  color.RGBA{0, 0, 0, 255},
	}
}

func (f *Fade) Kind() Kind { return KindFade }

// Alpha returns the overlay opacity for the current progress.
func (f *Fade) Alpha() uint8 {
	return uint8(f.Progress() * 255)
}

func (f *Fade) Draw(s render.Surface) {
	if !f.visible() {
		return
	}
	a := f.Alpha()
	// color.RGBA is premultiplied
	c := color.RGBA{
		R: uint8(uint16(f.color.R) * uint16(a) / 255),
		G: uint8(uint16(f.color.G) * uint16(a) / 255),
		B: uint8(uint16(f.color.B) * uint16(a) / 255),
		A: a,
	}
	s.FillRect(0, 0, float64(f.width), float64(f.height), c)
}

package transition

import (
	"image/color"

	"pig-dice/render"
)

// VerticalSplit closes two panels from the left and right edges until they
// meet at the vertical centre line.
type VerticalSplit struct {
	timer
	width, height int
	color         color.Color
}

// NewVerticalSplit creates a split lasting the given number of ticks.
func NewVerticalSplit(w, h, ticks int) *VerticalSplit {
	return &VerticalSplit{
		timer:  newTimer(ticks),
		width:  w,
		height: h,
		color:  color.Black,
	}
}

func (v *VerticalSplit) Kind() Kind { return KindVerticalSplit }

// PanelWidth returns how far each panel has travelled from its edge.
func (v *VerticalSplit) PanelWidth() float64 {
	return v.Progress() * float64(v.width) / 2
}

func (v *VerticalSplit) Draw(s render.Surface) {
	if !v.visible() {
		return
	}
	pw := v.PanelWidth()
	h := float64(v.height)
	s.FillRect(0, 0, pw, h, v.color)
	s.FillRect(float64(v.width)-pw, 0, pw, h, v.color)
}

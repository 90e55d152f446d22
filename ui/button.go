package ui

import (
	"image"
	"image/color"

	"pig-dice/render"
)

// ButtonState is the visual/interaction state of a Button.
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonHovered
	ButtonPressed
)

var disabledShade = color.RGBA{140, 140, 140, 140}

// Button is a clickable image. It fires a click when a press that began
// inside the button is released inside it.
type Button struct {
	x, y     float64
	normal   render.Image
	pressed  render.Image
	state    ButtonState
	disabled bool
	clicked  bool
}

// NewButton creates a button from its normal and pressed images.
func NewButton(normal, pressed render.Image) *Button {
	return &Button{normal: normal, pressed: pressed}
}

// NewButtonAt creates a button at the given position.
func NewButtonAt(x, y float64, normal, pressed render.Image) *Button {
	b := NewButton(normal, pressed)
	b.SetPosition(x, y)
	return b
}

func (b *Button) SetPosition(x, y float64) { b.x, b.y = x, y }
func (b *Button) X() float64 { return b.x }
func (b *Button) Y() float64 { return b.y }
func (b *Button) State() ButtonState { return b.state }
func (b *Button) Disabled() bool { return b.disabled }

// Width returns the width of the normal image.
func (b *Button) Width() float64 {
	w, _ := render.Size(b.normal)
	return float64(w)
}

// Height returns the height of the normal image.
func (b *Button) Height() float64 {
	_, h := render.Size(b.normal)
	return float64(h)
}

// SetDisabled enables or disables the button. A disabled button ignores input
// and drops any pending click.
func (b *Button) SetDisabled(disabled bool) {
	b.disabled = disabled
	if disabled {
		b.state = ButtonIdle
		b.clicked = false
	}
}

// Contains reports whether pt lies inside the button.
func (b *Button) Contains(pt image.Point) bool {
	fx, fy := float64(pt.X), float64(pt.Y)
	return fx >= b.x && fx < b.x+b.Width() && fy >= b.y && fy < b.y+b.Height()
}

// Update advances the idle → hovered → pressed → released state machine.
func (b *Button) Update(p Pointer) {
	if b.disabled {
		return
	}

	press, hasPress := p.PressedPoint()
	release, hasRelease := p.ReleasedPoint()

	switch {
	case hasPress && hasRelease && b.Contains(press):
		if b.Contains(release) {
			b.clicked = true
		}
		// The press belonged to this button; consume it either way.
		p.ClearPressed()
		p.ClearReleased()
		b.state = ButtonIdle
	case hasPress && !hasRelease && b.Contains(press):
		b.state = ButtonPressed
	case b.Contains(p.Cursor()):
		b.state = ButtonHovered
	default:
		b.state = ButtonIdle
	}
}

// Clicked reports a pending click and consumes it.
func (b *Button) Clicked() bool {
	c := b.clicked
	b.clicked = false
	return c
}

// Draw draws the pressed image while hovered or pressed, the normal one
// otherwise. Disabled buttons are washed out.
func (b *Button) Draw(s render.Surface) {
	img := b.normal
	if b.state != ButtonIdle && b.pressed != nil {
		img = b.pressed
	}
	s.DrawImage(img, b.x, b.y)
	if b.disabled {
		s.FillRect(b.x, b.y, b.Width(), b.Height(), disabledShade)
	}
}

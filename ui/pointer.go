package ui

import "image"

// Pointer is the input contract screens poll each tick. Press and release
// points persist until a newer press or an explicit clear, so a click can be
// recognised on the tick after the button came up.
type Pointer interface {
	Cursor() image.Point
	PressedPoint() (image.Point, bool)
	ReleasedPoint() (image.Point, bool)
	ClearPressed()
	ClearReleased()
}

// PointerState is a Pointer whose points are set explicitly. input.Mouse feeds
// one from ebiten every tick; tests drive one directly.
type PointerState struct {
	cursor   image.Point
	pressed  *image.Point
	released *image.Point
}

// Move sets the cursor position.
func (p *PointerState) Move(pt image.Point) {
	p.cursor = pt
}

// Press records a button press at pt and forgets any earlier release.
func (p *PointerState) Press(pt image.Point) {
	p.cursor = pt
	p.pressed = &pt
	p.released = nil
}

// Release records a button release at pt.
func (p *PointerState) Release(pt image.Point) {
	p.cursor = pt
	p.released = &pt
}

// Click presses and releases at pt.
func (p *PointerState) Click(pt image.Point) {
	p.Press(pt)
	p.Release(pt)
}

func (p *PointerState) Cursor() image.Point { return p.cursor }

func (p *PointerState) PressedPoint() (image.Point, bool) {
	if p.pressed == nil {
		return image.Point{}, false
	}
	return *p.pressed, true
}

func (p *PointerState) ReleasedPoint() (image.Point, bool) {
	if p.released == nil {
		return image.Point{}, false
	}
	return *p.released, true
}

func (p *PointerState) ClearPressed() { p.pressed = nil }
func (p *PointerState) ClearReleased() { p.released = nil }

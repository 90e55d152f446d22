package input

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pig-dice/ui"
)

// Mouse feeds the left mouse button into a ui.PointerState once per tick.
type Mouse struct {
	ui.PointerState
}

// NewMouse creates a mouse with no recorded press or release.
func NewMouse() *Mouse {
	return &Mouse{}
}

// Poll records this tick's cursor position and any left-button press or release.
func (m *Mouse) Poll() {
	x, y := ebiten.CursorPosition()
	pt := image.Pt(x, y)
	m.Move(pt)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.Press(pt)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		m.Release(pt)
	}
}

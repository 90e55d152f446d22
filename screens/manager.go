package screens

import (
	"fmt"

	"pig-dice/render"
)

// Manager owns the one active screen. Changing state builds a brand-new
// screen and drops the old one with everything it held; there is no stack
// or history.
type Manager struct {
	ctx     *Context
	current Screen
}

// NewManager creates a manager showing the main menu.
func NewManager(ctx *Context) *Manager {
	m := &Manager{ctx: ctx.withDefaults()}
	m.ChangeState(KindMainMenu)
	return m
}

// ChangeState replaces the active screen with a fresh screen of the given kind.
func (m *Manager) ChangeState(kind Kind) {
	var next Screen
	switch kind {
	case KindMainMenu:
		next = NewMainMenuScreen(m.ctx)
	case KindPlay:
		next = NewPlayScreen(m.ctx)
	case KindRules:
		next = NewRulesScreen(m.ctx)
	case KindOptions:
		next = NewOptionsScreen(m.ctx)
	default:
		panic(fmt.Sprintf("screens: cannot change to %v", kind))
	}

	// Stale clicks must not leak into the new screen.
	m.ctx.Pointer.ClearPressed()
	m.ctx.Pointer.ClearReleased()

	from := KindNone
	if m.current != nil {
		from = m.current.Kind()
	}
	m.current = next
	m.ctx.Logger.Debug("screen changed", "from", from, "to", kind)
}

// Current returns the active screen.
func (m *Manager) Current() Screen {
	return m.current
}

// Update updates the active screen and performs any change it asks for.
func (m *Manager) Update() error {
	next, err := m.current.Update()
	if err != nil {
		return err
	}

	// A completed click is offered to the screen for one tick only.
	if _, released := m.ctx.Pointer.ReleasedPoint(); released {
		m.ctx.Pointer.ClearPressed()
		m.ctx.Pointer.ClearReleased()
	}
	if next != KindNone {
		m.ChangeState(next)
	}
	return nil
}

// Draw draws the active screen.
func (m *Manager) Draw(s render.Surface) {
	m.current.Draw(s)
}

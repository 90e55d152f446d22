package screens

import (
	"pig-dice/render"
	"pig-dice/transition"
)

// BaseScreen provides the transition gate shared by all screens. A button
// action requests a change, which starts the screen's effect; input is frozen
// while the effect runs and the change is handed to the Manager once it is done.
type BaseScreen struct {
	ctx    *Context
	kind   Kind
	effect transition.Effect
	next   Kind
}

// NewBaseScreen creates a base screen using the given effect kind
func NewBaseScreen(ctx *Context, kind Kind, effect transition.Kind) *BaseScreen {
	return &BaseScreen{
		ctx:    ctx,
		kind:   kind,
		effect: transition.New(effect, ctx.Width, ctx.Height),
	}
}

// Kind implements the Screen interface
func (b *BaseScreen) Kind() Kind {
	return b.kind
}

// Effect returns the screen's transition effect
func (b *BaseScreen) Effect() transition.Effect {
	return b.effect
}

// Pending returns the screen a started transition leads to, or KindNone
func (b *BaseScreen) Pending() Kind {
	return b.next
}

// request starts a transition toward next. Only one transition may be in
// flight; later requests are ignored.
func (b *BaseScreen) request(next Kind) bool {
	if b.next != KindNone {
		return false
	}
	b.next = next
	b.effect.Start()
	b.ctx.Sounds.PlayClick()
	return true
}

// advance must run first in every Update. frozen means the screen must not
// process input this tick; next is set once the effect has finished.
func (b *BaseScreen) advance() (next Kind, frozen bool) {
	b.effect.Update()
	if b.effect.Running() {
		return KindNone, true
	}
	if b.effect.Done() && b.next != KindNone {
		return b.next, true
	}
	return KindNone, false
}

func (b *BaseScreen) drawTransition(s render.Surface) {
	b.effect.Draw(s)
}

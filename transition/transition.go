// Package transition implements the timed screen effects that gate screen changes.
//
// Every effect follows the same lifecycle: idle → running → done, and back to
// running on the next Start. Progress advances only through Update, one tick at
// a time, so Done can never be observed before the full duration has elapsed.
package transition

import (
	"fmt"

	"pig-dice/render"
)

// Kind selects the visual of an effect.
type Kind int

const (
	KindFade Kind = iota
	KindVerticalSplit
)

func (k Kind) String() string {
	switch k {
	case KindFade:
		return "fade"
	case KindVerticalSplit:
		return "vertical-split"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Default durations in ticks
const (
	FadeTicks  = 30
	SplitTicks = 24
)

// Effect is a timed overlay polled by its owning screen every tick.
type Effect interface {
	Kind() Kind
	Start()
	Update()
	Running() bool
	Done() bool
	// Progress is in [0,1].
	Progress() float64
	Draw(s render.Surface)
}

// New creates an effect of the given kind covering a w×h screen.
func New(kind Kind, w, h int) Effect {
	switch kind {
	case KindFade:
		return NewFade(w, h, FadeTicks)
	case KindVerticalSplit:
		return NewVerticalSplit(w, h, SplitTicks)
	default:
		panic(fmt.Sprintf("transition: unknown kind %v", kind))
	}
}

// timer carries the lifecycle shared by all effects.
type timer struct {
	duration int
	elapsed  int
	running  bool
	done     bool
}

func newTimer(duration int) timer {
	if duration < 1 {
		duration = 1
	}
	return timer{duration: duration}
}

func (t *timer) Start() {
	t.elapsed = 0
	t.running = true
	t.done = false
}

func (t *timer) Update() {
	if !t.running {
		return
	}
	t.elapsed++
	if t.elapsed >= t.duration {
		t.running = false
		t.done = true
	}
}

func (t *timer) Running() bool { return t.running }
func (t *timer) Done() bool { return t.done }

func (t *timer) Progress() float64 {
	if t.done {
		return 1
	}
	return float64(t.elapsed) / float64(t.duration)
}

// visible reports whether the effect should be drawn at all.
func (t *timer) visible() bool {
	return t.running || t.done
}

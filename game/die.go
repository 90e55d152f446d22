package game

import "fmt"

const (
	MinFace = 1
	MaxFace = 6

	// A rolled one is re-rolled into [2,6] this percentage of the time.
	modifierPercentage = 7
)

// Die is a single six-sided die.
type Die struct {
	src   Source
	value int
}

// NewDie creates a die showing an initial roll.
func NewDie(src Source) *Die {
	d := &Die{src: src}
	d.Roll()
	return d
}

// Value returns the face shown by the most recent roll.
func (d *Die) Value() int {
	return d.value
}

// Roll draws a new face. A one has a 7% chance of being bumped by [1,5],
// so a modified roll always lands in [2,6].
func (d *Die) Roll() int {
	v := between(d.src, MinFace, MaxFace)
	if v == MinFace {
		if between(d.src, 0, 99) < modifierPercentage {
			v += between(d.src, MinFace, MaxFace-1)
		}
	}
	if v < MinFace || v > MaxFace {
		panic(fmt.Sprintf("game: die value %d out of range", v))
	}
	d.value = v
	return v
}

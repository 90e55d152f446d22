package ui

import (
	"fmt"

	"pig-dice/render"
)

// Random picks an index in [0, n). game.Source satisfies it.
type Random interface {
	IntN(n int) int
}

// Bounce parameters
const (
	dieSpeed      = 15.0
	dieGravity    = 5.0
	dieDamping    = 0.75
	dieMaxBounces = 6
)

// DieSprite draws a die face and animates a roll as a bouncing drop onto a
// floor line. The face shown while bouncing is random; the settled face is set
// by the caller from the engine.
type DieSprite struct {
	faces   []render.Image
	current int
	x, y    float64
	floorY  float64
	dy      float64
	bounces int
	rolling bool
	rng     Random
}

// NewDieSprite creates a sprite resting on floorY (the y of its bottom edge).
func NewDieSprite(faces []render.Image, x, floorY float64, rng Random) *DieSprite {
	if len(faces) == 0 {
		panic("ui: die sprite needs at least one face")
	}
	d := &DieSprite{
		faces: faces,
		x:     x,
		rng:   rng,
		dy:    dieSpeed,
	}
	d.floorY = floorY - d.Height()
	d.y = d.floorY
	return d
}

func (d *DieSprite) X() float64 { return d.x }
func (d *DieSprite) Y() float64 { return d.y }
func (d *DieSprite) Rolling() bool { return d.rolling }
func (d *DieSprite) Face() int { return d.current }
func (d *DieSprite) Resting() float64 { return d.floorY }

func (d *DieSprite) Width() float64 {
	w, _ := render.Size(d.faces[0])
	return float64(w)
}

func (d *DieSprite) Height() float64 {
	_, h := render.Size(d.faces[0])
	return float64(h)
}

// SetFace shows the face at index (value-1).
func (d *DieSprite) SetFace(index int) {
	if index < 0 || index >= len(d.faces) {
		panic(fmt.Sprintf("ui: die face index %d out of range", index))
	}
	d.current = index
}

// StartRoll lifts the die above the top edge and starts the bounce.
func (d *DieSprite) StartRoll() {
	d.y = -d.Height()
	d.dy = dieSpeed
	d.bounces = 0
	d.rolling = true
}

// Update advances the bounce by one tick.
func (d *DieSprite) Update() {
	if !d.rolling {
		return
	}
	if d.y+d.dy > d.floorY {
		if d.bounces >= dieMaxBounces {
			d.dy = dieSpeed
			d.y = d.floorY
			d.bounces = 0
			d.rolling = false
			return
		}
		d.dy = -d.dy * dieDamping
		d.bounces++
		d.current = d.rng.IntN(len(d.faces))
		d.y += d.dy
		return
	}
	d.y += d.dy
	d.dy += dieGravity
}

func (d *DieSprite) Draw(s render.Surface) {
	s.DrawImage(d.faces[d.current], d.x, d.y)
}

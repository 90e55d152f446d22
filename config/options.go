package config

import (
	"fmt"
	"image/color"
	"strings"
)

// DiceColor selects which row of the dice sheet is used for die faces.
type DiceColor int

const (
	DiceWhite DiceColor = iota
	DiceBlack
	DiceRed
)

// DiceColors lists the selectable colours in the order the Options screen cycles them.
var DiceColors = []DiceColor{DiceWhite, DiceBlack, DiceRed}

// TargetScores lists the selectable target scores in the order the Options screen cycles them.
var TargetScores = []int{100, 200}

const (
	DefaultDiceColor   = DiceWhite
	DefaultTargetScore = 100
)

func (c DiceColor) String() string {
	switch c {
	case DiceWhite:
		return "white"
	case DiceBlack:
		return "black"
	case DiceRed:
		return "red"
	default:
		return fmt.Sprintf("DiceColor(%d)", int(c))
	}
}

// RGBA returns the body colour used when drawing a die of this colour.
func (c DiceColor) RGBA() color.RGBA {
	switch c {
	case DiceBlack:
		return color.RGBA{30, 30, 30, 255}
	case DiceRed:
		return color.RGBA{200, 30, 30, 255}
	default:
		return color.RGBA{250, 250, 250, 255}
	}
}

// UnmarshalText lets the env parser read PIG_DICE_COLOR.
func (c *DiceColor) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "white", "":
		*c = DiceWhite
	case "black":
		*c = DiceBlack
	case "red":
		*c = DiceRed
	default:
		return fmt.Errorf("invalid dice color %q", string(text))
	}
	return nil
}

// Options is the process-wide configuration store. It is created once in main,
// read when a Play screen and its engine are constructed, and written only by
// the Options screen. The game loop is single-threaded so no locking is needed.
type Options struct {
	diceColor   DiceColor
	targetScore int
}

// NewOptions creates the store with the given initial values.
func NewOptions(diceColor DiceColor, targetScore int) *Options {
	if targetScore <= 0 {
		targetScore = DefaultTargetScore
	}
	return &Options{
		diceColor:   diceColor,
		targetScore: targetScore,
	}
}

// DefaultOptions returns white dice and a target of 100.
func DefaultOptions() *Options {
	return NewOptions(DefaultDiceColor, DefaultTargetScore)
}

func (o *Options) DiceColor() DiceColor { return o.diceColor }
func (o *Options) TargetScore() int { return o.targetScore }

func (o *Options) SetDiceColor(c DiceColor) { o.diceColor = c }

func (o *Options) SetTargetScore(score int) {
	if score > 0 {
		o.targetScore = score
	}
}

// DiceColorIndex returns the position of the current colour in DiceColors, or 0.
func (o *Options) DiceColorIndex() int {
	for i, c := range DiceColors {
		if c == o.diceColor {
			return i
		}
	}
	return 0
}

// TargetScoreIndex returns the position of the current target in TargetScores, or 0.
func (o *Options) TargetScoreIndex() int {
	for i, s := range TargetScores {
		if s == o.targetScore {
			return i
		}
	}
	return 0
}

package screens

import (
	"fmt"
	"log/slog"

	"pig-dice/assets"
	"pig-dice/config"
	"pig-dice/game"
	"pig-dice/render"
	"pig-dice/systems"
	"pig-dice/ui"
)

// Kind names one of the application's screens.
type Kind int

const (
	// KindNone means "stay on the current screen".
	KindNone Kind = iota
	KindMainMenu
	KindPlay
	KindRules
	KindOptions
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMainMenu:
		return "main-menu"
	case KindPlay:
		return "play"
	case KindRules:
		return "rules"
	case KindOptions:
		return "options"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Screen represents the single active screen
type Screen interface {
	Kind() Kind
	// Update advances the screen by one tick. It returns the screen to change
	// to, or KindNone to stay. An error terminates the game loop.
	Update() (Kind, error)
	// Draw draws the screen
	Draw(s render.Surface)
}

// Sounds plays the short effects screens trigger.
type Sounds interface {
	PlayClick()
	PlayRoll()
	PlayPig()
	PlayWin()
}

// RulesText provides the lines shown on the Rules screen.
type RulesText interface {
	Lines() []string
}

// Context carries the collaborators every screen is built from. It is
// created once by the game and shared by reference; screens never store
// game state in it.
type Context struct {
	Assets   *assets.Library
	Options  *config.Options
	Pointer  ui.Pointer
	Rules    RulesText
	Sounds   Sounds
	Random   game.Source
	DebugLog *systems.MessageLog
	Logger   *slog.Logger
	Width    int
	Height   int
}

// withDefaults fills in optional collaborators.
func (c *Context) withDefaults() *Context {
	if c.Sounds == nil {
		c.Sounds = nopSounds{}
	}
	if c.Random == nil {
		c.Random = game.NewSource(0)
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.DebugLog == nil {
		c.DebugLog = systems.NewMessageLog(200)
	}
	if c.Rules == nil {
		c.Rules = assets.DefaultRules()
	}
	if c.Width == 0 || c.Height == 0 {
		c.Width, c.Height = config.GetScreenDimensions()
	}
	return c
}

type nopSounds struct{}

func (nopSounds) PlayClick() {}
func (nopSounds) PlayRoll() {}
func (nopSounds) PlayPig() {}
func (nopSounds) PlayWin() {}

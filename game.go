package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pig-dice/config"
	"pig-dice/input"
	"pig-dice/render"
	"pig-dice/render/ebitenrender"
	"pig-dice/screens"
)

// Game implements ebiten.Game interface.
type Game struct {
	manager *screens.Manager
	debug   *screens.DebugScreen
	mouse   *input.Mouse
	surface *ebitenrender.Surface
}

// NewGame creates a new game instance showing the main menu
func NewGame(ctx *screens.Context, mouse *input.Mouse) *Game {
	return &Game{
		manager: screens.NewManager(ctx),
		debug:   screens.NewDebugScreen(ctx.DebugLog),
		mouse:   mouse,
		surface: ebitenrender.NewSurface(),
	}
}

// Update updates the game state.
func (g *Game) Update() error {
	g.mouse.Poll()

	// Toggle debug message window with F1 key
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.Toggle()
	}
	if g.debug.Visible() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.debug.Toggle()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
			g.debug.ScrollUp()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
			g.debug.ScrollDown()
		}
		// The game is paused while the window is open.
		g.mouse.ClearPressed()
		g.mouse.ClearReleased()
		return nil
	}

	return g.manager.Update()
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.surface.Target(screen)
	g.manager.Draw(s)
	g.debug.Draw(s)

	if g.debug.Visible() {
		s.DrawText(fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), 4, 4, render.FontSmall, color.RGBA{0, 160, 0, 255})
	}
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

package screens

import (
	"image/color"

	"pig-dice/assets"
	"pig-dice/render"
	"pig-dice/transition"
	"pig-dice/ui"
)

// RulesScreen lists the rules of the game
type RulesScreen struct {
	*BaseScreen
	lines   []string
	menu    *ui.Button
	newGame *ui.Button
}

// NewRulesScreen creates a new rules screen
func NewRulesScreen(ctx *Context) *RulesScreen {
	s := &RulesScreen{
		BaseScreen: NewBaseScreen(ctx, KindRules, transition.KindFade),
		lines:      ctx.Rules.Lines(),
		menu:       ui.NewButton(ctx.Assets.ButtonPair(assets.ButtonMenu)),
		newGame:    ui.NewButton(ctx.Assets.ButtonPair(assets.ButtonNewGame)),
	}
	const margin = 20
	s.menu.SetPosition(margin, float64(ctx.Height)-s.menu.Height()-margin)
	s.newGame.SetPosition(float64(ctx.Width)-s.newGame.Width()-margin, float64(ctx.Height)-s.newGame.Height()-margin)
	return s
}

func (s *RulesScreen) Update() (Kind, error) {
	if next, frozen := s.advance(); frozen {
		return next, nil
	}

	s.menu.Update(s.ctx.Pointer)
	s.newGame.Update(s.ctx.Pointer)

	switch {
	case s.menu.Clicked():
		s.request(KindMainMenu)
	case s.newGame.Clicked():
		s.request(KindPlay)
	}
	return KindNone, nil
}

func (s *RulesScreen) Draw(screen render.Surface) {
	screen.Fill(color.RGBA{250, 250, 250, 255})

	const heading = "RULES"
	screen.DrawText(heading, render.CenteredX(screen, heading, render.FontHeading, 0, float64(s.ctx.Width)), 60, render.FontHeading, color.Black)

	lineHeight := float64(render.FontBody.Pixels()) + 8
	y := 150.0
	for _, line := range s.lines {
		screen.DrawText(line, 40, y, render.FontBody, color.Black)
		y += lineHeight
	}

	s.menu.Draw(screen)
	s.newGame.Draw(screen)
	s.drawTransition(screen)
}

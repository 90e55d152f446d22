package screens

import (
	"image/color"

	"pig-dice/assets"
	"pig-dice/render"
	"pig-dice/transition"
	"pig-dice/ui"
)

const (
	gameTitle   = "PIG DICE"
	gameAuthor  = "A two player game of nerve"
	gameVersion = "v1.2.0"
)

// MainMenuScreen is the first screen shown
type MainMenuScreen struct {
	*BaseScreen
	newGame *ui.Button
	rules   *ui.Button
	options *ui.Button
}

// NewMainMenuScreen creates a new main menu
func NewMainMenuScreen(ctx *Context) *MainMenuScreen {
	s := &MainMenuScreen{
		BaseScreen: NewBaseScreen(ctx, KindMainMenu, transition.KindFade),
		newGame:    ui.NewButton(ctx.Assets.ButtonPair(assets.ButtonNewGame)),
		rules:      ui.NewButton(ctx.Assets.ButtonPair(assets.ButtonRules)),
		options:    ui.NewButton(ctx.Assets.ButtonPair(assets.ButtonOptions)),
	}

	const gap = 25
	x := float64(ctx.Width)/2 - s.newGame.Width()/2
	y := float64(ctx.Height)/2 - s.newGame.Height()
	s.newGame.SetPosition(x, y)
	s.rules.SetPosition(x, y+s.newGame.Height()+gap)
	s.options.SetPosition(x, y+2*(s.newGame.Height()+gap))
	return s
}

// Update handles the menu buttons
func (s *MainMenuScreen) Update() (Kind, error) {
	if next, frozen := s.advance(); frozen {
		return next, nil
	}

	p := s.ctx.Pointer
	s.newGame.Update(p)
	s.rules.Update(p)
	s.options.Update(p)

	switch {
	case s.newGame.Clicked():
		s.request(KindPlay)
	case s.rules.Clicked():
		s.request(KindRules)
	case s.options.Clicked():
		s.request(KindOptions)
	}
	return KindNone, nil
}

// Draw renders the menu
func (s *MainMenuScreen) Draw(screen render.Surface) {
	screen.Fill(color.RGBA{250, 250, 250, 255})
	w := float64(s.ctx.Width)

	screen.DrawText(gameTitle, render.CenteredX(screen, gameTitle, render.FontTitle, 0, w), float64(s.ctx.Height)/6, render.FontTitle, color.RGBA{200, 30, 30, 255})
	screen.DrawText(gameAuthor, render.CenteredX(screen, gameAuthor, render.FontBody, 0, w), float64(s.ctx.Height)/6+90, render.FontBody, color.Black)

	s.newGame.Draw(screen)
	s.rules.Draw(screen)
	s.options.Draw(screen)

	vw := screen.TextWidth(gameVersion, render.FontSmall)
	screen.DrawText(gameVersion, w-vw-10, float64(s.ctx.Height)-float64(render.FontSmall.Pixels())-10, render.FontSmall, color.Gray{120})

	s.drawTransition(screen)
}

package screens

import (
	"image/color"

	"pig-dice/assets"
	"pig-dice/config"
	"pig-dice/render"
	"pig-dice/transition"
	"pig-dice/ui"
)

// OptionsScreen lets the players pick the dice colour and target score.
// Every change is written to the shared options straight away.
type OptionsScreen struct {
	*BaseScreen
	colorIcons  []*ui.Button
	targetIcons []*ui.Button
	menu        *ui.Button
	newGame     *ui.Button
	labelX      float64
	colorY      float64
	targetY     float64
}

// NewOptionsScreen creates a new options screen
func NewOptionsScreen(ctx *Context) *OptionsScreen {
	s := &OptionsScreen{
		BaseScreen: NewBaseScreen(ctx, KindOptions, transition.KindFade),
		menu:       ui.NewButton(ctx.Assets.ButtonPair(assets.ButtonMenu)),
		newGame:    ui.NewButton(ctx.Assets.ButtonPair(assets.ButtonNewGame)),
		labelX:     float64(ctx.Width)/2 - 250,
		colorY:     float64(ctx.Height) / 3,
	}
	s.targetY = s.colorY + 100

	iconX := float64(ctx.Width)/2 + 50
	for _, c := range config.DiceColors {
		normal, pressed := ctx.Assets.ColorOption(c)
		s.colorIcons = append(s.colorIcons, ui.NewButtonAt(iconX, s.colorY, normal, pressed))
	}
	for i := range config.TargetScores {
		normal, pressed := ctx.Assets.TargetOption(i)
		s.targetIcons = append(s.targetIcons, ui.NewButtonAt(iconX, s.targetY, normal, pressed))
	}

	const margin = 20
	s.menu.SetPosition(margin, float64(ctx.Height)-s.menu.Height()-margin)
	s.newGame.SetPosition(float64(ctx.Width)-s.newGame.Width()-margin, float64(ctx.Height)-s.newGame.Height()-margin)
	return s
}

func (s *OptionsScreen) colorIcon() *ui.Button {
	return s.colorIcons[s.ctx.Options.DiceColorIndex()]
}

func (s *OptionsScreen) targetIcon() *ui.Button {
	return s.targetIcons[s.ctx.Options.TargetScoreIndex()]
}

func (s *OptionsScreen) Update() (Kind, error) {
	if next, frozen := s.advance(); frozen {
		return next, nil
	}

	p := s.ctx.Pointer
	s.menu.Update(p)
	s.newGame.Update(p)
	colorIcon, targetIcon := s.colorIcon(), s.targetIcon()
	colorIcon.Update(p)
	targetIcon.Update(p)

	switch {
	case s.menu.Clicked():
		s.request(KindMainMenu)
	case s.newGame.Clicked():
		s.request(KindPlay)
	case colorIcon.Clicked():
		s.cycleColor()
	case targetIcon.Clicked():
		s.cycleTarget()
	}
	return KindNone, nil
}

func (s *OptionsScreen) cycleColor() {
	next := config.DiceColors[(s.ctx.Options.DiceColorIndex()+1)%len(config.DiceColors)]
	s.ctx.Options.SetDiceColor(next)
	s.ctx.Sounds.PlayClick()
	s.ctx.Logger.Debug("dice colour changed", "color", next)
}

func (s *OptionsScreen) cycleTarget() {
	next := config.TargetScores[(s.ctx.Options.TargetScoreIndex()+1)%len(config.TargetScores)]
	s.ctx.Options.SetTargetScore(next)
	s.ctx.Sounds.PlayClick()
	s.ctx.Logger.Debug("target score changed", "target", next)
}

func (s *OptionsScreen) Draw(screen render.Surface) {
	screen.Fill(color.RGBA{250, 250, 250, 255})

	const heading = "OPTIONS"
	screen.DrawText(heading, render.CenteredX(screen, heading, render.FontHeading, 0, float64(s.ctx.Width)), 60, render.FontHeading, color.Black)

	screen.DrawText("Dice colour:", s.labelX, s.colorY, render.FontBody, color.Black)
	screen.DrawText("Target score:", s.labelX, s.targetY, render.FontBody, color.Black)

	colorIcon := s.colorIcon()
	colorIcon.Draw(screen)
	s.targetIcon().Draw(screen)

	// Preview of the chosen dice, showing a five.
	faces := s.ctx.Assets.Dice(s.ctx.Options.DiceColor())
	screen.DrawImage(faces[4], colorIcon.X()+colorIcon.Width()+40, s.colorY-float64(config.DieSize)/3)

	s.menu.Draw(screen)
	s.newGame.Draw(screen)
	s.drawTransition(screen)
}

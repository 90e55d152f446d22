package screens

import (
	"fmt"
	"image/color"
	"log/slog"

	"pig-dice/assets"
	"pig-dice/events"
	"pig-dice/game"
	"pig-dice/render"
	"pig-dice/systems"
	"pig-dice/transition"
	"pig-dice/ui"
)

// phase is the roll sequence inside a game
type phase int

const (
	phaseReady phase = iota
	phaseRolling
	phaseOver
)

func (p phase) String() string {
	switch p {
	case phaseReady:
		return "ready"
	case phaseRolling:
		return "rolling"
	case phaseOver:
		return "over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

const feedLines = 5

var (
	playBackground   = color.RGBA{250, 250, 250, 255}
	activeBackground = color.RGBA{228, 228, 228, 255}
	markerColor      = color.RGBA{200, 30, 30, 255}
)

// PlayScreen runs one game. A fresh engine is built for every PlayScreen, so
// "New Game" simply asks the manager for another one.
type PlayScreen struct {
	*BaseScreen
	engine *game.Engine
	phase  phase
	log    *slog.Logger
	feed   *systems.MessageLog

	die1, die2 *ui.DieSprite

	menu    *ui.Button
	newGame *ui.Button
	roll    *ui.Button
	stop    *ui.Button
}

// NewPlayScreen creates a play screen with a new game using the current options
func NewPlayScreen(ctx *Context) *PlayScreen {
	bus := events.NewBus()
	engine := game.NewEngine(ctx.Options.TargetScore(),
		game.WithSource(ctx.Random),
		game.WithEvents(bus),
	)

	s := &PlayScreen{
		BaseScreen: NewBaseScreen(ctx, KindPlay, transition.KindVerticalSplit),
		engine:     engine,
		phase:      phaseReady,
		log:        ctx.Logger.With("game_id", engine.ID().String()),
		feed:       systems.NewMessageLog(50),
		menu:       ui.NewButton(ctx.Assets.ButtonPair(assets.ButtonMenu)),
		newGame:    ui.NewButton(ctx.Assets.ButtonPair(assets.ButtonNewGame)),
		roll:       ui.NewButton(ctx.Assets.ButtonPair(assets.ButtonRoll)),
		stop:       ui.NewButton(ctx.Assets.ButtonPair(assets.ButtonStop)),
	}
	bus.SubscribeAll(s.onEvent)

	w, h := float64(ctx.Width), float64(ctx.Height)
	s.menu.SetPosition(0, 0)
	s.newGame.SetPosition(w-s.newGame.Width(), 0)
	s.roll.SetPosition(w/2-s.roll.Width()/2, h-s.roll.Height()-100)
	s.stop.SetPosition(w/2-s.stop.Width()/2, h-s.stop.Height()-25)

	faces := ctx.Assets.Dice(ctx.Options.DiceColor())
	dieW, _ := render.Size(faces[0])
	s.die1 = ui.NewDieSprite(faces, w/2-float64(dieW)/2-75, h/2, ctx.Random)
	s.die2 = ui.NewDieSprite(faces, w/2-float64(dieW)/2+75, h/2, ctx.Random)
	s.showDice()

	s.log.Info("game started", "target", engine.TargetScore(), "color", ctx.Options.DiceColor())
	s.feed.AddTyped(fmt.Sprintf("First to %d wins. %s starts.", engine.TargetScore(), engine.CurrentPlayer().Name()), systems.MessageTypeNormal)
	return s
}

// Engine returns the game being played
func (s *PlayScreen) Engine() *game.Engine {
	return s.engine
}

// Feed returns the log of what happened in this game
func (s *PlayScreen) Feed() *systems.MessageLog {
	return s.feed
}

func (s *PlayScreen) Update() (Kind, error) {
	if next, frozen := s.advance(); frozen {
		return next, nil
	}

	p := s.ctx.Pointer
	s.menu.Update(p)
	s.newGame.Update(p)
	s.roll.Update(p)
	s.stop.Update(p)

	switch {
	case s.menu.Clicked():
		s.request(KindMainMenu)
		return KindNone, nil
	case s.newGame.Clicked():
		s.request(KindPlay)
		return KindNone, nil
	case s.roll.Clicked():
		s.startRoll()
	case s.stop.Clicked():
		s.bank()
	}

	s.updateDice()
	return KindNone, nil
}

func (s *PlayScreen) setPhase(p phase) {
	s.phase = p
	s.roll.SetDisabled(p != phaseReady)
	s.stop.SetDisabled(p != phaseReady)
}

func (s *PlayScreen) startRoll() {
	if s.phase != phaseReady {
		return
	}
	s.setPhase(phaseRolling)
	s.die1.StartRoll()
	s.die2.StartRoll()
	s.ctx.Sounds.PlayRoll()
}

// updateDice moves the dice and, once both have settled, lets the engine roll
// and score the result.
func (s *PlayScreen) updateDice() {
	if s.phase != phaseRolling {
		return
	}
	s.die1.Update()
	s.die2.Update()
	if s.die1.Rolling() || s.die2.Rolling() {
		return
	}

	s.engine.Roll()
	s.showDice()
	if s.engine.EvaluateRoll() != game.NoPig {
		s.engine.NextPlayer()
	}
	s.setPhase(phaseReady)
}

func (s *PlayScreen) bank() {
	if s.phase != phaseReady {
		return
	}
	s.ctx.Sounds.PlayClick()
	s.engine.DoneRolling()
	if s.engine.GameOver() {
		s.setPhase(phaseOver)
		return
	}
	s.engine.NextPlayer()
}

func (s *PlayScreen) showDice() {
	d1, d2 := s.engine.Dice()
	s.die1.SetFace(d1.Value() - 1)
	s.die2.SetFace(d2.Value() - 1)
}

func (s *PlayScreen) onEvent(e events.Event) {
	switch ev := e.(type) {
	case game.RolledEvent:
		s.log.Debug("rolled", "player", ev.Player.Name(), "die1", ev.Die1, "die2", ev.Die2, "turn_score", ev.TurnScore)
		s.feed.AddTyped(fmt.Sprintf("%s rolled %d + %d = %d (turn %d)", ev.Player.Name(), ev.Die1, ev.Die2, ev.Sum(), ev.TurnScore), systems.MessageTypeRoll)
	case game.BustEvent:
		s.log.Info("pig", "player", ev.Player.Name(), "busts", ev.Busts)
		s.ctx.Sounds.PlayPig()
		if ev.Busts == game.TwoPigs {
			s.feed.AddTyped(fmt.Sprintf("Two pigs! %s loses everything", ev.Player.Name()), systems.MessageTypePig)
		} else {
			s.feed.AddTyped(fmt.Sprintf("Pig! %s loses the turn", ev.Player.Name()), systems.MessageTypePig)
		}
	case game.BankedEvent:
		s.log.Info("banked", "player", ev.Player.Name(), "amount", ev.Amount, "score", ev.Score)
		s.feed.AddTyped(fmt.Sprintf("%s banks %d (total %d)", ev.Player.Name(), ev.Amount, ev.Score), systems.MessageTypeBank)
	case game.TurnChangedEvent:
		s.feed.AddTyped(fmt.Sprintf("%s to roll", ev.Player.Name()), systems.MessageTypeNormal)
	case game.WonEvent:
		s.log.Info("game won", "winner", ev.Winner.Name(), "score", ev.Score)
		s.ctx.Sounds.PlayWin()
		s.feed.AddTyped(fmt.Sprintf("%s wins with %d!", ev.Winner.Name(), ev.Score), systems.MessageTypeAlert)
	}
}

func (s *PlayScreen) Draw(screen render.Surface) {
	w, h := float64(s.ctx.Width), float64(s.ctx.Height)

	// Shade the half of the player whose turn it is
	screen.Fill(playBackground)
	activeLeft := s.engine.CurrentPlayer() == s.engine.Player1()
	if activeLeft {
		screen.FillRect(0, 0, w/2, h, activeBackground)
	} else {
		screen.FillRect(w/2, 0, w/2, h, activeBackground)
	}

	s.menu.Draw(screen)
	s.newGame.Draw(screen)
	s.roll.Draw(screen)
	s.stop.Draw(screen)
	s.die1.Draw(screen)
	s.die2.Draw(screen)

	s.drawPlayer(screen, s.engine.Player1(), 0, activeLeft)
	s.drawPlayer(screen, s.engine.Player2(), w/2, !activeLeft)

	target := fmt.Sprintf("Target %d", s.engine.TargetScore())
	screen.DrawText(target, render.CenteredX(screen, target, render.FontSmall, 0, w), 15, render.FontSmall, color.Gray{100})

	const current = "Current"
	turn := fmt.Sprint(s.engine.TurnScore())
	screen.DrawText(current, render.CenteredX(screen, current, render.FontHeading, 0, w), h/2+40, render.FontHeading, color.Black)
	screen.DrawText(turn, render.CenteredX(screen, turn, render.FontHeading, 0, w), h/2+90, render.FontHeading, color.Black)

	s.drawFeed(screen)
	s.drawTransition(screen)
}

func (s *PlayScreen) drawPlayer(screen render.Surface, p *game.Player, x float64, active bool) {
	half := float64(s.ctx.Width) / 2
	y := float64(s.ctx.Height) / 6

	name := p.Name()
	nameX := render.CenteredX(screen, name, render.FontHeading, x, half)
	screen.DrawText(name, nameX, y, render.FontHeading, color.Black)
	if active {
		r := float64(render.FontHeading.Pixels()) / 4
		screen.FillCircle(nameX-2*r-10, y+float64(render.FontHeading.Pixels())/2, r, markerColor)
	}

	score := fmt.Sprint(p.Score())
	screen.DrawText(score, render.CenteredX(screen, score, render.FontHeading, x, half), y+50, render.FontHeading, color.Black)

	if s.engine.Winner() == p {
		const banner = "WINNER!"
		screen.DrawText(banner, render.CenteredX(screen, banner, render.FontTitle, x, half), y+110, render.FontTitle, markerColor)
	}
}

// drawFeed lists the latest messages bottom-left, newest at the bottom.
func (s *PlayScreen) drawFeed(screen render.Surface) {
	lineHeight := float64(render.FontSmall.Pixels()) + 4
	y := float64(s.ctx.Height) - 10 - lineHeight
	for _, msg := range s.feed.RecentMessages(feedLines) {
		screen.DrawText(msg.Text, 10, y, render.FontSmall, msg.GetColor())
		y -= lineHeight
	}
}

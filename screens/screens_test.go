package screens

import (
	"image"
	"io"
	"log/slog"
	"testing"

	"pig-dice/assets"
	"pig-dice/config"
	"pig-dice/game"
	"pig-dice/render"
	"pig-dice/systems"
	"pig-dice/transition"
	"pig-dice/ui"
)

// constSource always draws the same value, so every die shows n+1.
type constSource int

func (c constSource) IntN(n int) int { return int(c) % n }

// pigSource rolls ones that never get modified.
type pigSource struct{}

func (pigSource) IntN(n int) int {
	if n == 100 {
		return 99
	}
	return 0
}

type countingSounds struct {
	clicks, rolls, pigs, wins int
}

func (c *countingSounds) PlayClick() { c.clicks++ }
func (c *countingSounds) PlayRoll() { c.rolls++ }
func (c *countingSounds) PlayPig() { c.pigs++ }
func (c *countingSounds) PlayWin() { c.wins++ }

type fixture struct {
	t       *testing.T
	ctx     *Context
	pointer *ui.PointerState
	sounds  *countingSounds
	manager *Manager
}

func newFixture(t *testing.T, src game.Source) *fixture {
	t.Helper()
	lib, err := assets.New("")
	if err != nil {
		t.Fatalf("assets: %v", err)
	}
	f := &fixture{
		t:       t,
		pointer: &ui.PointerState{},
		sounds:  &countingSounds{},
	}
	f.ctx = &Context{
		Assets:   lib,
		Options:  config.DefaultOptions(),
		Pointer:  f.pointer,
		Sounds:   f.sounds,
		Random:   src,
		DebugLog: systems.NewMessageLog(50),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Width:    config.ScreenWidth,
		Height:   config.ScreenHeight,
	}
	f.manager = NewManager(f.ctx)
	return f
}

func (f *fixture) update() {
	f.t.Helper()
	if err := f.manager.Update(); err != nil {
		f.t.Fatalf("update: %v", err)
	}
}

func (f *fixture) click(b *ui.Button) {
	f.t.Helper()
	f.pointer.Click(image.Pt(int(b.X()+b.Width()/2), int(b.Y()+b.Height()/2)))
	f.update()
}

// waitFor updates until a new screen of the given kind replaced the active
// one and reports how many updates it took.
func (f *fixture) waitFor(kind Kind) int {
	f.t.Helper()
	start := f.manager.Current()
	for i := 1; i <= 200; i++ {
		f.update()
		if cur := f.manager.Current(); cur != start && cur.Kind() == kind {
			return i
		}
	}
	f.t.Fatalf("never reached %v, still on %v", kind, f.manager.Current().Kind())
	return 0
}

func (f *fixture) play() *PlayScreen {
	f.t.Helper()
	s, ok := f.manager.Current().(*PlayScreen)
	if !ok {
		f.t.Fatalf("expected play screen, got %v", f.manager.Current().Kind())
	}
	return s
}

func (f *fixture) goToPlay() *PlayScreen {
	f.t.Helper()
	f.click(f.manager.Current().(*MainMenuScreen).newGame)
	f.waitFor(KindPlay)
	return f.play()
}

// settle runs the roll animation to the end.
func (f *fixture) settle(s *PlayScreen) {
	f.t.Helper()
	for i := 0; i < 500; i++ {
		if s.phase != phaseRolling {
			return
		}
		f.update()
	}
	f.t.Fatal("dice never settled")
}

func TestManagerStartsOnMainMenu(t *testing.T) {
	f := newFixture(t, constSource(2))
	if got := f.manager.Current().Kind(); got != KindMainMenu {
		t.Fatalf("expected main menu, got %v", got)
	}
}

func TestMainMenuNavigation(t *testing.T) {
	tests := []struct {
		name   string
		button func(*MainMenuScreen) *ui.Button
		want   Kind
	}{
		{"new game", func(s *MainMenuScreen) *ui.Button { return s.newGame }, KindPlay},
		{"rules", func(s *MainMenuScreen) *ui.Button { return s.rules }, KindRules},
		{"options", func(s *MainMenuScreen) *ui.Button { return s.options }, KindOptions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, constSource(2))
			menu := f.manager.Current().(*MainMenuScreen)
			f.click(tt.button(menu))

			if menu.Pending() != tt.want {
				t.Fatalf("expected pending %v, got %v", tt.want, menu.Pending())
			}
			if ticks := f.waitFor(tt.want); ticks != transition.FadeTicks {
				t.Fatalf("expected change after %d ticks, got %d", transition.FadeTicks, ticks)
			}
			if f.sounds.clicks != 1 {
				t.Fatalf("expected one click sound, got %d", f.sounds.clicks)
			}
		})
	}
}

func TestInputIgnoredDuringTransition(t *testing.T) {
	f := newFixture(t, constSource(2))
	menu := f.manager.Current().(*MainMenuScreen)

	f.click(menu.newGame)
	f.click(menu.rules)
	f.click(menu.newGame)

	if menu.Pending() != KindPlay {
		t.Fatalf("expected first request to win, got %v", menu.Pending())
	}
	f.waitFor(KindPlay)
	if f.sounds.clicks != 1 {
		t.Fatalf("expected a single transition, got %d clicks", f.sounds.clicks)
	}
}

func TestChangeStateClearsPointer(t *testing.T) {
	f := newFixture(t, constSource(2))
	f.pointer.Press(image.Pt(5, 5))
	f.pointer.Release(image.Pt(5, 5))

	f.manager.ChangeState(KindRules)

	if _, ok := f.pointer.PressedPoint(); ok {
		t.Fatal("press point survived the screen change")
	}
	if _, ok := f.pointer.ReleasedPoint(); ok {
		t.Fatal("release point survived the screen change")
	}
}

func TestChangeStateUnknownPanics(t *testing.T) {
	f := newFixture(t, constSource(2))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	f.manager.ChangeState(KindNone)
}

func TestPlayRollAndBank(t *testing.T) {
	f := newFixture(t, constSource(2))
	s := f.goToPlay()
	engine := s.Engine()

	f.click(s.roll)
	if s.phase != phaseRolling {
		t.Fatalf("expected rolling, got %v", s.phase)
	}
	if !s.roll.Disabled() || !s.stop.Disabled() {
		t.Fatal("roll and stop must be disabled while rolling")
	}
	if engine.TurnScore() != 0 {
		t.Fatalf("engine rolled before the dice settled: %d", engine.TurnScore())
	}

	f.settle(s)
	if s.phase != phaseReady {
		t.Fatalf("expected ready, got %v", s.phase)
	}
	if engine.TurnScore() != 6 {
		t.Fatalf("expected turn score 6, got %d", engine.TurnScore())
	}
	if s.die1.Face() != 2 || s.die2.Face() != 2 {
		t.Fatalf("dice show %d and %d, want faces of 3", s.die1.Face()+1, s.die2.Face()+1)
	}
	if f.sounds.rolls != 1 {
		t.Fatalf("expected one roll sound, got %d", f.sounds.rolls)
	}

	f.click(s.stop)
	if engine.Player1().Score() != 6 {
		t.Fatalf("expected 6 banked, got %d", engine.Player1().Score())
	}
	if engine.CurrentPlayer() != engine.Player2() {
		t.Fatal("expected the turn to pass to player 2")
	}

	texts := s.Feed().RecentMessages(3)
	if texts[2].Text != "Player 1 rolled 3 + 3 = 6 (turn 6)" {
		t.Fatalf("unexpected roll message %q", texts[2].Text)
	}
	if texts[0].Text != "Player 2 to roll" || texts[1].Text != "Player 1 banks 6 (total 6)" {
		t.Fatalf("unexpected feed %+v", texts)
	}
}

func TestPlayPigPassesTurn(t *testing.T) {
	f := newFixture(t, pigSource{})
	s := f.goToPlay()
	engine := s.Engine()

	f.click(s.roll)
	f.settle(s)

	if engine.CurrentPlayer() != engine.Player2() {
		t.Fatal("a pig must pass the turn")
	}
	if engine.TurnScore() != 0 {
		t.Fatalf("expected turn score reset, got %d", engine.TurnScore())
	}
	if f.sounds.pigs != 1 {
		t.Fatalf("expected pig sound, got %d", f.sounds.pigs)
	}
	if s.phase != phaseReady {
		t.Fatalf("expected ready for player 2, got %v", s.phase)
	}
}

func TestPlayGameOver(t *testing.T) {
	f := newFixture(t, constSource(5))
	s := f.goToPlay()
	engine := s.Engine()

	for engine.TurnScore() < engine.TargetScore() {
		f.click(s.roll)
		f.settle(s)
	}
	f.click(s.stop)

	if !engine.GameOver() || engine.Winner() != engine.Player1() {
		t.Fatal("expected player 1 to win")
	}
	if s.phase != phaseOver || !s.roll.Disabled() || !s.stop.Disabled() {
		t.Fatal("roll and stop must be disabled once the game is over")
	}
	if f.sounds.wins != 1 {
		t.Fatalf("expected one win sound, got %d", f.sounds.wins)
	}

	score := engine.Player1().Score()
	f.click(s.roll)
	if s.phase != phaseOver || engine.Player1().Score() != score {
		t.Fatal("rolling after the game ended changed the game")
	}

	rec := render.NewRecorder(f.ctx.Width, f.ctx.Height)
	f.manager.Draw(rec)
	if !rec.HasText("WINNER!") {
		t.Fatalf("winner banner missing from %v", rec.Texts())
	}
}

func TestNewGameBuildsFreshEngine(t *testing.T) {
	f := newFixture(t, constSource(2))
	first := f.goToPlay()
	f.click(first.roll)
	f.settle(first)
	f.click(first.stop)

	f.click(first.newGame)
	f.waitFor(KindPlay)
	second := f.play()
	if second == first {
		t.Fatal("expected a new play screen")
	}
	if second.Engine().ID() == first.Engine().ID() {
		t.Fatal("expected a new engine")
	}
	if second.Engine().Player1().Score() != 0 || second.Engine().CurrentPlayer() != second.Engine().Player1() {
		t.Fatal("new game did not start from scratch")
	}

	// Play -> MainMenu -> Play also starts over.
	f.click(second.menu)
	f.waitFor(KindMainMenu)
	third := f.goToPlay()
	if third.Engine().ID() == second.Engine().ID() || third.Feed().Len() != 1 {
		t.Fatal("returning from the menu must start a fresh game")
	}
}

func TestChangeStateStartsFreshGame(t *testing.T) {
	f := newFixture(t, constSource(2))

	f.manager.ChangeState(KindPlay)
	first := f.play()
	f.click(first.roll)
	f.settle(first)
	f.click(first.stop)
	if first.Engine().Player1().Score() == 0 {
		t.Fatal("expected points banked in the first game")
	}

	f.manager.ChangeState(KindMainMenu)
	if _, ok := f.manager.Current().(*MainMenuScreen); !ok {
		t.Fatalf("expected main menu, got %v", f.manager.Current().Kind())
	}

	f.manager.ChangeState(KindPlay)
	second := f.play()
	engine := second.Engine()
	if engine.ID() == first.Engine().ID() {
		t.Fatal("expected a new engine")
	}
	if engine.Player1().Score() != 0 || engine.Player2().Score() != 0 || engine.TurnScore() != 0 {
		t.Fatal("new game did not start from zero")
	}
	if engine.CurrentPlayer() != engine.Player1() || engine.GameOver() {
		t.Fatal("new game must start with player 1")
	}
}

func TestPlayStopsAfterRequest(t *testing.T) {
	f := newFixture(t, constSource(2))
	s := f.goToPlay()

	f.click(s.roll)
	y := s.die1.Y()
	f.click(s.menu)
	if s.die1.Y() != y {
		t.Fatal("dice kept moving after leaving the game was requested")
	}
	if s.Pending() != KindMainMenu {
		t.Fatalf("expected pending main menu, got %v", s.Pending())
	}
	f.waitFor(KindMainMenu)
	if s.Engine().TurnScore() != 0 {
		t.Fatal("the abandoned roll reached the engine")
	}
}

func TestRulesAndOptionsNavigation(t *testing.T) {
	tests := []struct {
		name   string
		from   Kind
		button func(Screen) *ui.Button
		want   Kind
	}{
		{"rules menu", KindRules, func(s Screen) *ui.Button { return s.(*RulesScreen).menu }, KindMainMenu},
		{"rules new game", KindRules, func(s Screen) *ui.Button { return s.(*RulesScreen).newGame }, KindPlay},
		{"options menu", KindOptions, func(s Screen) *ui.Button { return s.(*OptionsScreen).menu }, KindMainMenu},
		{"options new game", KindOptions, func(s Screen) *ui.Button { return s.(*OptionsScreen).newGame }, KindPlay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, constSource(2))
			f.manager.ChangeState(tt.from)
			f.click(tt.button(f.manager.Current()))

			if ticks := f.waitFor(tt.want); ticks != transition.FadeTicks {
				t.Fatalf("expected change after %d ticks, got %d", transition.FadeTicks, ticks)
			}
		})
	}
}

func TestPlayUsesVerticalSplit(t *testing.T) {
	f := newFixture(t, constSource(2))
	s := f.goToPlay()
	if s.Effect().Kind() != transition.KindVerticalSplit {
		t.Fatalf("expected vertical split, got %v", s.Effect().Kind())
	}
	f.click(s.menu)
	if ticks := f.waitFor(KindMainMenu); ticks != transition.SplitTicks {
		t.Fatalf("expected change after %d ticks, got %d", transition.SplitTicks, ticks)
	}
}

func TestPlayDraw(t *testing.T) {
	f := newFixture(t, constSource(2))
	f.goToPlay()

	rec := render.NewRecorder(f.ctx.Width, f.ctx.Height)
	f.manager.Draw(rec)
	for _, want := range []string{"Player 1", "Player 2", "Current", "Target 100"} {
		if !rec.HasText(want) {
			t.Fatalf("expected %q in %v", want, rec.Texts())
		}
	}
	if rec.Count("circle") != 1 {
		t.Fatalf("expected one turn marker, got %d", rec.Count("circle"))
	}
}

func TestOptionsApplyImmediately(t *testing.T) {
	f := newFixture(t, constSource(2))
	f.click(f.manager.Current().(*MainMenuScreen).options)
	f.waitFor(KindOptions)
	s := f.manager.Current().(*OptionsScreen)

	f.click(s.colorIcon())
	if got := f.ctx.Options.DiceColor(); got != config.DiceBlack {
		t.Fatalf("expected black dice, got %v", got)
	}
	f.click(s.targetIcon())
	if got := f.ctx.Options.TargetScore(); got != 200 {
		t.Fatalf("expected target 200, got %d", got)
	}
	if f.manager.Current() != s {
		t.Fatal("changing an option must not leave the screen")
	}

	f.click(s.newGame)
	f.waitFor(KindPlay)
	if got := f.play().Engine().TargetScore(); got != 200 {
		t.Fatalf("new game ignored the target option: %d", got)
	}
}

func TestOptionsCycleWraps(t *testing.T) {
	f := newFixture(t, constSource(2))
	f.manager.ChangeState(KindOptions)
	s := f.manager.Current().(*OptionsScreen)

	for range config.DiceColors {
		f.click(s.colorIcon())
	}
	if got := f.ctx.Options.DiceColor(); got != config.DiceWhite {
		t.Fatalf("expected the colour to wrap to white, got %v", got)
	}
}

func TestRulesScreen(t *testing.T) {
	f := newFixture(t, constSource(2))
	f.manager.ChangeState(KindRules)
	s := f.manager.Current().(*RulesScreen)

	rec := render.NewRecorder(f.ctx.Width, f.ctx.Height)
	f.manager.Draw(rec)
	lines := f.ctx.Rules.Lines()
	if len(lines) == 0 || !rec.HasText(lines[0]) {
		t.Fatalf("rules not drawn: %v", rec.Texts())
	}

	f.click(s.newGame)
	f.waitFor(KindPlay)
}

func TestDebugScreenScroll(t *testing.T) {
	log := systems.NewMessageLog(100)
	d := NewDebugScreen(log)
	for i := 0; i < 40; i++ {
		log.Add("line")
	}

	d.Toggle()
	if !d.Visible() || d.Offset() != d.maxOffset() {
		t.Fatalf("expected to open at the newest line, offset %d", d.Offset())
	}
	d.ScrollDown()
	if d.Offset() != d.maxOffset() {
		t.Fatal("scrolled past the end")
	}
	d.ScrollUp()
	if d.Offset() != d.maxOffset()-1 {
		t.Fatalf("expected to scroll up one line, offset %d", d.Offset())
	}

	rec := render.NewRecorder(1024, 768)
	d.Draw(rec)
	if !rec.HasText("DEBUG LOG") {
		t.Fatal("title missing")
	}

	d.Toggle()
	rec.Reset()
	d.Draw(rec)
	if len(rec.Ops) != 0 {
		t.Fatal("hidden debug screen drew something")
	}
}

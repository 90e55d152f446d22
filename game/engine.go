// Package game implements the rules of Pig: two players, two dice, and a
// target score reached by banking turn scores.
package game

import (
	"github.com/google/uuid"

	"pig-dice/events"
)

// DefaultTargetScore is used when a non-positive target is configured.
const DefaultTargetScore = 100

// Option configures an Engine at construction.
type Option func(*Engine)

// WithSource sets the random source used by both dice.
func WithSource(src Source) Option {
	return func(e *Engine) { e.src = src }
}

// WithEvents makes the engine emit its events on bus.
func WithEvents(bus *events.Bus) Option {
	return func(e *Engine) { e.bus = bus }
}

// WithNames overrides the default "Player 1" / "Player 2" names.
func WithNames(first, second string) Option {
	return func(e *Engine) { e.names = [2]string{first, second} }
}

// Engine owns both players and dice and is the only thing that mutates scores.
type Engine struct {
	id    uuid.UUID
	src   Source
	bus   *events.Bus
	names [2]string

	player1 *Player
	player2 *Player
	die1    *Die
	die2    *Die

	currentPlayer *Player
	turnScore     int
	winner        *Player
	targetScore   int
}

// NewEngine creates a fresh game: scores at zero, player 1 to roll.
func NewEngine(targetScore int, opts ...Option) *Engine {
	e := &Engine{
		id:    uuid.New(),
		names: [2]string{"Player 1", "Player 2"},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.src == nil {
		e.src = NewSource(0)
	}
	if targetScore <= 0 {
		targetScore = DefaultTargetScore
	}

	e.targetScore = targetScore
	e.player1 = newPlayer(e.names[0])
	e.player2 = newPlayer(e.names[1])
	e.die1 = NewDie(e.src)
	e.die2 = NewDie(e.src)
	e.currentPlayer = e.player1
	return e
}

func (e *Engine) ID() uuid.UUID { return e.id }
func (e *Engine) Player1() *Player { return e.player1 }
func (e *Engine) Player2() *Player { return e.player2 }
func (e *Engine) CurrentPlayer() *Player { return e.currentPlayer }
func (e *Engine) TurnScore() int { return e.turnScore }
func (e *Engine) Winner() *Player { return e.winner }
func (e *Engine) GameOver() bool { return e.winner != nil }
func (e *Engine) TargetScore() int { return e.targetScore }
func (e *Engine) Dice() (first, second *Die) { return e.die1, e.die2 }

// Roll rolls both dice and adds their sum to the turn score.
func (e *Engine) Roll() {
	if e.GameOver() {
		return
	}
	e.die1.Roll()
	e.die2.Roll()
	e.turnScore += e.die1.Value() + e.die2.Value()

	e.bus.Emit(RolledEvent{
		Player:    e.currentPlayer,
		Die1:      e.die1.Value(),
		Die2:      e.die2.Value(),
		TurnScore: e.turnScore,
	})
}

// EvaluateRoll applies the pig rule to the current dice. One pig forfeits the
// turn score; two pigs also wipe the current player's banked score. The caller
// decides whether to pass the turn.
func (e *Engine) EvaluateRoll() Busts {
	if e.GameOver() {
		return NoPig
	}
	busts := Evaluate(e.die1.Value(), e.die2.Value())
	switch busts {
	case OnePig:
		e.turnScore = 0
	case TwoPigs:
		e.turnScore = 0
		e.currentPlayer.setScore(0)
	default:
		return NoPig
	}

	e.bus.Emit(BustEvent{Player: e.currentPlayer, Busts: busts})
	return busts
}

// DoneRolling banks the turn score and ends the game if the current player
// reached the target. This is the only way a game ends.
func (e *Engine) DoneRolling() {
	if e.GameOver() {
		return
	}
	amount := e.turnScore
	e.currentPlayer.addToScore(amount)
	e.turnScore = 0

	e.bus.Emit(BankedEvent{
		Player: e.currentPlayer,
		Amount: amount,
		Score:  e.currentPlayer.Score(),
	})

	if e.currentPlayer.Score() >= e.targetScore {
		e.winner = e.currentPlayer
		e.bus.Emit(WonEvent{Winner: e.winner, Score: e.winner.Score()})
	}
}

// NextPlayer passes the dice to the other player.
func (e *Engine) NextPlayer() {
	if e.currentPlayer == e.player1 {
		e.currentPlayer = e.player2
	} else {
		e.currentPlayer = e.player1
	}
	e.bus.Emit(TurnChangedEvent{Player: e.currentPlayer})
}

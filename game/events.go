package game

import "pig-dice/events"

// Event types emitted by the engine
const (
	EventRolled      events.EventType = "rolled"
	EventBust        events.EventType = "bust"
	EventBanked      events.EventType = "banked"
	EventTurnChanged events.EventType = "turn_changed"
	EventWon         events.EventType = "won"
)

// RolledEvent is emitted after both dice are rolled and the sum added to the turn score.
type RolledEvent struct {
	Player    *Player
	Die1      int
	Die2      int
	TurnScore int
}

func (e RolledEvent) Type() events.EventType { return EventRolled }

// Sum returns the total of both dice.
func (e RolledEvent) Sum() int { return e.Die1 + e.Die2 }

// BustEvent is emitted when an evaluated roll contains at least one pig.
type BustEvent struct {
	Player *Player
	Busts  Busts
}

func (e BustEvent) Type() events.EventType { return EventBust }

// BankedEvent is emitted when a turn score is banked.
type BankedEvent struct {
	Player *Player
	Amount int
	Score  int
}

func (e BankedEvent) Type() events.EventType { return EventBanked }

// TurnChangedEvent is emitted when the current player changes.
type TurnChangedEvent struct {
	Player *Player
}

func (e TurnChangedEvent) Type() events.EventType { return EventTurnChanged }

// WonEvent is emitted once, when a player reaches the target score.
type WonEvent struct {
	Winner *Player
	Score  int
}

func (e WonEvent) Type() events.EventType { return EventWon }

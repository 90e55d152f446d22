package game

// Player is a named participant with a banked score.
type Player struct {
	name  string
	score int
}

func newPlayer(name string) *Player {
	return &Player{name: name}
}

func (p *Player) Name() string { return p.name }
func (p *Player) Score() int { return p.score }

func (p *Player) addToScore(amount int) { p.score += amount }
func (p *Player) setScore(score int) { p.score = score }

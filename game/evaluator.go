package game

// Busts counts how many dice in a roll came up as a pig (a one).
type Busts int

const (
	NoPig Busts = iota
	OnePig
	TwoPigs
)

func (b Busts) String() string {
	switch b {
	case NoPig:
		return "no pig"
	case OnePig:
		return "one pig"
	case TwoPigs:
		return "two pigs"
	default:
		return "unknown"
	}
}

// Evaluate classifies a two-die roll.
func Evaluate(a, b int) Busts {
	switch {
	case a == 1 && b == 1:
		return TwoPigs
	case a == 1 || b == 1:
		return OnePig
	default:
		return NoPig
	}
}

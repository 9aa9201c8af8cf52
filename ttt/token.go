package ttt

// Token is the mark occupying a single cell.
type Token byte

const (
	Empty Token = iota
	// X always moves first.
	X
	O
)

func (t Token) String() string {
	switch t {
	case X:
		return "x"
	case O:
		return "o"
	default:
		return " "
	}
}

// Opponent returns the other player's token. Empty has no opponent.
func (t Token) Opponent() Token {
	switch t {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

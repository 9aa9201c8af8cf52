package tttest

import (
	"github.com/nelhage/tictactoe/notation"
	"github.com/nelhage/tictactoe/ttt"
)

func Board(s string) ttt.Board {
	b, e := notation.ParseBoard(s)
	if e != nil {
		panic(e)
	}
	return b
}

// Play applies the moves in order to an empty board.
func Play(moves ...int) ttt.Board {
	b := ttt.New()
	var e error
	for _, m := range moves {
		b, e = b.Move(m)
		if e != nil {
			panic(e)
		}
	}
	return b
}

package ai

import "github.com/nelhage/tictactoe/ttt"

// LowestAvailableMove returns the smallest empty cell index, or false
// on a full board.
func LowestAvailableMove(b ttt.Board) (int, bool) {
	moves := b.AvailableSpaces()
	if len(moves) == 0 {
		return 0, false
	}
	return moves[0], true
}

package ai

import (
	"golang.org/x/net/context"

	"github.com/nelhage/tictactoe/ttt"
)

// MovePicker is satisfied by anything that can choose a move for the
// player to move on a board. ok is false when no move can be made.
type MovePicker interface {
	GetMove(ctx context.Context, b ttt.Board) (move int, ok bool)
}

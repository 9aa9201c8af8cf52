package cli

import (
	"fmt"
	"io"

	"golang.org/x/net/context"

	"github.com/nelhage/tictactoe/ai"
	"github.com/nelhage/tictactoe/ttt"
)

// Player is implemented only by Human and Computer.
//
// GetMove returns ok=false with a nil error when the player produced
// no usable move this turn (for example unparseable input); the game
// loop asks again. A non-nil error ends the game.
type Player interface {
	GetMove(ctx context.Context, b ttt.Board) (move int, ok bool, err error)

	player()
}

func NewHuman(out io.Writer, in Input) *Human {
	return &Human{out, in}
}

// Human prompts on out and reads a move from in.
type Human struct {
	out io.Writer
	in  Input
}

func (*Human) player() {}

func (h *Human) GetMove(ctx context.Context, b ttt.Board) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	fmt.Fprintf(h.out, "%s> ", b.CurrentToken())
	return h.in.ReadMove()
}

func NewComputer(a ai.MovePicker) *Computer {
	return &Computer{a}
}

// Computer delegates to a search engine.
type Computer struct {
	ai ai.MovePicker
}

func (*Computer) player() {}

func (c *Computer) GetMove(ctx context.Context, b ttt.Board) (int, bool, error) {
	m, ok := c.ai.GetMove(ctx, b)
	if ok {
		return m, true, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	return 0, false, ai.ErrNoMoveAvailable
}

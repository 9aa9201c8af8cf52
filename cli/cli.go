package cli

import (
	"fmt"
	"io"

	"golang.org/x/net/context"

	"github.com/nelhage/tictactoe/ttt"
)

type CLI struct {
	moves []int
	b     ttt.Board

	// Initial is the board play starts from; the zero value is an
	// empty board.
	Initial ttt.Board
	Out     io.Writer
	X       Player
	O       Player
	// Clear clears a VT100 terminal before each render.
	Clear bool
}

// Play runs one game to completion and returns the final board. It
// returns early with an error if a player fails or ctx is done.
func (c *CLI) Play(ctx context.Context) (ttt.Board, error) {
	c.moves = nil
	c.b = c.Initial
	for {
		c.render()
		if c.b.GameOver() {
			fmt.Fprintf(c.Out, "Game Over! ")
			if w, ok := c.b.Winner(); ok {
				fmt.Fprintf(c.Out, "%s wins.\n", w)
			} else {
				fmt.Fprintf(c.Out, "Draw.\n")
			}
			return c.b, nil
		}
		p := c.X
		if c.b.CurrentToken() == ttt.O {
			p = c.O
		}
		m, ok, err := p.GetMove(ctx, c.b)
		if err != nil {
			return c.b, fmt.Errorf("%s to move: %w", c.b.CurrentToken(), err)
		}
		if !ok {
			c.b = ttt.FromCells(c.b.Cells())
			continue
		}
		next := c.b.TryMove(m)
		if next.Message() == "" {
			c.moves = append(c.moves, m)
		}
		c.b = next
	}
}

func (c *CLI) Moves() []int {
	return c.moves
}

func (c *CLI) render() {
	if c.Clear {
		ClearScreen(c.Out)
	}
	fmt.Fprintln(c.Out)
	RenderBoard(c.Out, c.b)
}

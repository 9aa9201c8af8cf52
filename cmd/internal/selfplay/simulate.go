package selfplay

import (
	"log"

	"github.com/google/uuid"
	"golang.org/x/net/context"

	"github.com/nelhage/tictactoe/ai"
	"github.com/nelhage/tictactoe/notation"
	"github.com/nelhage/tictactoe/symmetry"
	"github.com/nelhage/tictactoe/ttt"
)

type Config struct {
	Games int

	Verbose bool

	Initial ttt.Board

	P1, P2 ai.Config

	Swap bool
}

type Stats struct {
	Players [2]struct {
		Wins  int
		XWins int
		OWins int
	}
	X, O int
	Ties int

	Games []Result
}

func (s *Stats) Count() int {
	return s.X + s.O + s.Ties
}

type gameSpec struct {
	c       *Config
	i       int
	p1token ttt.Token
}

type Result struct {
	spec    gameSpec
	ID      string
	Initial ttt.Board
	Board   ttt.Board
	Moves   []int
	Winner  ttt.Token
}

// Simulate plays c.Games games between the two configured engines,
// one after another, and tallies the results. With Swap set, the
// engines alternate taking x.
func Simulate(ctx context.Context, c *Config) (Stats, error) {
	var st Stats
	for g := 0; g < c.Games; g++ {
		p1token := ttt.X
		if c.Swap && g%2 == 1 {
			p1token = ttt.O
		}
		r, err := playGame(ctx, gameSpec{c: c, i: g, p1token: p1token})
		if err != nil {
			return st, err
		}
		if c.Verbose {
			var canon []int
			if c.Initial == ttt.New() {
				canon, _ = symmetry.Canonical(r.Moves)
			}
			log.Printf("game id=%s n=%d plies=%d p1=%s winner=%q board=%s canonical=%v",
				r.ID, g, len(r.Moves), r.spec.p1token, r.Winner, notation.FormatBoard(r.Board), canon)
		}
		switch r.Winner {
		case ttt.X:
			st.X++
		case ttt.O:
			st.O++
		default:
			st.Ties++
		}
		if r.Winner != ttt.Empty {
			pst := &st.Players[0]
			if r.Winner != r.spec.p1token {
				pst = &st.Players[1]
			}
			pst.Wins++
			if r.Winner == ttt.X {
				pst.XWins++
			} else {
				pst.OWins++
			}
		}
		st.Games = append(st.Games, r)
	}
	return st, nil
}

func playGame(ctx context.Context, g gameSpec) (Result, error) {
	x, o := ai.New(g.c.P1), ai.New(g.c.P2)
	if g.p1token == ttt.O {
		x, o = o, x
	}
	r := Result{
		spec:    g,
		ID:      uuid.NewString(),
		Initial: g.c.Initial,
	}
	b := g.c.Initial
	for !b.GameOver() {
		p := x
		if b.CurrentToken() == ttt.O {
			p = o
		}
		m, ok := p.GetMove(ctx, b)
		if !ok {
			if err := ctx.Err(); err != nil {
				return r, err
			}
			return r, ai.ErrNoMoveAvailable
		}
		next, err := b.Move(m)
		if err != nil {
			return r, err
		}
		b = next
		r.Moves = append(r.Moves, m)
	}
	r.Board = b
	r.Winner, _ = b.Winner()
	return r, nil
}

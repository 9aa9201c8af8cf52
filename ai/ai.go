package ai

import (
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/net/context"

	"github.com/nelhage/tictactoe/ttt"
)

var ErrNoMoveAvailable = errors.New("no move available")

// Strategy selects how an AI picks its move. The set is closed.
type Strategy int

const (
	LowestAvailable Strategy = iota
	Minimax
)

func (s Strategy) String() string {
	switch s {
	case LowestAvailable:
		return "lowest"
	case Minimax:
		return "minimax"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "lowest":
		return LowestAvailable, nil
	case "minimax":
		return Minimax, nil
	}
	return 0, fmt.Errorf("unknown strategy: %q", s)
}

type Config struct {
	Strategy Strategy
	// Delay is waited before each move is returned.
	Delay time.Duration
	Debug int
}

type AI struct {
	cfg Config
	st  Stats
}

var _ MovePicker = (*AI)(nil)

func New(cfg Config) *AI {
	return &AI{cfg: cfg}
}

func (a *AI) Config() Config {
	return a.cfg
}

// Stats returns the node counts accumulated over every search this AI
// has run.
func (a *AI) Stats() Stats {
	return a.st
}

// GetMove picks a move for the player to move on b. It returns false
// when b is full, when ctx is done before the delay elapses, and, for
// the Minimax strategy, when b is already won.
func (a *AI) GetMove(ctx context.Context, b ttt.Board) (int, bool) {
	if !a.think(ctx) {
		return 0, false
	}
	switch a.cfg.Strategy {
	case LowestAvailable:
		return LowestAvailableMove(b)
	case Minimax:
		return a.minimax(b)
	}
	panic(fmt.Sprintf("GetMove: bad strategy: %v", a.cfg.Strategy))
}

func (a *AI) minimax(b ttt.Board) (int, bool) {
	if b.GameOver() {
		return 0, false
	}
	start := time.Now()
	scores, st := Analyze(b)
	a.st.add(st)
	m, ok := scores.Best()
	if a.cfg.Debug > 0 && ok {
		log.Printf("[minimax] move=%d score=%d visited=%d terminal=%d time=%s",
			m, scores[m].Score, st.Visited, st.Terminal, time.Since(start))
	}
	if a.cfg.Debug > 1 {
		for i, cs := range scores {
			if cs.Valid {
				log.Printf("[minimax]  cell=%d score=%d", i, cs.Score)
			}
		}
	}
	return m, ok
}

func (a *AI) think(ctx context.Context) bool {
	if a.cfg.Delay <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(a.cfg.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

package ai

import "github.com/nelhage/tictactoe/ttt"

// MaxScore is the value of a win on the very next placement. A win
// found d plies deeper scores MaxScore-d, so sooner wins rank higher.
const MaxScore = ttt.Cells

// CellScore is the negamax value of placing at one cell, from the
// point of view of the player to move. Valid is false for occupied
// cells, which never take part in move selection.
type CellScore struct {
	Score int
	Valid bool
}

type Scores [ttt.Cells]CellScore

// Best returns the index of the highest valid score. Ties go to the
// lowest index.
func (s Scores) Best() (int, bool) {
	best, found := 0, false
	for i, cs := range s {
		if !cs.Valid {
			continue
		}
		if !found || cs.Score > s[best].Score {
			best, found = i, true
		}
	}
	return best, found
}

type Stats struct {
	Visited  uint64
	Terminal uint64
}

func (st *Stats) add(o Stats) {
	st.Visited += o.Visited
	st.Terminal += o.Terminal
}

// search carries node counts through one negamax run. The boards it
// walks are values, so every branch sees its own copy.
type search struct {
	st Stats
}

func (s *search) scoreMove(b ttt.Board, i, depth int) int {
	return s.scoreBoard(b.Place(i), depth)
}

func (s *search) scoreBoard(b ttt.Board, depth int) int {
	s.st.Visited++
	if b.GameOver() {
		s.st.Terminal++
		if _, ok := b.Winner(); ok {
			return MaxScore - depth
		}
		return 0
	}
	best, _ := s.allScores(b, depth+1).bestScore()
	return -best
}

func (s *search) allScores(b ttt.Board, depth int) Scores {
	var out Scores
	for _, i := range b.AvailableSpaces() {
		out[i] = CellScore{Score: s.scoreMove(b, i, depth), Valid: true}
	}
	return out
}

func (s Scores) bestScore() (int, bool) {
	i, ok := s.Best()
	if !ok {
		return 0, false
	}
	return s[i].Score, true
}

// ScoreMove places the current player's token at i and scores the
// result at the given depth.
func ScoreMove(b ttt.Board, i, depth int) int {
	var s search
	return s.scoreMove(b, i, depth)
}

// ScoreBoard scores b for the player who just moved: MaxScore-depth
// for a win, 0 for a tie, and otherwise the negation of the best
// score available to the opponent one ply deeper.
func ScoreBoard(b ttt.Board, depth int) int {
	var s search
	return s.scoreBoard(b, depth)
}

func AllScores(b ttt.Board, depth int) Scores {
	var s search
	return s.allScores(b, depth)
}

// Analyze scores every available cell of b and reports how many
// nodes the search touched.
func Analyze(b ttt.Board) (Scores, Stats) {
	var s search
	scores := s.allScores(b, 0)
	return scores, s.st
}

// Negamax returns the best move for the player to move, or false if b
// has no empty cells.
func Negamax(b ttt.Board) (int, bool) {
	scores, _ := Analyze(b)
	return scores.Best()
}

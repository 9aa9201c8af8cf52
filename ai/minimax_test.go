package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/tictactoe/ttt"
	"github.com/nelhage/tictactoe/tttest"
)

func BenchmarkNegamaxEmpty(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Negamax(ttt.New())
	}
}

func TestTakesImmediateWin(t *testing.T) {
	b := tttest.Board("oxo/oxx/...")
	scores := AllScores(b, 0)
	m, ok := Negamax(b)
	require.True(t, ok)
	assert.Equal(t, 7, m)
	for i, cs := range scores {
		if i == 7 || !cs.Valid {
			continue
		}
		assert.Greater(t, scores[7].Score, cs.Score, "cell %d", i)
	}
	assert.Equal(t, MaxScore, scores[7].Score)
}

func TestPrefersSoonerWin(t *testing.T) {
	b := tttest.Board("xox/oxo/...")
	scores := AllScores(b, 0)
	require.True(t, scores[6].Valid)
	require.True(t, scores[7].Valid)
	require.True(t, scores[8].Valid)
	assert.Equal(t, scores[6].Score, scores[8].Score)
	assert.Greater(t, scores[6].Score, scores[7].Score)
	assert.Equal(t, MaxScore, scores[6].Score)
	assert.Equal(t, MaxScore-2, scores[7].Score)

	m, ok := Negamax(b)
	require.True(t, ok)
	assert.Equal(t, 6, m)
}

func TestScoreTie(t *testing.T) {
	b := tttest.Board("oxo/oxx/xox")
	assert.Equal(t, 0, ScoreBoard(b, 0))
	assert.Equal(t, 0, ScoreBoard(b, 5))
}

func TestScoreWinDependsOnDepth(t *testing.T) {
	b := tttest.Board("xxx/oo./...")
	assert.Equal(t, MaxScore, ScoreBoard(b, 0))
	assert.Equal(t, MaxScore-3, ScoreBoard(b, 3))
}

func TestScoreMoveMatchesScoreBoard(t *testing.T) {
	b := tttest.Board("x../.o./...")
	for _, i := range b.AvailableSpaces() {
		assert.Equal(t, ScoreBoard(b.Place(i), 2), ScoreMove(b, i, 2), "cell %d", i)
	}
}

func TestUnavailableCellsAreNotScored(t *testing.T) {
	b := tttest.Board("x../.o./..x")
	scores := AllScores(b, 0)
	for i, cs := range scores {
		assert.Equal(t, b.At(i) == ttt.Empty, cs.Valid, "cell %d", i)
	}
}

func TestBlocksOpponentWin(t *testing.T) {
	// o threatens 0-4-8; x must take 8
	b := tttest.Board("ox./.o./x..")
	m, ok := Negamax(b)
	require.True(t, ok)
	assert.Equal(t, 8, m)
}

func TestEmptyBoardIsDraw(t *testing.T) {
	scores, st := Analyze(ttt.New())
	for i, cs := range scores {
		require.True(t, cs.Valid)
		assert.Equal(t, 0, cs.Score, "cell %d", i)
	}
	m, ok := scores.Best()
	require.True(t, ok)
	assert.Equal(t, 0, m)
	assert.Greater(t, st.Visited, uint64(0))
	assert.LessOrEqual(t, st.Terminal, st.Visited)
}

func TestNegamaxFullBoard(t *testing.T) {
	_, ok := Negamax(tttest.Board("oxo/oxx/xox"))
	assert.False(t, ok)
}

func TestScoresBest(t *testing.T) {
	var s Scores
	_, ok := s.Best()
	assert.False(t, ok)

	s[3] = CellScore{Score: -2, Valid: true}
	s[5] = CellScore{Score: 4, Valid: true}
	s[7] = CellScore{Score: 4, Valid: true}
	m, ok := s.Best()
	require.True(t, ok)
	assert.Equal(t, 5, m)

	// an invalid cell never wins, even with a higher score
	s[0] = CellScore{Score: 9}
	m, _ = s.Best()
	assert.Equal(t, 5, m)
}

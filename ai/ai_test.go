package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/nelhage/tictactoe/ttt"
	"github.com/nelhage/tictactoe/tttest"
)

func TestParseStrategy(t *testing.T) {
	for _, s := range []Strategy{LowestAvailable, Minimax} {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseStrategy("random")
	assert.Error(t, err)
}

func TestLowestAvailable(t *testing.T) {
	a := New(Config{Strategy: LowestAvailable})
	ctx := context.Background()

	m, ok := a.GetMove(ctx, ttt.New())
	require.True(t, ok)
	assert.Equal(t, 0, m)

	m, ok = a.GetMove(ctx, tttest.Board("xo./x../..."))
	require.True(t, ok)
	assert.Equal(t, 2, m)

	_, ok = a.GetMove(ctx, tttest.Board("oxo/oxx/xox"))
	assert.False(t, ok)
}

func TestMinimaxGetMove(t *testing.T) {
	a := New(Config{Strategy: Minimax})
	m, ok := a.GetMove(context.Background(), tttest.Board("oxo/oxx/..."))
	require.True(t, ok)
	assert.Equal(t, 7, m)
	assert.Greater(t, a.Stats().Visited, uint64(0))
}

func TestMinimaxGameOverBoard(t *testing.T) {
	a := New(Config{Strategy: Minimax})
	_, ok := a.GetMove(context.Background(), tttest.Board("xxx/oo./..."))
	assert.False(t, ok)
	_, ok = a.GetMove(context.Background(), tttest.Board("oxo/oxx/xox"))
	assert.False(t, ok)
}

func TestDelayHonoursContext(t *testing.T) {
	a := New(Config{Strategy: LowestAvailable, Delay: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok := a.GetMove(ctx, ttt.New())
	assert.False(t, ok)
}

func TestDelayElapses(t *testing.T) {
	a := New(Config{Strategy: LowestAvailable, Delay: 10 * time.Millisecond})
	start := time.Now()
	m, ok := a.GetMove(context.Background(), ttt.New())
	require.True(t, ok)
	assert.Equal(t, 0, m)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func playOut(t *testing.T, x, o MovePicker) ttt.Board {
	t.Helper()
	b := ttt.New()
	for !b.GameOver() {
		p := x
		if b.CurrentToken() == ttt.O {
			p = o
		}
		m, ok := p.GetMove(context.Background(), b)
		require.True(t, ok)
		next, err := b.Move(m)
		require.NoError(t, err)
		b = next
	}
	return b
}

func TestMinimaxBeatsLowestAvailable(t *testing.T) {
	mm := New(Config{Strategy: Minimax})
	low := New(Config{Strategy: LowestAvailable})

	b := playOut(t, mm, low)
	w, ok := b.Winner()
	assert.True(t, ok)
	assert.Equal(t, ttt.X, w)

	b = playOut(t, low, mm)
	w, ok = b.Winner()
	assert.True(t, ok)
	assert.Equal(t, ttt.O, w)
}

func TestMinimaxSelfPlayDraws(t *testing.T) {
	mm := New(Config{Strategy: Minimax})
	b := playOut(t, mm, mm)
	_, ok := b.Winner()
	assert.False(t, ok)
}

// neverLoses plays every possible opponent reply against minimax and
// fails if any line ends with the opponent winning.
func neverLoses(t *testing.T, b ttt.Board, me ttt.Token) {
	if b.GameOver() {
		if w, ok := b.Winner(); ok && w != me {
			t.Fatalf("minimax lost: %v", b.Cells())
		}
		return
	}
	if b.CurrentToken() == me {
		m, ok := Negamax(b)
		require.True(t, ok)
		neverLoses(t, b.Place(m), me)
		return
	}
	for _, m := range b.AvailableSpaces() {
		neverLoses(t, b.Place(m), me)
	}
}

func TestMinimaxNeverLoses(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive")
	}
	neverLoses(t, ttt.New(), ttt.X)
	neverLoses(t, ttt.New(), ttt.O)
}

package selfplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/nelhage/tictactoe/ai"
	"github.com/nelhage/tictactoe/ttt"
	"github.com/nelhage/tictactoe/tttest"
)

func TestMinimaxBeatsLowest(t *testing.T) {
	st, err := Simulate(context.Background(), &Config{
		Games:   2,
		Initial: ttt.New(),
		P1:      ai.Config{Strategy: ai.Minimax},
		P2:      ai.Config{Strategy: ai.LowestAvailable},
		Swap:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, st.Count())
	assert.Equal(t, 2, st.Players[0].Wins)
	assert.Equal(t, 1, st.Players[0].XWins)
	assert.Equal(t, 1, st.Players[0].OWins)
	assert.Equal(t, 0, st.Players[1].Wins)
	assert.Equal(t, 1, st.X)
	assert.Equal(t, 1, st.O)

	require.Len(t, st.Games, 2)
	assert.NotEqual(t, st.Games[0].ID, st.Games[1].ID)
	assert.Equal(t, ttt.X, st.Games[0].Winner)
	assert.Equal(t, ttt.O, st.Games[1].Winner)
	assert.Equal(t, ttt.X, st.Games[0].spec.p1token)
	assert.Equal(t, ttt.O, st.Games[1].spec.p1token)
}

func TestMinimaxMirrorDraws(t *testing.T) {
	st, err := Simulate(context.Background(), &Config{
		Games:   1,
		Verbose: true,
		Initial: ttt.New(),
		P1:      ai.Config{Strategy: ai.Minimax},
		P2:      ai.Config{Strategy: ai.Minimax},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, st.Ties)
	assert.Len(t, st.Games[0].Moves, ttt.Cells)
}

func TestInitialBoard(t *testing.T) {
	initial := tttest.Board("oxo/oxx/...")
	st, err := Simulate(context.Background(), &Config{
		Games:   1,
		Initial: initial,
		P1:      ai.Config{Strategy: ai.Minimax},
		P2:      ai.Config{Strategy: ai.Minimax},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{7}, st.Games[0].Moves)
	assert.Equal(t, initial, st.Games[0].Initial)
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Simulate(ctx, &Config{
		Games:   1,
		Initial: ttt.New(),
		P1:      ai.Config{Strategy: ai.LowestAvailable},
		P2:      ai.Config{Strategy: ai.LowestAvailable},
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCommandConfig(t *testing.T) {
	c := &Command{p1: "minimax", p2: "lowest", games: 3, board: "x../.../..."}
	cfg, err := c.config()
	require.NoError(t, err)
	assert.Equal(t, ai.Minimax, cfg.P1.Strategy)
	assert.Equal(t, ai.LowestAvailable, cfg.P2.Strategy)
	assert.Equal(t, ttt.X, cfg.Initial.At(0))

	c.p2 = "alphabeta"
	_, err = c.config()
	assert.Error(t, err)
}

package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/tictactoe/ttt"
)

func TestParseMoves(t *testing.T) {
	ms, err := ParseMoves("4 0,2\t8")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 0, 2, 8}, ms)
	assert.Equal(t, "4 0 2 8", FormatMoves(ms))

	ms, err = ParseMoves("")
	require.NoError(t, err)
	assert.Empty(t, ms)

	_, err = ParseMoves("4 a")
	assert.Error(t, err)

	_, err = ParseMoves("9")
	assert.ErrorIs(t, err, ttt.ErrOutOfRange)
}

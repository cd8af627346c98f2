package board_test

import (
	"testing"

	"github.com/riftsquare/chesscore/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	m, err := board.ParseMove("e2e4")
	require.NoError(t, err)
	assert.Equal(t, board.NewSquare(4, 1), m.From)
	assert.Equal(t, board.NewSquare(4, 3), m.To)
	assert.Equal(t, "e2e4", m.String())

	promo, err := board.ParseMove("e7e8q")
	require.NoError(t, err)
	assert.Equal(t, board.Queen, promo.Promotion)
	assert.Equal(t, "e7e8q", promo.String())

	_, err = board.ParseMove("e2e4x")
	assert.Error(t, err)

	_, err = board.ParseMove("e2e4k")
	assert.Error(t, err, "king is not a legal promotion piece")
}

func TestPrependCapsAtMaxMoves(t *testing.T) {
	rest := board.MoveSequence{Score: 1}
	for i := 0; i < board.MaxMoves+5; i++ {
		rest = board.Prepend(board.Move{}, rest, rest.Score)
	}
	assert.LessOrEqual(t, len(rest.Moves), board.MaxMoves)
}

package board_test

import (
	"testing"

	"github.com/riftsquare/chesscore/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardBoard(t *testing.T) {
	b := board.Standard()

	wk, ok := b.KingSquare(board.White)
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(4, 0), wk)

	bk, ok := b.KingSquare(board.Black)
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(4, 7), bk)

	assert.Equal(t, board.Piece{Kind: board.Rook, Color: board.White}, b.At(board.NewSquare(0, 0)))
	assert.True(t, b.IsEmpty(board.NewSquare(0, 2)))
}

func TestBoardCopyIsIndependent(t *testing.T) {
	b := board.Standard()
	scratch := b

	scratch.Clear(board.NewSquare(4, 1))
	assert.True(t, scratch.IsEmpty(board.NewSquare(4, 1)))
	assert.False(t, b.IsEmpty(board.NewSquare(4, 1)), "copy must not alias the original")
}

func TestParseSquare(t *testing.T) {
	sq, err := board.ParseSquareStr("e4")
	require.NoError(t, err)
	assert.Equal(t, board.NewSquare(4, 3), sq)

	_, err = board.ParseSquareStr("z9")
	assert.Error(t, err)
}

func TestChebyshevDistance(t *testing.T) {
	a := board.NewSquare(0, 0)
	b := board.NewSquare(3, 1)
	assert.Equal(t, 3, board.ChebyshevDistance(a, b))
}

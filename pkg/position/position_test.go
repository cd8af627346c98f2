package position_test

import (
	"testing"

	"github.com/riftsquare/chesscore/pkg/board"
	"github.com/riftsquare/chesscore/pkg/position"
	"github.com/stretchr/testify/assert"
)

func TestHistoryBoundedAt200(t *testing.T) {
	p := position.NewPosition(board.Standard())

	for i := 0; i < position.MaxHistory+50; i++ {
		b := board.Standard()
		b.Clear(board.NewSquare(0, 1)) // every push is the same board; its contents don't matter here
		p.PushHistory(b)
	}

	assert.LessOrEqual(t, len(p.History), position.MaxHistory)
	assert.Equal(t, position.MaxHistory, len(p.History))
}

func TestCountRepetitions(t *testing.T) {
	p := position.NewPosition(board.Standard())

	for i := 0; i < 6; i++ {
		p.PushHistory(p.Board)
	}

	assert.Equal(t, 6, p.CountRepetitions())
}

func TestCloneIsIndependent(t *testing.T) {
	p := position.NewPosition(board.Standard())
	p.PushHistory(p.Board)

	clone := p.Clone()
	clone.PushHistory(p.Board)

	assert.Equal(t, 1, len(p.History))
	assert.Equal(t, 2, len(clone.History))
}

func TestDefaultRewardParamsMaterial(t *testing.T) {
	params := position.DefaultRewardParams()
	assert.Equal(t, 100.0, params.PieceValue[board.Pawn])
	assert.Equal(t, 20000.0, params.PieceValue[board.King])
}

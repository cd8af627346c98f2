package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftsquare/chesscore/pkg/board"
	"github.com/riftsquare/chesscore/pkg/fen"
)

func TestStandardPositionMoveCount(t *testing.T) {
	pos, side, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	moves := GenerateMoves(pos, side)
	assert.Len(t, moves, 20)
}

func TestGenerateMovesNeverLeavesKingInCheck(t *testing.T) {
	// White queen on e2 pinned to the king on e1 by a black rook on e8: moving the queen off
	// the e-file would be illegal.
	pos, side, err := fen.Decode("4r1k1/8/8/8/8/8/4Q3/4K3 w - - 0 1")
	require.NoError(t, err)

	moves := GenerateMoves(pos, side)
	for _, m := range moves {
		trial := pos.ShallowClone()
		Apply(trial, m)
		assert.Falsef(t, IsInCheck(&trial.Board, side), "move %s leaves king in check", m)
	}
}

func TestMateInOne(t *testing.T) {
	pos, side, err := fen.Decode("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)

	found := FindAndApplyMateInOne(pos, side)
	require.True(t, found)
	assert.True(t, IsCheckmate(pos, side.Opponent()))
}

func TestCheckmateAndStalemateAreMutuallyExclusive(t *testing.T) {
	// Fool's mate: after 1.f3 e5 2.g4 black to move is neither mated nor stalemated; after
	// 2...Qh4# white to move is checkmated.
	pos, side, err := fen.Decode("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")
	require.NoError(t, err)
	assert.False(t, IsCheckmate(pos, side))
	assert.False(t, IsStalemate(pos, side))

	mated, _, err := fen.Decode("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	assert.True(t, IsCheckmate(mated, board.White))
	assert.False(t, IsStalemate(mated, board.White))
}

func TestClassicStalemate(t *testing.T) {
	// Black king on a8, boxed in by white king and queen, not in check, no legal moves.
	pos, _, err := fen.Decode("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.True(t, IsStalemate(pos, board.Black))
	assert.False(t, IsCheckmate(pos, board.Black))
}

func TestOutcome(t *testing.T) {
	mated, _, err := fen.Decode("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	assert.Equal(t, board.Checkmate, Outcome(mated, board.White))

	stalemated, _, err := fen.Decode("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, board.Stalemate, Outcome(stalemated, board.Black))

	fresh, side, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assert.Equal(t, board.Undecided, Outcome(fresh, side))

	fresh.HalfmoveClock = 100
	assert.Equal(t, board.DrawByFiftyMoveRule, Outcome(fresh, side))
}

func TestEnPassantCapture(t *testing.T) {
	pos, side, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	for _, uci := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		ok := TryExecuteUCI(pos, uci)
		require.Truef(t, ok, "move %s should apply", uci)
		side = side.Opponent()
	}

	require.Equal(t, board.White, side)
	moves := GenerateMoves(pos, board.White)
	var found bool
	for _, m := range moves {
		if m.String() == "e5d6" {
			found = true
		}
	}
	assert.True(t, found, "e5d6 en passant capture should be legal")

	ok := TryExecuteUCI(pos, "e5d6")
	require.True(t, ok)
	captured := pos.Board.At(board.NewSquare(3, 4)) // d5
	assert.True(t, captured.IsEmpty(), "black pawn on d5 should have been captured en passant")
}

func TestCastlingKingSideAvailableFromStart(t *testing.T) {
	pos, _, err := fen.Decode("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	moves := GenerateMoves(pos, board.White)
	var hasKingSide, hasQueenSide bool
	for _, m := range moves {
		switch m.String() {
		case "e1g1":
			hasKingSide = true
		case "e1c1":
			hasQueenSide = true
		}
	}
	assert.True(t, hasKingSide)
	assert.True(t, hasQueenSide)
}

func TestCastlingBlockedWhenRookHasMoved(t *testing.T) {
	pos, _, err := fen.Decode("r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1")
	require.NoError(t, err)

	moves := GenerateMoves(pos, board.White)
	for _, m := range moves {
		assert.NotEqual(t, "e1g1", m.String())
	}
}

func TestCastlingBlockedThroughCheck(t *testing.T) {
	// Black rook on f8 covers f1, the king's transit square for white's king-side castle.
	pos, _, err := fen.Decode("5rk1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	moves := GenerateMoves(pos, board.White)
	for _, m := range moves {
		assert.NotEqual(t, "e1g1", m.String())
	}
}

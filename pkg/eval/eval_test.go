package eval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftsquare/chesscore/pkg/board"
	"github.com/riftsquare/chesscore/pkg/fen"
	"github.com/riftsquare/chesscore/pkg/position"
	"github.com/riftsquare/chesscore/pkg/rules"
)

func TestStartingPositionIsRoughlyBalanced(t *testing.T) {
	pos, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	params := position.DefaultRewardParams()

	score := Evaluate(context.Background(), pos, params)
	assert.InDelta(t, 0, score, 1e-9)
}

func TestMaterialAdvantageFavorsWhite(t *testing.T) {
	pos, _, err := fen.Decode("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	require.NoError(t, err)
	params := position.DefaultRewardParams()

	score := Evaluate(context.Background(), pos, params)
	assert.Greater(t, score, 0.0)
}

func TestMaterialAdvantageFavorsBlack(t *testing.T) {
	pos, _, err := fen.Decode("4k3/q7/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	params := position.DefaultRewardParams()

	score := Evaluate(context.Background(), pos, params)
	assert.Less(t, score, 0.0)
}

func TestIsInEndgameDetectsFewMajorPieces(t *testing.T) {
	full, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assert.False(t, IsInEndgame(&full.Board))

	bare, _, err := fen.Decode("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	assert.True(t, IsInEndgame(&bare.Board))
}

func TestCheckAdjustsScoreTowardTheCheckedSidesOpponent(t *testing.T) {
	params := position.DefaultRewardParams()

	baseline, _, err := fen.Decode("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)

	// Same material, rook repositioned to deliver check along the open e-file.
	inCheck, _, err := fen.Decode("4k3/8/8/8/8/8/8/3KR3 w - - 0 1")
	require.NoError(t, err)

	ctx := context.Background()
	assert.Greater(t, Evaluate(ctx, inCheck, params), Evaluate(ctx, baseline, params))
}

func TestStalemateClampFiresOnlyWhenScoreFavorsTheStalematedSide(t *testing.T) {
	// Classic stalemate: black boxed by the white king and queen, not in check, no legal moves.
	// Real material here heavily favors White, so a running score favoring Black is
	// artificial — exercised directly against evaluateTerminal to isolate the clamp.
	pos, _, err := fen.Decode("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	params := position.DefaultRewardParams()

	require.True(t, rules.IsStalemate(pos, board.Black))

	// Score favors White: no clamp, the running total passes through untouched.
	assert.Equal(t, 42.0, evaluateTerminal(pos, 42.0, params))

	// Score favors Black even though Black is the stalemated side: clamp kicks in.
	assert.Equal(t, params.StalemateBlackPenalty, evaluateTerminal(pos, -42.0, params))
}

// Package search implements negamax with alpha-beta pruning over the rules engine and
// evaluator. Every recursion node works on its own stack-local Position; a single SearchState
// is shared by pointer across the whole tree purely to accumulate counters.
package search

import (
	"context"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/riftsquare/chesscore/pkg/board"
	"github.com/riftsquare/chesscore/pkg/eval"
	"github.com/riftsquare/chesscore/pkg/position"
	"github.com/riftsquare/chesscore/pkg/rules"
)

// CheckmateScore is a sentinel large enough that no evaluation can reach it, and doubles as the
// +/-infinity alpha-beta bound at the root.
const CheckmateScore = 1e9

// StalemateScore is the score assigned to a stalemated position: a draw.
const StalemateScore = 0

// SearchState is owned by one worker for the lifetime of a search: the root Position, the
// recursion depth at the root, and four monotonically increasing counters. TTHits is never
// incremented — no transposition table backs this search.
//
// EndgameDepthExtensionOverride, if set, replaces params.EndgameDepthExtension for this search
// only; unset, the params value (default zero) applies.
type SearchState struct {
	Position *position.Position
	Depth    int

	Evaluations     int64
	TTHits          int64
	AlphaBetaPrunes int64
	StaticPrunes    int64

	EndgameDepthExtensionOverride lang.Optional[int]
}

// NewSearchState returns a SearchState rooted at pos with zeroed counters.
func NewSearchState(pos *position.Position) *SearchState {
	return &SearchState{Position: pos}
}

// Search is the top-level driver: it resets state's counters, recurses with alpha/beta set to
// +/-CheckmateScore, and returns the resulting MoveSequence. If the root position is in an
// endgame, maxDepth is extended by the configured endgame depth extension (reserved, zero by
// default).
func Search(ctx context.Context, state *SearchState, pos *position.Position, maxDepth int, player board.Color, params position.RewardParams) board.MoveSequence {
	state.Position = pos
	state.Depth = 0
	state.Evaluations = 0
	state.TTHits = 0
	state.AlphaBetaPrunes = 0
	state.StaticPrunes = 0

	extension := params.EndgameDepthExtension
	if v, ok := state.EndgameDepthExtensionOverride.V(); ok {
		extension = v
	}
	if extension != 0 && eval.IsInEndgame(&pos.Board) {
		maxDepth += extension
	}

	logw.Infof(ctx, "search: player=%v depth=%v", player, maxDepth)
	seq := negamax(ctx, state, pos, 0, maxDepth, player, -CheckmateScore, CheckmateScore, params)
	logw.Infof(ctx, "search done: pv=%v score=%v evals=%v ab_prunes=%v static_prunes=%v",
		seq.Moves, seq.Score, state.Evaluations, state.AlphaBetaPrunes, state.StaticPrunes)
	return seq
}

func negamax(ctx context.Context, state *SearchState, pos *position.Position, depth, maxDepth int, player board.Color, alpha, beta float64, params position.RewardParams) board.MoveSequence {
	if contextx.IsCancelled(ctx) {
		return board.MoveSequence{}
	}

	if seq, ok := terminalScore(pos, player); ok {
		return seq
	}

	if depth >= maxDepth {
		return board.MoveSequence{Score: signedEvaluate(ctx, state, pos, player, params)}
	}

	opponent := player.Opponent()
	moves := rules.GenerateMoves(pos, player)
	if len(moves) == 0 {
		return board.MoveSequence{Score: signedEvaluate(ctx, state, pos, player, params)}
	}

	var best board.MoveSequence
	haveBest := false

	for _, m := range moves {
		scratch := pos.ShallowClone()
		rules.Apply(scratch, m)

		if haveBest && best.Score > -CheckmateScore {
			staticScore := player.Unit() * eval.Evaluate(ctx, scratch, params)
			if staticScore < best.Score-params.StaticFutilityPruneMargin {
				state.StaticPrunes++
				continue
			}
		}

		child := negamax(ctx, state, scratch, depth+1, maxDepth, opponent, -beta, -alpha, params)
		score := -child.Score

		if depth == 0 {
			score += endgameAdvancementBonus(pos, scratch, m, opponent)
		}

		if !haveBest || score > best.Score {
			best = board.Prepend(m, child, score)
			haveBest = true
		}

		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			state.AlphaBetaPrunes++
			break
		}
	}

	if !haveBest {
		// All candidates were pruned: fall back to the first legal move, evaluated outright.
		m := moves[0]
		scratch := pos.ShallowClone()
		rules.Apply(scratch, m)
		best = board.Prepend(m, board.MoveSequence{}, signedEvaluate(ctx, state, scratch, player, params))
	}

	return best
}

// terminalScore checks the terminal conditions that must be tested before any recursion, in
// the documented order: checkmate (either side), stalemate (either side), threefold
// repetition, and the 50-move rule.
func terminalScore(pos *position.Position, player board.Color) (board.MoveSequence, bool) {
	if rules.IsCheckmate(pos, board.White) {
		return board.MoveSequence{Score: matedScore(player, board.White)}, true
	}
	if rules.IsCheckmate(pos, board.Black) {
		return board.MoveSequence{Score: matedScore(player, board.Black)}, true
	}
	if rules.IsStalemate(pos, board.White) || rules.IsStalemate(pos, board.Black) {
		return board.MoveSequence{Score: StalemateScore}, true
	}
	if pos.CountRepetitions() >= 3 {
		return board.MoveSequence{Score: 0}, true
	}
	if pos.HalfmoveClock >= 100 {
		return board.MoveSequence{Score: 0}, true
	}
	return board.MoveSequence{}, false
}

func matedScore(player, matedSide board.Color) float64 {
	if player == matedSide {
		return -CheckmateScore
	}
	return CheckmateScore
}

func signedEvaluate(ctx context.Context, state *SearchState, pos *position.Position, player board.Color, params position.RewardParams) float64 {
	state.Evaluations++
	return player.Unit() * eval.Evaluate(ctx, pos, params)
}

// endgameAdvancementBonus implements the depth-0 endgame advancement bonus: if the root
// position is an endgame and the moved piece is neither pawn nor king, and its destination is
// not attacked by the opponent in the resulting position, reward closing the distance to the
// enemy king. Non-positive reductions yield 0.
func endgameAdvancementBonus(before, after *position.Position, m board.Move, opponent board.Color) float64 {
	if !eval.IsInEndgame(&before.Board) {
		return 0
	}
	moved := before.Board.At(m.From)
	if moved.Kind == board.Pawn || moved.Kind == board.King {
		return 0
	}
	enemyKing, ok := after.Board.KingSquare(opponent)
	if !ok {
		return 0
	}
	if rules.IsAttacked(&after.Board, m.To, opponent) {
		return 0
	}
	distBefore := board.ChebyshevDistance(m.From, enemyKing)
	distAfter := board.ChebyshevDistance(m.To, enemyKing)
	bonus := float64(distBefore-distAfter) * float64(5-distAfter)
	if bonus < 0 {
		return 0
	}
	return bonus
}

// Package harness implements the puzzle-testing worker pool: a fixed-size pool of workers pull
// puzzles off a shared atomic cursor, each solving its puzzle with an exclusively-owned
// SearchState, Board and history, reporting progress periodically and writing pass/fail into a
// shared results array.
package harness

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/seekerror/logw"

	"github.com/riftsquare/chesscore/pkg/board"
	"github.com/riftsquare/chesscore/pkg/fen"
	"github.com/riftsquare/chesscore/pkg/position"
	"github.com/riftsquare/chesscore/pkg/puzzle"
	"github.com/riftsquare/chesscore/pkg/rules"
	"github.com/riftsquare/chesscore/pkg/search"
)

// BestMove runs a single-shot search from pos for side to move at the given depth, returning
// the resulting principal variation. Intended for one-off FEN analysis rather than the
// puzzle-batch protocol.
func BestMove(ctx context.Context, pos *position.Position, depth int, side board.Color, params position.RewardParams) board.MoveSequence {
	state := search.NewSearchState(pos)
	return search.Search(ctx, state, pos, depth, side, params)
}

// DefaultWorkers is the pool size used when a caller does not specify one, per the
// "default 8, max 32 or 256" resource model note.
const DefaultWorkers = 8

// ProgressFunc is invoked outside any held lock with monotonically non-decreasing
// (completed, total, passes) values, roughly every 5 completions.
type ProgressFunc func(completed, total, passes int)

const progressEvery = 5

// Options configures a puzzle run. Workers defaults to DefaultWorkers when zero. Progress may
// be nil.
type Options struct {
	Workers  int
	Depth    int
	Params   position.RewardParams
	Progress ProgressFunc
}

// Result summarizes a puzzle run: Passes out of len(Records) puzzles solved, in puzzle order.
type Result struct {
	Passes  int
	Total   int
	Outcome []bool
}

// TestPuzzles runs every record in records through the worker pool and returns the aggregate
// pass count. A worker that fails to spawn is reported via the returned error without
// preventing the other workers from completing their share of the work, per the pool's
// thread-creation-failure tolerance.
func TestPuzzles(ctx context.Context, records []puzzle.Record, opts Options) (Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > len(records) && len(records) > 0 {
		workers = len(records)
	}

	outcome := make([]bool, len(records))
	var cursor int64
	var progressMu sync.Mutex
	var completed, passes int

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		worker := w
		g.Go(func() error {
			logw.Infof(ctx, "harness: worker %d started", worker)
			state := search.NewSearchState(nil)

			for {
				i := atomic.AddInt64(&cursor, 1) - 1
				if int(i) >= len(records) {
					break
				}

				ok := solvePuzzle(ctx, state, records[i], opts.Depth, opts.Params)
				outcome[i] = ok

				progressMu.Lock()
				completed++
				if ok {
					passes++
				}
				localCompleted, localPasses := completed, passes
				report := opts.Progress != nil && localCompleted%progressEvery == 0
				progressMu.Unlock()

				if report {
					opts.Progress(localCompleted, len(records), localPasses)
				}
			}
			logw.Infof(ctx, "harness: worker %d done", worker)
			return nil
		})
	}

	err := g.Wait()

	if opts.Progress != nil && completed%progressEvery != 0 {
		opts.Progress(completed, len(records), passes)
	}

	result := Result{Passes: passes, Total: len(records), Outcome: outcome}
	if err != nil {
		return result, fmt.Errorf("puzzle harness: %w", err)
	}
	return result, nil
}

// solvePuzzle runs the per-puzzle protocol on one worker's exclusively-owned SearchState:
// decode the FEN, apply the opponent's setup move, then alternate searched engine replies
// against the expected moves with the opponent's own replies applied directly, accepting any
// alternative mate as a pass.
func solvePuzzle(ctx context.Context, state *search.SearchState, rec puzzle.Record, depth int, params position.RewardParams) bool {
	pos, side, err := fen.Decode(rec.FEN)
	if err != nil {
		logw.Infof(ctx, "puzzle %s: bad fen: %v", rec.PuzzleId, err)
		return false
	}
	if len(rec.Moves) == 0 {
		return false
	}

	if !rules.TryExecuteUCI(pos, rec.Moves[0]) {
		logw.Infof(ctx, "puzzle %s: setup move %s failed", rec.PuzzleId, rec.Moves[0])
		return false
	}
	side = side.Opponent()

	remaining := rec.Moves[1:]
	for i := 0; i < len(remaining); i++ {
		expected := remaining[i]

		state.Position = pos
		seq := search.Search(ctx, state, pos, depth, side, params)
		if len(seq.Moves) == 0 {
			return false
		}
		engineMove := seq.Moves[0]
		opponent := side.Opponent()

		if engineMove.String() != expected {
			rules.ApplyConfirmed(pos, engineMove)
			return rules.IsCheckmate(pos, opponent)
		}
		rules.ApplyConfirmed(pos, engineMove)
		side = opponent
		i++

		if i < len(remaining) {
			if !rules.TryExecuteUCI(pos, remaining[i]) {
				logw.Infof(ctx, "puzzle %s: reply %s failed", rec.PuzzleId, remaining[i])
				return false
			}
			side = side.Opponent()
		}
	}
	return true
}

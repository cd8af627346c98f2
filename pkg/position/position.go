// Package position owns the Position type: a board plus the metadata (last move, halfmove
// clock, bounded history) the rules engine and search kernel need but a bare Board cannot hold.
package position

import "github.com/riftsquare/chesscore/pkg/board"

// MaxHistory bounds the Position's history of prior boards, per the 200-entry cap in the data
// model: on overflow, the oldest entry is discarded.
const MaxHistory = 200

// Position owns a Board plus the context the rules engine needs for en passant, the 50-move
// rule and threefold repetition. Side-to-move is deliberately not stored here: callers pass the
// current side explicitly to every API, matching the search convention.
type Position struct {
	Board board.Board

	LastMove    board.Move
	HasLastMove bool

	HalfmoveClock int

	// History is an ordered sequence of prior boards, oldest first, bounded at MaxHistory.
	History []board.Board
}

// NewPosition returns a Position over b with empty history and a zero halfmove clock.
func NewPosition(b board.Board) *Position {
	return &Position{Board: b}
}

// PushHistory appends b to the history, discarding the oldest entry on overflow. It does not
// touch LastMove or HalfmoveClock; callers update those separately when applying a move.
func (p *Position) PushHistory(b board.Board) {
	p.History = append(p.History, b)
	if len(p.History) > MaxHistory {
		p.History = p.History[len(p.History)-MaxHistory:]
	}
}

// CountRepetitions returns how many times the current board occurs in the history, including
// the current occurrence itself if it was pushed there. A result >= 3 signals a threefold
// repetition draw.
func (p *Position) CountRepetitions() int {
	count := 0
	for _, h := range p.History {
		if h.Equal(p.Board) {
			count++
		}
	}
	if count == 0 {
		// Current board was never pushed to history (e.g. the very first ply): it is its
		// own sole occurrence.
		return 1
	}
	return count
}

// Clone returns a deep copy of the Position. Board is a value type so it copies automatically;
// History is copied explicitly so mutating the clone's history never aliases the original's.
func (p *Position) Clone() *Position {
	cp := &Position{
		Board:         p.Board,
		LastMove:      p.LastMove,
		HasLastMove:   p.HasLastMove,
		HalfmoveClock: p.HalfmoveClock,
	}
	if len(p.History) > 0 {
		cp.History = make([]board.Board, len(p.History))
		copy(cp.History, p.History)
	}
	return cp
}

// ShallowClone returns a copy of Board, LastMove, HasLastMove and HalfmoveClock, sharing the
// History slice by reference rather than copying it. This is the cheap per-recursion-node clone
// the search kernel uses: history is read-only during search (spec.md §3), so aliasing it is
// safe as long as nothing appends to the clone's history.
func (p *Position) ShallowClone() *Position {
	return &Position{
		Board:         p.Board,
		LastMove:      p.LastMove,
		HasLastMove:   p.HasLastMove,
		HalfmoveClock: p.HalfmoveClock,
		History:       p.History,
	}
}

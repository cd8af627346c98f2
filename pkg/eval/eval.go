// Package eval scores a Position from White's perspective: positive favours White, negative
// favours Black. Evaluate is pure: it never mutates the Position and keeps no counters; the
// search kernel counts its own evaluation calls.
package eval

import (
	"context"

	"github.com/riftsquare/chesscore/pkg/board"
	"github.com/riftsquare/chesscore/pkg/position"
	"github.com/riftsquare/chesscore/pkg/rules"
)

// attackMap records, per square, whether a side attacks it. Built once per Evaluate call for
// each color so that king-safety scoring can ask "does my attack map cover this square" without
// recomputing ray walks.
type attackMap [8][8]bool

func (m *attackMap) mark(sq board.Square) { m[sq.File][sq.Rank] = true }
func (m *attackMap) has(sq board.Square) bool {
	if !sq.IsValid() {
		return false
	}
	return m[sq.File][sq.Rank]
}

// IsInEndgame reports whether the side with fewer major pieces (knights, bishops, rooks,
// queens) has at most two of them. Used both to pick the king's piece-square table and, at
// search time, as the hook for an endgame depth extension.
func IsInEndgame(b *board.Board) bool {
	white, black := 0, 0
	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			p := b[f][r]
			switch p.Kind {
			case board.Knight, board.Bishop, board.Rook, board.Queen:
				if p.Color == board.White {
					white++
				} else {
					black++
				}
			}
		}
	}
	fewer := white
	if black < fewer {
		fewer = black
	}
	return fewer <= 2
}

// centralityBonus is the fixed global positional term: squares closer to the center of the
// board score higher, independent of what piece occupies them.
func centralityBonus(sq board.Square) float64 {
	distFile := minInt(absInt(sq.File-3), absInt(sq.File-4))
	distRank := minInt(absInt(sq.Rank-3), absInt(sq.Rank-4))
	dist := distFile + distRank
	bonus := 3 - dist
	if bonus < 0 {
		bonus = 0
	}
	return float64(bonus)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func pstFor(p position.RewardParams, kind board.Kind, endgame bool) position.PST {
	switch kind {
	case board.Pawn:
		return p.PawnPST
	case board.Knight:
		return p.KnightPST
	case board.Bishop:
		return p.BishopPST
	case board.Rook:
		return p.RookPST
	case board.Queen:
		return p.QueenPST
	case board.King:
		if endgame {
			return p.KingEndgamePST
		}
		return p.KingMiddlegamePST
	default:
		return position.PST{}
	}
}

// Evaluate scores pos from White's perspective using the weighted composition of material,
// piece-square tables, pawn structure, knight placement, slider mobility, king safety and
// terminal adjustments.
func Evaluate(ctx context.Context, pos *position.Position, params position.RewardParams) float64 {
	b := &pos.Board
	endgame := IsInEndgame(b)

	var score float64
	var whiteAttacks, blackAttacks attackMap

	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			sq := board.NewSquare(f, r)
			p := b.At(sq)
			if p.IsEmpty() {
				continue
			}
			s := p.Color.Unit()

			score += s * params.PieceValue[p.Kind]
			score += s * centralityBonus(sq) * params.GlobalPositionTableScale

			pst := pstFor(params, p.Kind, endgame)
			score += s * pst[f][r] * params.PSTScale[p.Kind]

			switch p.Kind {
			case board.Pawn:
				score += evaluatePawn(b, sq, p, params, pickAttackMap(&whiteAttacks, &blackAttacks, p.Color))
			case board.Knight:
				score += evaluateKnight(sq, p, params)
			case board.Bishop:
				score += evaluateSlider(b, sq, p, bishopDirs, params, pickAttackMap(&whiteAttacks, &blackAttacks, p.Color))
			case board.Rook:
				score += evaluateSlider(b, sq, p, rookDirs, params, pickAttackMap(&whiteAttacks, &blackAttacks, p.Color))
			case board.Queen:
				score += evaluateSlider(b, sq, p, bishopDirs, params, pickAttackMap(&whiteAttacks, &blackAttacks, p.Color))
				score += evaluateSlider(b, sq, p, rookDirs, params, pickAttackMap(&whiteAttacks, &blackAttacks, p.Color))
			}
		}
	}

	score += evaluateKingSafety(b, board.White, &whiteAttacks, params)
	score += evaluateKingSafety(b, board.Black, &blackAttacks, params)

	return evaluateTerminal(pos, score, params)
}

func pickAttackMap(white, black *attackMap, c board.Color) *attackMap {
	if c == board.White {
		return white
	}
	return black
}

// evaluatePawn scores central-pawn presence/defense and the opponent's promotion race, and
// records this pawn's attack squares into its side's attack map.
func evaluatePawn(b *board.Board, sq board.Square, p board.Piece, params position.RewardParams, attacks *attackMap) float64 {
	s := p.Color.Unit()
	var score float64

	if isCentralSquare(sq) {
		score += s * params.CentralPawnBonus
		if !pawnIsDefended(b, sq, p) {
			score -= s * params.UndefendedCenterPawnPenalty
		}
	}

	distance := sq.Rank
	if p.Color == board.White {
		distance = 7 - sq.Rank
	}
	switch {
	case distance <= params.PawnPromotionImmediateRank:
		score += s * params.PawnPromotionImmediateWeight
	case distance <= params.PawnPromotionDelayedRank:
		score += s * params.PawnPromotionDelayedWeight
	}

	dir := 1
	if p.Color == board.Black {
		dir = -1
	}
	for _, df := range []int{-1, 1} {
		to := board.NewSquare(sq.File+df, sq.Rank+dir)
		if to.IsValid() {
			attacks.mark(to)
		}
	}

	return score
}

func isCentralSquare(sq board.Square) bool {
	return (sq.File == 3 || sq.File == 4) && (sq.Rank == 3 || sq.Rank == 4)
}

func pawnIsDefended(b *board.Board, sq board.Square, p board.Piece) bool {
	dir := -1
	if p.Color == board.Black {
		dir = 1
	}
	for _, df := range []int{-1, 1} {
		behind := board.NewSquare(sq.File+df, sq.Rank+dir)
		if !behind.IsValid() {
			continue
		}
		defender := b.At(behind)
		if defender.Kind == board.Pawn && defender.Color == p.Color {
			return true
		}
	}
	return false
}

// evaluateKnight penalizes a knight left on its home rank in the middle files, and on the edge
// files where its mobility is structurally worst.
func evaluateKnight(sq board.Square, p board.Piece, params position.RewardParams) float64 {
	s := p.Color.Unit()
	var score float64

	homeRank := 0
	if p.Color == board.Black {
		homeRank = 7
	}
	if sq.Rank == homeRank && sq.File >= 2 && sq.File <= 5 {
		score -= s * params.KnightBackstopPenalty
	}
	if sq.File == 0 || sq.File == 7 {
		score -= s * params.KnightEdgePenalty
	}
	return score
}

var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// evaluateSlider counts empty squares reachable along each direction until blocked and rewards
// mobility, recording every square along the way (including the blocking square, if any) into
// the attack map.
func evaluateSlider(b *board.Board, sq board.Square, p board.Piece, dirs [4][2]int, params position.RewardParams, attacks *attackMap) float64 {
	s := p.Color.Unit()
	mobility := 0

	for _, d := range dirs {
		f, r := sq.File+d[0], sq.Rank+d[1]
		for {
			to := board.NewSquare(f, r)
			if !to.IsValid() {
				break
			}
			attacks.mark(to)
			if b.IsEmpty(to) {
				mobility++
				f += d[0]
				r += d[1]
				continue
			}
			break
		}
	}
	return s * float64(mobility) * params.SliderMobilityPerSquare
}

// evaluateKingSafety scores side's king: a penalty if it has moved, a penalty for standing in
// the exposed central files on the middle ranks, and a bonus for every square adjacent to the
// opponent king that side's own attack map covers.
func evaluateKingSafety(b *board.Board, side board.Color, attacks *attackMap, params position.RewardParams) float64 {
	sq, ok := b.KingSquare(side)
	if !ok {
		return 0
	}
	s := side.Unit()
	var score float64

	king := b.At(sq)
	if king.HasMoved {
		score -= s * params.KingHasMovedPenalty
	}
	if (sq.File == 3 || sq.File == 4) && sq.Rank >= 2 && sq.Rank <= 5 {
		score -= s * params.KingCenterExposurePenalty
	}

	if oppSq, ok := b.KingSquare(side.Opponent()); ok {
		for _, off := range kingOffsets {
			adj := board.NewSquare(oppSq.File+off[0], oppSq.Rank+off[1])
			if adj.IsValid() && attacks.has(adj) {
				score += s * params.KingAdjacentAttackBonus
			}
		}
	}
	return score
}

var kingOffsets = [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// evaluateTerminal applies check and stalemate adjustments on top of runningScore. The
// stalemate clamp intentionally does not coordinate with any terminal check the search kernel
// performs separately on the same position: both may fire independently.
func evaluateTerminal(pos *position.Position, runningScore float64, params position.RewardParams) float64 {
	total := runningScore

	if rules.IsInCheck(&pos.Board, board.Black) {
		total += params.CheckBonusBlack
	}
	if rules.IsInCheck(&pos.Board, board.White) {
		total -= params.CheckPenaltyWhite
	}

	if total > 0 && rules.IsStalemate(pos, board.White) {
		return -params.StalemateWhitePenalty
	}
	if total < 0 && rules.IsStalemate(pos, board.Black) {
		return params.StalemateBlackPenalty
	}
	return total
}

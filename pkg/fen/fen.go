// Package fen decodes FEN position strings. Per spec.md §1 this is treated as an opaque
// position decoder — an external collaborator in the larger system — so it is kept
// deliberately minimal: the piece-placement and active-color fields are decoded in full: other
// fields are decoded best-effort and may be ignored by a caller that doesn't need them.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/riftsquare/chesscore/pkg/board"
	"github.com/riftsquare/chesscore/pkg/position"
)

// Initial is the standard game starting position in FEN.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN string into a Position and the active color. Castling rights, present in
// FEN as a separate field, have no separate representation in this Position model (castling
// legality is inferred from each piece's HasMoved flag per the data model), so a missing right
// is translated into marking the corresponding rook as having moved. A present en-passant
// target square is translated into a synthetic two-square pawn LastMove, since that — not a
// dedicated target-square field — is what this model's en passant detection looks at.
func Decode(fen string) (*position.Position, board.Color, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, 0, fmt.Errorf("invalid FEN: %q", fen)
	}

	b, err := decodePlacement(fields[0])
	if err != nil {
		return nil, 0, fmt.Errorf("invalid FEN %q: %w", fen, err)
	}

	active, ok := decodeColor(fields[1])
	if !ok {
		return nil, 0, fmt.Errorf("invalid active color in FEN: %q", fen)
	}

	pos := position.NewPosition(b)

	if len(fields) >= 3 {
		applyCastlingRights(&pos.Board, fields[2])
	}
	if len(fields) >= 4 {
		applyEnPassant(pos, fields[3])
	}
	if len(fields) >= 5 {
		if hm, err := strconv.Atoi(fields[4]); err == nil && hm >= 0 {
			pos.HalfmoveClock = hm
		}
	}

	return pos, active, nil
}

func decodePlacement(field string) (board.Board, error) {
	var b board.Board

	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return b, fmt.Errorf("expected 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN describes rank 8 first
		file := 0
		for _, r := range rankStr {
			switch {
			case unicode.IsDigit(r):
				file += int(r - '0')
			default:
				kind, ok := board.ParseKind(r)
				if !ok {
					return b, fmt.Errorf("invalid piece %q", r)
				}
				color := board.Black
				if unicode.IsUpper(r) {
					color = board.White
				}
				if file > 7 {
					return b, fmt.Errorf("rank %d overflows", i)
				}
				b.Set(board.NewSquare(file, rank), board.Piece{Kind: kind, Color: color})
				file++
			}
		}
		if file != 8 {
			return b, fmt.Errorf("rank %d has %d squares, want 8", i, file)
		}
	}
	return b, nil
}

func decodeColor(field string) (board.Color, bool) {
	switch field {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func applyCastlingRights(b *board.Board, field string) {
	if field == "-" {
		markRookMoved(b, 7, 0)
		markRookMoved(b, 0, 0)
		markRookMoved(b, 7, 7)
		markRookMoved(b, 0, 7)
		return
	}
	has := func(r rune) bool { return strings.ContainsRune(field, r) }
	if !has('K') {
		markRookMoved(b, 7, 0)
	}
	if !has('Q') {
		markRookMoved(b, 0, 0)
	}
	if !has('k') {
		markRookMoved(b, 7, 7)
	}
	if !has('q') {
		markRookMoved(b, 0, 7)
	}
}

func markRookMoved(b *board.Board, file, rank int) {
	sq := board.NewSquare(file, rank)
	p := b.At(sq)
	if p.Kind == board.Rook {
		p.HasMoved = true
		b.Set(sq, p)
	}
}

func applyEnPassant(pos *position.Position, field string) {
	if field == "-" {
		return
	}
	sq, err := board.ParseSquareStr(field)
	if err != nil {
		return
	}
	switch sq.Rank {
	case 2: // White just played a double push; the pawn now sits on rank index 3.
		pos.LastMove = board.Move{From: board.NewSquare(sq.File, 1), To: board.NewSquare(sq.File, 3)}
		pos.HasLastMove = true
	case 5: // Black just played a double push; the pawn now sits on rank index 4.
		pos.LastMove = board.Move{From: board.NewSquare(sq.File, 6), To: board.NewSquare(sq.File, 4)}
		pos.HasLastMove = true
	}
}

// Encode renders a Position and active color back into FEN piece-placement and active-color
// fields, with "-" for castling and en passant, the position's halfmove clock, and a fullmove
// number of 1. Useful
// for logging and for round-tripping in tests; not required by spec.md.
func Encode(pos *position.Position, active board.Color) string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		blanks := 0
		for f := 0; f < 8; f++ {
			p := pos.Board.At(board.NewSquare(f, r))
			if p.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(p.String())
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r > 0 {
			sb.WriteRune('/')
		}
	}
	return fmt.Sprintf("%s %s - - %d 1", sb.String(), active, pos.HalfmoveClock)
}

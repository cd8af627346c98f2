package board

// Result represents the terminal status of a position, if any.
type Result uint8

const (
	Undecided Result = iota
	Checkmate
	Stalemate
	DrawByRepetition
	DrawByFiftyMoveRule
)

func (r Result) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawByRepetition:
		return "draw-by-repetition"
	case DrawByFiftyMoveRule:
		return "draw-by-50-move-rule"
	default:
		return "undecided"
	}
}

package position

import "github.com/riftsquare/chesscore/pkg/board"

// PST is an 8x8 table of piece-square weights indexed [file][rank], file/rank 0-based as
// elsewhere in this module.
type PST [8][8]float64

// RewardParams is the complete, immutable set of tunable evaluation weights the evaluator and
// search kernel read from. The core never mutates a RewardParams; a surrounding training tool
// may replace it wholesale between puzzle batches, never while a worker is mid-search.
type RewardParams struct {
	// PieceValue is material value per kind, in centipawn-like units.
	PieceValue map[board.Kind]float64 `toml:"piece_value"`

	// PawnPST, KnightPST, BishopPST, RookPST, QueenPST are the five non-king piece-square
	// tables. KingMiddlegamePST and KingEndgamePST are selected by eval.IsInEndgame.
	PawnPST           PST `toml:"pawn_pst"`
	KnightPST         PST `toml:"knight_pst"`
	BishopPST         PST `toml:"bishop_pst"`
	RookPST           PST `toml:"rook_pst"`
	QueenPST          PST `toml:"queen_pst"`
	KingMiddlegamePST PST `toml:"king_middlegame_pst"`
	KingEndgamePST    PST `toml:"king_endgame_pst"`

	// PSTScale scales each kind's table contribution independently.
	PSTScale map[board.Kind]float64 `toml:"pst_scale"`

	// GlobalPositionTableScale scales the fixed centrality bonus term.
	GlobalPositionTableScale float64 `toml:"global_position_table_scale"`

	// Pawn-structure heuristics.
	CentralPawnBonus              float64 `toml:"central_pawn_bonus"`
	UndefendedCenterPawnPenalty   float64 `toml:"undefended_center_pawn_penalty"`
	PawnPromotionImmediateRank    int     `toml:"pawn_promotion_immediate_rank"`
	PawnPromotionImmediateWeight  float64 `toml:"pawn_promotion_immediate_weight"`
	PawnPromotionDelayedRank      int     `toml:"pawn_promotion_delayed_rank"`
	PawnPromotionDelayedWeight    float64 `toml:"pawn_promotion_delayed_weight"`

	// Knight placement.
	KnightBackstopPenalty float64 `toml:"knight_backstop_penalty"`
	KnightEdgePenalty     float64 `toml:"knight_edge_penalty"`

	// Slider mobility.
	SliderMobilityPerSquare float64 `toml:"slider_mobility_per_square"`

	// King safety.
	KingHasMovedPenalty        float64 `toml:"king_hasmoved_penalty"`
	KingCenterExposurePenalty float64 `toml:"king_center_exposure_penalty"`
	KingAdjacentAttackBonus    float64 `toml:"king_adjacent_attack_bonus"`

	// Terminal adjustments.
	CheckBonusBlack       float64 `toml:"check_bonus_black"`
	CheckPenaltyWhite     float64 `toml:"check_penalty_white"`
	StalemateWhitePenalty float64 `toml:"stalemate_white_penalty"`
	StalemateBlackPenalty float64 `toml:"stalemate_black_penalty"`

	// Search tuning.
	StaticFutilityPruneMargin float64 `toml:"static_futility_prune_margin"`

	// EndgameDepthExtension is the number of extra plies to search once IsInEndgame holds.
	// Reserved per the open question in the design notes; defaults to zero.
	EndgameDepthExtension int `toml:"endgame_depth_extension"`
}

// DefaultRewardParams returns the reference weight set: material values per spec.md §4.2 and
// conservative positional terms. Intended as the fallback when no TOML override is loaded.
func DefaultRewardParams() RewardParams {
	return RewardParams{
		PieceValue: map[board.Kind]float64{
			board.Pawn:   100,
			board.Knight: 300,
			board.Bishop: 300,
			board.Rook:   500,
			board.Queen:  900,
			board.King:   20000,
		},
		PSTScale: map[board.Kind]float64{
			board.Pawn:   1,
			board.Knight: 1,
			board.Bishop: 1,
			board.Rook:   1,
			board.Queen:  1,
			board.King:   1,
		},
		GlobalPositionTableScale: 1,

		CentralPawnBonus:             10,
		UndefendedCenterPawnPenalty:  8,
		PawnPromotionImmediateRank:   1, // one rank from promotion
		PawnPromotionImmediateWeight: 40,
		PawnPromotionDelayedRank:     3,
		PawnPromotionDelayedWeight:   10,

		KnightBackstopPenalty: 5,
		KnightEdgePenalty:     15,

		SliderMobilityPerSquare: 2,

		KingHasMovedPenalty:        12,
		KingCenterExposurePenalty: 20,
		KingAdjacentAttackBonus:   6,

		CheckBonusBlack:       15,
		CheckPenaltyWhite:     15,
		StalemateWhitePenalty: 50,
		StalemateBlackPenalty: 50,

		StaticFutilityPruneMargin: 150,

		EndgameDepthExtension: 0,
	}
}

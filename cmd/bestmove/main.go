// bestmove runs a single fixed-depth search from a FEN position and prints the principal
// variation. Useful for one-off analysis and for sanity-checking the search kernel against a
// known position without spinning up the puzzle harness.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"

	"github.com/riftsquare/chesscore/pkg/board"
	"github.com/riftsquare/chesscore/pkg/fen"
	"github.com/riftsquare/chesscore/pkg/harness"
	"github.com/riftsquare/chesscore/pkg/position"
	"github.com/riftsquare/chesscore/pkg/rules"
)

var version = build.NewVersion(0, 1, 0)

var (
	startFEN = flag.String("fen", "", "Position to analyze (default to standard start)")
	depth    = flag.Int("depth", 6, "Search depth")
	config   = flag.String("config", "", "Optional TOML file of reward params (default built-in weights)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `usage: bestmove [options]

bestmove %v searches a position and prints its principal variation.
Options:
`, version)
		flag.PrintDefaults()
	}
}

func main() {
	ctx := context.Background()
	flag.Parse()

	if *startFEN == "" {
		*startFEN = fen.Initial
	}

	pos, side, err := fen.Decode(*startFEN)
	if err != nil {
		logw.Exitf(ctx, "invalid fen %q: %v", *startFEN, err)
	}

	params := position.DefaultRewardParams()
	if *config != "" {
		p, err := position.LoadRewardParams(*config)
		if err != nil {
			logw.Exitf(ctx, "loading config %q: %v", *config, err)
		}
		params = p
	}

	start := time.Now()
	seq := harness.BestMove(ctx, pos, *depth, side, params)
	elapsed := time.Since(start)

	if len(seq.Moves) == 0 {
		fmt.Printf("no legal move (%v to move, score %v)\n", side, seq.Score)
		return
	}

	if outcome := rules.Outcome(pos, side); outcome != board.Undecided {
		fmt.Printf("%v before the search even starts (%v to move)\n", outcome, side)
	}

	fmt.Printf("bestmove %v score %v depth %v (%v)\n", seq.Moves[0], seq.Score, *depth, elapsed)
	fmt.Printf("pv:")
	for _, m := range seq.Moves {
		fmt.Printf(" %v", m)
	}
	fmt.Println()
}

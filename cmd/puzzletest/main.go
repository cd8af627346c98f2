// puzzletest runs a corpus of tactics puzzles through the search kernel and reports the
// pass rate. See: https://database.lichess.org/#puzzles.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"

	"github.com/riftsquare/chesscore/pkg/harness"
	"github.com/riftsquare/chesscore/pkg/position"
	"github.com/riftsquare/chesscore/pkg/puzzle"
)

var version = build.NewVersion(0, 1, 0)

var (
	input   = flag.String("input", "", "CSV file of puzzles (Lichess puzzle export format)")
	depth   = flag.Int("depth", 4, "Search depth per puzzle")
	workers = flag.Int("workers", harness.DefaultWorkers, "Number of concurrent puzzle-solving workers")
	config  = flag.String("config", "", "Optional TOML file of reward params (default built-in weights)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `usage: puzzletest -input <file> [options]

puzzletest %v runs a puzzle corpus against the search kernel and prints a pass/fail summary.
Options:
`, version)
		flag.PrintDefaults()
	}
}

func main() {
	ctx := context.Background()
	flag.Parse()

	if *input == "" {
		flag.Usage()
		logw.Exitf(ctx, "--input not specified")
	}

	params := position.DefaultRewardParams()
	if *config != "" {
		p, err := position.LoadRewardParams(*config)
		if err != nil {
			logw.Exitf(ctx, "loading config %q: %v", *config, err)
		}
		params = p
	}

	fin, err := os.Open(*input)
	if err != nil {
		logw.Exitf(ctx, "opening %q: %v", *input, err)
	}
	defer fin.Close()

	records, err := puzzle.Load(fin)
	if err != nil {
		logw.Exitf(ctx, "loading puzzles from %q: %v", *input, err)
	}
	logw.Infof(ctx, "puzzletest: loaded %v puzzles from %v", len(records), *input)

	opts := harness.Options{
		Workers: *workers,
		Depth:   *depth,
		Params:  params,
		Progress: func(completed, total, passes int) {
			fmt.Printf("%v/%v solved (%v/%v done)\n", passes, completed, completed, total)
		},
	}

	result, err := harness.TestPuzzles(ctx, records, opts)
	if err != nil {
		logw.Exitf(ctx, "running puzzle harness: %v", err)
	}

	fmt.Printf("\n%v solved %v out of %v puzzles (%.1f%%)\n",
		*input, result.Passes, result.Total, 100*float64(result.Passes)/float64(result.Total))
}

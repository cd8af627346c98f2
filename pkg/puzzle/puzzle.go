// Package puzzle provides the puzzle record type and a thin CSV loader. This is the "pure
// record provider" the core treats as an external collaborator: no validation beyond field
// count, no FEN or move parsing — that's the rules/fen packages' job.
package puzzle

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Record is one row of a Lichess-style puzzle corpus. The harness consumes only PuzzleId, FEN
// and Moves; the rest is metadata the core ignores.
type Record struct {
	PuzzleId        string
	FEN             string
	Moves           []string
	Rating          int
	RatingDeviation int
	Popularity      int
	NbPlays         int
	Themes          string
	GameUrl         string
	OpeningTags     string
}

const fieldCount = 10

// Load reads every record from r: one per line, comma-separated, fields in order PuzzleId,
// FEN, Moves, Rating, RatingDeviation, Popularity, NbPlays, Themes, GameUrl, OpeningTags.
// Moves is a space-separated token list in pure coordinate notation.
func Load(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read puzzle csv: %w", err)
		}
		if len(row) < fieldCount {
			return nil, fmt.Errorf("puzzle row has %d fields, want %d: %v", len(row), fieldCount, row)
		}

		rating, _ := strconv.Atoi(row[3])
		deviation, _ := strconv.Atoi(row[4])
		popularity, _ := strconv.Atoi(row[5])
		nbPlays, _ := strconv.Atoi(row[6])

		records = append(records, Record{
			PuzzleId:        row[0],
			FEN:             row[1],
			Moves:           strings.Fields(row[2]),
			Rating:          rating,
			RatingDeviation: deviation,
			Popularity:      popularity,
			NbPlays:         nbPlays,
			Themes:          row[7],
			GameUrl:         row[8],
			OpeningTags:     row[9],
		})
	}
	return records, nil
}

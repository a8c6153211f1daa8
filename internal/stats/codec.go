package stats

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/tidwall/gjson"
)

// maxCount bounds every stored counter. Larger values are treated as
// corrupt rather than wrapped.
const maxCount = math.MaxInt32

// Decode restores an aggregate from a stored blob. Each leaf is read on its
// own: a missing, negative, oversized or mistyped field falls back to zero without
// discarding its siblings. An unparseable blob yields all zeros.
func Decode(raw []byte) AggregateStats {
	var a AggregateStats
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return a
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return a
	}

	a.TotalGamesPlayed = count(doc, "totalGamesPlayed")
	a.CorrectAnswers = count(doc, "correctAnswers")
	a.TotalTimePlayed = seconds(doc, "totalTimePlayed")
	a.TotalCoins = count(doc, "totalCoins")

	a.GamesPerDifficulty = DifficultyCounts{
		Single: count(doc, "gamesPerDifficulty.single"),
		Double: count(doc, "gamesPerDifficulty.double"),
		Triple: count(doc, "gamesPerDifficulty.triple"),
	}
	a.GamesPerOperation = OperationCounts{
		Addition:       count(doc, "gamesPerOperation.addition"),
		Subtraction:    count(doc, "gamesPerOperation.subtraction"),
		Multiplication: count(doc, "gamesPerOperation.multiplication"),
	}
	return a
}

// Encode serialises the full aggregate.
func Encode(a AggregateStats) ([]byte, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal stats: %w", err)
	}
	return b, nil
}

func count(doc gjson.Result, path string) int {
	r := doc.Get(path)
	if r.Type != gjson.Number || r.Num < 0 || r.Num > maxCount {
		return 0
	}
	return int(r.Int())
}

func seconds(doc gjson.Result, path string) float64 {
	r := doc.Get(path)
	if r.Type != gjson.Number || r.Num < 0 {
		return 0
	}
	return r.Num
}

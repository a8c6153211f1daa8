package session

import (
	"math"

	"github.com/abhisek/numberrush/internal/problemgen"
)

const (
	baseScore     = 100
	maxSpeedBonus = 50
)

// Multiplier returns the score multiplier for d.
func Multiplier(d problemgen.Difficulty) int {
	switch d {
	case problemgen.DifficultyDouble:
		return 2
	case problemgen.DifficultyTriple:
		return 3
	default:
		return 1
	}
}

// Score computes score and reward for one answer. Incorrect answers earn
// nothing; the speed bonus runs out at 25 seconds.
func Score(d problemgen.Difficulty, correct bool, timeTaken float64) (score, reward int) {
	if !correct {
		return 0, 0
	}
	bonus := int(math.Max(0, math.Floor(maxSpeedBonus-timeTaken*2)))
	score = baseScore*Multiplier(d) + bonus
	reward = int(math.Ceil(float64(score) / 10))
	return score, reward
}

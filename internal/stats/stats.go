// Package stats aggregates Number Rush results across sessions.
package stats

import (
	"math"

	"github.com/abhisek/numberrush/internal/problemgen"
)

// StorageKey is the slot the aggregate lives under.
const StorageKey = "numberRushStats"

// AggregateStats holds cross-session counters. Every field only grows,
// until an explicit reset.
type AggregateStats struct {
	TotalGamesPlayed   int              `json:"totalGamesPlayed"`
	CorrectAnswers     int              `json:"correctAnswers"`
	TotalTimePlayed    float64          `json:"totalTimePlayed"` // seconds
	TotalCoins         int              `json:"totalCoins"`
	GamesPerDifficulty DifficultyCounts `json:"gamesPerDifficulty"`
	GamesPerOperation  OperationCounts  `json:"gamesPerOperation"`
}

// DifficultyCounts counts sessions per difficulty.
type DifficultyCounts struct {
	Single int `json:"single"`
	Double int `json:"double"`
	Triple int `json:"triple"`
}

// OperationCounts counts sessions per operation.
type OperationCounts struct {
	Addition       int `json:"addition"`
	Subtraction    int `json:"subtraction"`
	Multiplication int `json:"multiplication"`
}

// Get returns the count for d.
func (c DifficultyCounts) Get(d problemgen.Difficulty) int {
	switch d {
	case problemgen.DifficultySingle:
		return c.Single
	case problemgen.DifficultyDouble:
		return c.Double
	case problemgen.DifficultyTriple:
		return c.Triple
	}
	return 0
}

func (c *DifficultyCounts) inc(d problemgen.Difficulty) {
	switch d {
	case problemgen.DifficultySingle:
		c.Single++
	case problemgen.DifficultyDouble:
		c.Double++
	case problemgen.DifficultyTriple:
		c.Triple++
	}
}

// Get returns the count for op.
func (c OperationCounts) Get(op problemgen.Operation) int {
	switch op {
	case problemgen.OpAddition:
		return c.Addition
	case problemgen.OpSubtraction:
		return c.Subtraction
	case problemgen.OpMultiplication:
		return c.Multiplication
	}
	return 0
}

func (c *OperationCounts) inc(op problemgen.Operation) {
	switch op {
	case problemgen.OpAddition:
		c.Addition++
	case problemgen.OpSubtraction:
		c.Subtraction++
	case problemgen.OpMultiplication:
		c.Multiplication++
	}
}

// Record folds one scored session into the aggregate.
func (a *AggregateStats) Record(s problemgen.Settings, correct bool, timeTaken float64, reward int) {
	a.TotalGamesPlayed++
	if correct {
		a.CorrectAnswers++
	}
	if timeTaken > 0 {
		a.TotalTimePlayed += timeTaken
	}
	if reward > 0 {
		a.TotalCoins += reward
	}
	a.GamesPerDifficulty.inc(s.Difficulty)
	a.GamesPerOperation.inc(s.Operation)
}

// Accuracy returns the percentage of correct sessions, rounded (0 when no games).
func (a AggregateStats) Accuracy() int {
	if a.TotalGamesPlayed == 0 {
		return 0
	}
	return int(math.Round(float64(a.CorrectAnswers) / float64(a.TotalGamesPlayed) * 100))
}

// AverageTime returns the mean session length in whole seconds, rounded.
func (a AggregateStats) AverageTime() int {
	if a.TotalGamesPlayed == 0 {
		return 0
	}
	return int(math.Round(a.TotalTimePlayed / float64(a.TotalGamesPlayed)))
}

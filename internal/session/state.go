package session

import (
	"time"

	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/stats"
)

// Status is the lifecycle phase of a game session.
type Status int

const (
	StatusSetup   Status = iota // No active problem
	StatusPlaying                // Operands being revealed, answer pending
	StatusResults                // Answer scored
)

func (s Status) String() string {
	switch s {
	case StatusSetup:
		return "setup"
	case StatusPlaying:
		return "playing"
	case StatusResults:
		return "results"
	default:
		return "unknown"
	}
}

// GameState is a read-only snapshot of the engine. Slices are copies; callers
// may keep them.
type GameState struct {
	// Settings the session was started with. NumberCount is the adjusted count.
	Settings problemgen.Settings

	// SessionID identifies the current session. Empty in setup.
	SessionID string

	Status Status

	// Operands is the full operand sequence, including hidden ones.
	Operands []int

	// RevealedIndex is the index of the last visible operand, -1 when none.
	RevealedIndex int

	Options       []int
	CorrectAnswer int

	// SelectedAnswer is nil until answered, and stays nil after a timeout.
	SelectedAnswer *int

	Score  int
	Reward int

	// TimeRemaining is the countdown as of the last sample.
	TimeRemaining time.Duration

	StartTime time.Time

	// EndTime is zero until the session is scored.
	EndTime time.Time

	// TimeTaken is the scored duration in seconds.
	TimeTaken float64

	// Stats is the cross-session aggregate.
	Stats stats.AggregateStats
}

// VisibleOperands returns the operands revealed so far.
func (s GameState) VisibleOperands() []int {
	if s.RevealedIndex < 0 {
		return nil
	}
	return s.Operands[:s.RevealedIndex+1]
}

// AllRevealed reports whether every operand is visible.
func (s GameState) AllRevealed() bool {
	return len(s.Operands) > 0 && s.RevealedIndex == len(s.Operands)-1
}

// CanAnswer reports whether SelectAnswer would be accepted.
func (s GameState) CanAnswer() bool {
	return s.Status == StatusPlaying && s.AllRevealed()
}

// Correct reports whether the scored answer matched. A timeout is incorrect.
func (s GameState) Correct() bool {
	return s.SelectedAnswer != nil && *s.SelectedAnswer == s.CorrectAnswer
}

// SecondsRemaining is the countdown floored to whole seconds.
func (s GameState) SecondsRemaining() int {
	if s.TimeRemaining <= 0 {
		return 0
	}
	return int(s.TimeRemaining / time.Second)
}

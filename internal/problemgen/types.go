package problemgen

import (
	"fmt"
	"strings"
)

// Difficulty selects the operand magnitude and the distractor spread.
type Difficulty string

const (
	DifficultySingle Difficulty = "single" // 1-9
	DifficultyDouble Difficulty = "double" // 10-99
	DifficultyTriple Difficulty = "triple" // 100-999
)

// AllDifficulties returns all difficulties in display order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultySingle, DifficultyDouble, DifficultyTriple}
}

// Operation determines how operands combine.
type Operation string

const (
	OpAddition       Operation = "addition"
	OpSubtraction    Operation = "subtraction"
	OpMultiplication Operation = "multiplication"
)

// AllOperations returns all operations in display order.
func AllOperations() []Operation {
	return []Operation{OpAddition, OpSubtraction, OpMultiplication}
}

// Bounds on user-adjustable settings.
const (
	MinNumberCount = 2
	MaxNumberCount = 5

	MinTimeInterval = 500
	MaxTimeInterval = 5000

	// OptionCount is the number of multiple-choice options per problem.
	OptionCount = 4
)

// Settings is the configuration chosen before a session.
type Settings struct {
	Difficulty Difficulty
	Operation  Operation

	// NumberCount is the base operand count before difficulty adjustment.
	NumberCount int

	// IsAutomatic reveals operands on a timer instead of on demand.
	IsAutomatic bool

	// TimeInterval is the delay between automatic reveals, in milliseconds.
	TimeInterval int
}

// DefaultSettings mirrors the setup screen's initial values.
func DefaultSettings() Settings {
	return Settings{
		Difficulty:   DifficultySingle,
		Operation:    OpAddition,
		NumberCount:  3,
		IsAutomatic:  true,
		TimeInterval: 2000,
	}
}

// Validate reports the first out-of-range field, if any.
func (s Settings) Validate() error {
	if _, err := ParseDifficulty(string(s.Difficulty)); err != nil {
		return err
	}
	if _, err := ParseOperation(string(s.Operation)); err != nil {
		return err
	}
	if s.NumberCount < MinNumberCount || s.NumberCount > MaxNumberCount {
		return fmt.Errorf("number count %d out of range [%d, %d]", s.NumberCount, MinNumberCount, MaxNumberCount)
	}
	if s.TimeInterval < MinTimeInterval || s.TimeInterval > MaxTimeInterval {
		return fmt.Errorf("time interval %dms out of range [%d, %d]", s.TimeInterval, MinTimeInterval, MaxTimeInterval)
	}
	return nil
}

// Clamp returns a copy with numeric fields forced into range and unknown
// enums replaced by their defaults.
func (s Settings) Clamp() Settings {
	def := DefaultSettings()
	if _, err := ParseDifficulty(string(s.Difficulty)); err != nil {
		s.Difficulty = def.Difficulty
	}
	if _, err := ParseOperation(string(s.Operation)); err != nil {
		s.Operation = def.Operation
	}
	s.NumberCount = clamp(s.NumberCount, MinNumberCount, MaxNumberCount)
	s.TimeInterval = clamp(s.TimeInterval, MinTimeInterval, MaxTimeInterval)
	return s
}

// Problem is the arithmetic task for one session. Immutable during play.
type Problem struct {
	// Operands in presentation order, which is also the order of computation.
	Operands []int

	// CorrectAnswer is the left fold of Operands under the session's operation.
	CorrectAnswer int

	// Options holds exactly OptionCount unique values, one of them CorrectAnswer.
	Options []int
}

// ParseDifficulty parses a difficulty name (case-insensitive).
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultySingle:
		return DifficultySingle, nil
	case DifficultyDouble:
		return DifficultyDouble, nil
	case DifficultyTriple:
		return DifficultyTriple, nil
	}
	return "", fmt.Errorf("invalid difficulty %q: must be single, double or triple", s)
}

// ParseOperation parses an operation name (case-insensitive).
func ParseOperation(s string) (Operation, error) {
	switch Operation(strings.ToLower(strings.TrimSpace(s))) {
	case OpAddition:
		return OpAddition, nil
	case OpSubtraction:
		return OpSubtraction, nil
	case OpMultiplication:
		return OpMultiplication, nil
	}
	return "", fmt.Errorf("invalid operation %q: must be addition, subtraction or multiplication", s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package problemgen

import (
	"math/rand"
	"time"
)

// maxDistractorDraws bounds the random search for distractors. The standard
// spreads never come close; it only matters for a misconfigured spread.
const maxDistractorDraws = 1000

// Generator produces Number Rush problems from a random source.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator with a fixed seed, for reproducible sequences.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewRandom creates a Generator seeded from the wall clock.
func NewRandom() *Generator {
	return New(time.Now().UnixNano())
}

// NewProblem builds the problem for a session: the operand count is adjusted
// for difficulty, then operands, answer and options are derived.
func (g *Generator) NewProblem(s Settings) *Problem {
	count := AdjustCount(s.Difficulty, s.NumberCount)
	operands := g.Operands(s.Difficulty, count)
	answer := Compute(operands, s.Operation)
	return &Problem{
		Operands:      operands,
		CorrectAnswer: answer,
		Options:       g.Options(answer, s.Difficulty),
	}
}

// AdjustCount raises the base operand count for harder difficulties,
// capped at MaxNumberCount.
func AdjustCount(d Difficulty, base int) int {
	switch d {
	case DifficultyDouble:
		return min(base+1, MaxNumberCount)
	case DifficultyTriple:
		return min(base+2, MaxNumberCount)
	default:
		return base
	}
}

// Operands returns n values drawn uniformly from the difficulty's range.
func (g *Generator) Operands(d Difficulty, n int) []int {
	if n < 0 {
		n = 0
	}
	lo, hi := operandBounds(d)
	out := make([]int, n)
	for i := range out {
		out[i] = lo + g.rng.Intn(hi-lo+1)
	}
	return out
}

// Compute folds operands left to right under op. There is no operator
// precedence: [10 3 2] under subtraction is (10-3)-2.
func Compute(operands []int, op Operation) int {
	if len(operands) == 0 {
		return 0
	}
	result := operands[0]
	for _, n := range operands[1:] {
		switch op {
		case OpAddition:
			result += n
		case OpSubtraction:
			result -= n
		case OpMultiplication:
			result *= n
		}
	}
	return result
}

// Options returns the correct answer plus three unique distractors near it,
// shuffled so the correct answer's slot is uniformly distributed.
func (g *Generator) Options(correct int, d Difficulty) []int {
	return g.optionsWithSpread(correct, DistractorSpread(d))
}

func (g *Generator) optionsWithSpread(correct, spread int) []int {
	if spread < 1 {
		spread = 1
	}
	options := make([]int, 1, OptionCount)
	options[0] = correct

	for draws := 0; len(options) < OptionCount && draws < maxDistractorDraws; draws++ {
		offset := g.rng.Intn(spread) + 1
		if g.rng.Intn(2) == 0 {
			offset = -offset
		}
		if candidate := correct + offset; !contains(options, candidate) {
			options = append(options, candidate)
		}
	}

	// Only reachable with a degenerate spread: walk outward from the answer.
	for step := 1; len(options) < OptionCount; step++ {
		for _, candidate := range []int{correct + step, correct - step} {
			if len(options) < OptionCount && !contains(options, candidate) {
				options = append(options, candidate)
			}
		}
	}

	g.shuffle(options)
	return options
}

// DistractorSpread is the maximum distance of a distractor from the answer.
func DistractorSpread(d Difficulty) int {
	switch d {
	case DifficultyDouble:
		return 20
	case DifficultyTriple:
		return 100
	default:
		return 5
	}
}

// shuffle is an in-place Fisher-Yates shuffle.
func (g *Generator) shuffle(xs []int) {
	for i := len(xs) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

func operandBounds(d Difficulty) (lo, hi int) {
	switch d {
	case DifficultyDouble:
		return 10, 99
	case DifficultyTriple:
		return 100, 999
	default:
		return 1, 9
	}
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

package problemgen

import "fmt"

// Symbol returns the operator glyph shown between operands.
func (o Operation) Symbol() string {
	switch o {
	case OpAddition:
		return "+"
	case OpSubtraction:
		return "-"
	case OpMultiplication:
		return "×"
	default:
		return ""
	}
}

// DisplayName returns a human-readable label for the operation.
func (o Operation) DisplayName() string {
	switch o {
	case OpAddition:
		return "Addition"
	case OpSubtraction:
		return "Subtraction"
	case OpMultiplication:
		return "Multiplication"
	default:
		return string(o)
	}
}

// DisplayName returns the digit-range name, e.g. "Double Digit".
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultySingle:
		return "Single Digit"
	case DifficultyDouble:
		return "Double Digit"
	case DifficultyTriple:
		return "Triple Digit"
	default:
		return string(d)
	}
}

// Label returns the short difficulty label used on menus.
func (d Difficulty) Label() string {
	switch d {
	case DifficultySingle:
		return "Easy"
	case DifficultyDouble:
		return "Medium"
	case DifficultyTriple:
		return "Hard"
	default:
		return string(d)
	}
}

// Range returns the inclusive operand bounds, e.g. "10-99".
func (d Difficulty) Range() string {
	lo, hi := operandBounds(d)
	return fmt.Sprintf("%d-%d", lo, hi)
}

// FormatClock formats whole seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

package components

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/ui/theme"
)

// AnswerGrid is a 2x2 grid of numeric answer buttons. Options can be picked
// with the arrow keys and enter, or directly with 1-4.
type AnswerGrid struct {
	Options  []int
	Selected int
	Locked   bool

	chosen    int
	submitted bool
}

// NewAnswerGrid creates a locked grid over options.
func NewAnswerGrid(options []int) AnswerGrid {
	return AnswerGrid{Options: options, Locked: true}
}

// Update handles navigation and selection. Keys are ignored while locked.
func (g AnswerGrid) Update(msg tea.Msg) (AnswerGrid, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || g.Locked || g.submitted || len(g.Options) == 0 {
		return g, nil
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		if g.Selected%2 == 1 {
			g.Selected--
		}
	case "right", "l":
		if g.Selected%2 == 0 && g.Selected+1 < len(g.Options) {
			g.Selected++
		}
	case "up", "k":
		if g.Selected >= 2 {
			g.Selected -= 2
		}
	case "down", "j":
		if g.Selected+2 < len(g.Options) {
			g.Selected += 2
		}
	case "enter":
		g.choose(g.Selected)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(g.Options) {
			g.Selected = n - 1
			g.choose(n - 1)
		}
	}
	return g, nil
}

func (g *AnswerGrid) choose(i int) {
	g.chosen = g.Options[i]
	g.submitted = true
}

// Chosen returns the picked value, if any, and clears it.
func (g *AnswerGrid) Chosen() (int, bool) {
	if !g.submitted {
		return 0, false
	}
	g.submitted = false
	return g.chosen, true
}

// View renders the grid with cells of the given width.
func (g AnswerGrid) View(cellWidth int) string {
	cells := make([]string, len(g.Options))
	for i, opt := range g.Options {
		label := strconv.Itoa(i+1) + ")  " + strconv.Itoa(opt)
		state := ButtonIdle
		switch {
		case g.Locked:
			state = ButtonLocked
		case i == g.Selected:
			state = ButtonFocused
		}
		cells[i] = ArcadeButton(label, state, cellWidth)
	}

	var rows []string
	for i := 0; i < len(cells); i += 2 {
		end := min(i+2, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// RevealedAnswers renders options after scoring: the correct answer in green,
// a wrong pick in red, the rest dimmed.
func RevealedAnswers(options []int, correct int, selected *int, cellWidth int) string {
	cells := make([]string, len(options))
	for i, opt := range options {
		style := lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
		switch {
		case opt == correct:
			style = style.Foreground(theme.Success).BorderForeground(theme.Success).Bold(true)
		case selected != nil && opt == *selected:
			style = style.Foreground(theme.Error).BorderForeground(theme.Error).Bold(true)
		default:
			style = style.Foreground(theme.TextDim).BorderForeground(theme.Border)
		}
		cells[i] = style.Render(strconv.Itoa(opt))
	}

	var rows []string
	for i := 0; i < len(cells); i += 2 {
		end := min(i+2, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

package play

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/router"
	"github.com/abhisek/numberrush/internal/screen"
	"github.com/abhisek/numberrush/internal/session"
	"github.com/abhisek/numberrush/internal/ui/components"
	"github.com/abhisek/numberrush/internal/ui/layout"
	"github.com/abhisek/numberrush/internal/ui/theme"
)

// ResultsScreen shows the outcome of a scored session.
type ResultsScreen struct {
	engine *session.Engine
	state  session.GameState
	base   problemgen.Settings
	menu   components.Menu
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.Disposer = (*ResultsScreen)(nil)

// NewResults creates a results screen for the scored state st.
func NewResults(engine *session.Engine, st session.GameState, base problemgen.Settings) *ResultsScreen {
	r := &ResultsScreen{engine: engine, state: st, base: base}
	r.menu = components.NewMenu([]components.MenuItem{
		{Label: "PLAY AGAIN", Action: func() tea.Cmd {
			setup := NewSetup(engine, base)
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: setup} }
		}},
		{Label: "HOME", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
	})
	return r
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

// Dispose returns the engine to setup.
func (r *ResultsScreen) Dispose() {
	r.engine.ResetGame()
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *ResultsScreen) View(width, height int) string {
	st := r.state
	cw := components.ContentWidth(width)

	var headline string
	switch {
	case st.Correct():
		headline = theme.Correct.Render("✓ Correct!")
	case st.SelectedAnswer == nil:
		headline = theme.Incorrect.Render("⏱ Time's up!")
	default:
		headline = theme.Incorrect.Render("✗ Not quite")
	}

	sections := []string{
		headline,
		"",
		theme.Body.Render(Expression(st.Operands, st.Settings.Operation, st.CorrectAnswer)),
		"",
		components.RevealedAnswers(st.Options, st.CorrectAnswer, st.SelectedAnswer, cw/2-2),
		"",
		r.renderScoreCard(cw),
		"",
		r.menu.View(),
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (r *ResultsScreen) renderScoreCard(cw int) string {
	st := r.state
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	coin := lipgloss.NewStyle().Foreground(theme.Coin).Bold(true)

	lines := []string{
		label.Render("Score   ") + val.Render(humanize.Comma(int64(st.Score))),
		label.Render("Coins   ") + coin.Render("+"+strconv.Itoa(st.Reward)),
		label.Render("Time    ") + val.Render(fmt.Sprintf("%.1fs", st.TimeTaken)),
		label.Render("Total   ") + coin.Render(humanize.Comma(int64(st.Stats.TotalCoins))+" coins"),
	}
	return components.ArcadeCard(strings.Join(lines, "\n"), cw)
}

// Expression renders operands joined by the operation symbol with the result,
// e.g. "7 + 3 + 5 = 15".
func Expression(operands []int, op problemgen.Operation, result int) string {
	parts := make([]string, len(operands))
	for i, n := range operands {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " "+op.Symbol()+" ") + " = " + strconv.Itoa(result)
}

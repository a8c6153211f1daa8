package play

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/router"
	"github.com/abhisek/numberrush/internal/screen"
	"github.com/abhisek/numberrush/internal/session"
	"github.com/abhisek/numberrush/internal/ui/components"
	"github.com/abhisek/numberrush/internal/ui/layout"
	"github.com/abhisek/numberrush/internal/ui/theme"
)

// lowTime is when the countdown bar turns red.
const lowTime = 10 * time.Second

// GameScreen shows operands one at a time and then the answer options. It
// forwards its tick to the engine and hands over to the results screen once
// the session is scored.
type GameScreen struct {
	engine   *session.Engine
	base     problemgen.Settings
	state    session.GameState
	answers  components.AnswerGrid
	finished bool
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)
var _ screen.Disposer = (*GameScreen)(nil)

// NewGame creates a game screen for the engine's current session. base is the
// settings the player chose, used for "play again".
func NewGame(engine *session.Engine, base problemgen.Settings) *GameScreen {
	st := engine.State()
	return &GameScreen{
		engine:  engine,
		base:    base,
		state:   st,
		answers: components.NewAnswerGrid(st.Options),
	}
}

func (g *GameScreen) Init() tea.Cmd {
	return g.tick()
}

func (g *GameScreen) Title() string {
	return "Number Rush"
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	if g.state.CanAnswer() {
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "←↑↓→", Description: "Move"},
			{Key: "Enter", Description: "Choose"},
			{Key: "Esc", Description: "Quit game"},
		}
	}
	hints := []layout.KeyHint{}
	if !g.state.Settings.IsAutomatic {
		hints = append(hints, hint(gameKeys.Next))
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit game"})
}

// Dispose abandons an unfinished session so its timers stop.
func (g *GameScreen) Dispose() {
	if g.engine.State().Status == session.StatusPlaying {
		g.engine.ResetGame()
	}
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.session != g.state.SessionID || g.finished {
			return g, nil
		}
		g.engine.Tick(msg.at)
		if cmd := g.refresh(); cmd != nil {
			return g, cmd
		}
		return g, g.tick()

	case tea.KeyPressMsg:
		if g.finished {
			return g, nil
		}
		// The reveal key never doubles as an answer key.
		if key.Matches(msg, gameKeys.Next) {
			if g.state.Settings.IsAutomatic || g.state.AllRevealed() {
				return g, nil
			}
			g.engine.RevealNext()
			return g, g.refresh()
		}
		g.answers, _ = g.answers.Update(msg)
		if v, ok := g.answers.Chosen(); ok {
			g.engine.SelectAnswer(v)
			return g, g.refresh()
		}
	}
	return g, nil
}

// refresh pulls a fresh snapshot and returns the hand-over command once the
// session is scored.
func (g *GameScreen) refresh() tea.Cmd {
	g.state = g.engine.State()
	g.answers.Locked = !g.state.CanAnswer()
	if g.state.Status != session.StatusResults {
		return nil
	}
	g.finished = true
	results := NewResults(g.engine, g.state, g.base)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results}
	}
}

func (g *GameScreen) tick() tea.Cmd {
	id := g.state.SessionID
	return tea.Tick(session.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg{session: id, at: t}
	})
}

func (g *GameScreen) View(width, height int) string {
	st := g.state
	cw := components.ContentWidth(width)

	var sections []string

	info := fmt.Sprintf("%s · %s %s",
		st.Settings.Difficulty.Label(),
		st.Settings.Operation.Symbol(),
		st.Settings.Operation.DisplayName())
	sections = append(sections, theme.Subtitle.Render(info))

	bar := components.NewProgressBar(
		"⏱ "+problemgen.FormatClock(st.SecondsRemaining()),
		float64(st.TimeRemaining)/float64(session.SessionLimit),
		false, cw)
	if st.TimeRemaining <= lowTime {
		bar.Fill = theme.Error
	}
	sections = append(sections, bar.View(), "")

	sections = append(sections, renderProgressDots(st), "")
	sections = append(sections, components.ArcadeCard(g.renderOperand(), cw), "")

	if st.CanAnswer() {
		sections = append(sections, theme.Body.Render("What's the answer?"), "")
		sections = append(sections, g.answers.View(cw/2-2))
	} else if !st.Settings.IsAutomatic && st.RevealedIndex >= 0 {
		sections = append(sections, theme.Hint.Render("press space for the next number"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (g *GameScreen) renderOperand() string {
	st := g.state
	if st.RevealedIndex < 0 {
		return theme.Hint.Render("Get ready…")
	}
	n := st.Operands[st.RevealedIndex]
	text := fmt.Sprintf("%d", n)
	if st.RevealedIndex > 0 {
		text = st.Settings.Operation.Symbol() + " " + text
	}
	return theme.Operand.Render(text)
}

func renderProgressDots(st session.GameState) string {
	dots := make([]string, len(st.Operands))
	for i := range st.Operands {
		if i <= st.RevealedIndex {
			dots[i] = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render("●")
		} else {
			dots[i] = lipgloss.NewStyle().Foreground(theme.Border).Render("○")
		}
	}
	return strings.Join(dots, " ")
}

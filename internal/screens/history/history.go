package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/screen"
	"github.com/abhisek/numberrush/internal/screens/play"
	"github.com/abhisek/numberrush/internal/store"
	"github.com/abhisek/numberrush/internal/ui/layout"
	"github.com/abhisek/numberrush/internal/ui/theme"
)

// recentLimit caps how many games the screen loads.
const recentLimit = 50

type historyLoadedMsg struct {
	Games []store.GameRecord
	Err   error
}

// HistoryScreen lists recently scored games.
type HistoryScreen struct {
	games    store.GameRepo
	records  []store.GameRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(games store.GameRepo) *HistoryScreen {
	return &HistoryScreen{
		games:    games,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		recs, err := s.games.RecentGames(context.Background(), recentLimit)
		return historyLoadedMsg{Games: recs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Recent Games"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Games
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading games...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games yet. Go rush some numbers!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%-14s  %-6s  %s  %5s pts  +%d",
			prefix,
			humanize.Time(rec.EndedAt),
			difficultyLabel(rec.Difficulty),
			Outcome(rec),
			humanize.Comma(int64(rec.Score)),
			rec.Reward)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(details(rec))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Outcome is a short marker for how the game ended.
func Outcome(rec store.GameRecord) string {
	switch {
	case rec.Correct:
		return "✓"
	case rec.SelectedAnswer == nil:
		return "⏱"
	default:
		return "✗"
	}
}

func details(rec store.GameRecord) string {
	op := problemgen.Operation(rec.Operation)
	answer := "no answer"
	if rec.SelectedAnswer != nil {
		answer = fmt.Sprintf("answered %d", *rec.SelectedAnswer)
	}
	return fmt.Sprintf("    %s   %s in %.1fs",
		play.Expression(rec.Operands, op, rec.CorrectAnswer), answer, rec.TimeTaken)
}

func difficultyLabel(d string) string {
	return problemgen.Difficulty(d).Label()
}

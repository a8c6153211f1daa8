package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/router"
	"github.com/abhisek/numberrush/internal/screen"
	"github.com/abhisek/numberrush/internal/session"
	aggstats "github.com/abhisek/numberrush/internal/stats"
	"github.com/abhisek/numberrush/internal/ui/components"
	"github.com/abhisek/numberrush/internal/ui/layout"
	"github.com/abhisek/numberrush/internal/ui/theme"
)

// StatsScreen shows lifetime statistics.
type StatsScreen struct {
	engine *session.Engine
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen reading from engine.
func New(engine *session.Engine) *StatsScreen {
	return &StatsScreen{engine: engine}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "q" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	a := s.engine.State().Stats
	cw := components.ContentWidth(width)

	overview := strings.Join([]string{
		tile("Games", humanize.Comma(int64(a.TotalGamesPlayed))),
		tile("Accuracy", fmt.Sprintf("%d%%", a.Accuracy())),
		tile("Avg time", fmt.Sprintf("%ds", a.AverageTime())),
		tile("Coins", humanize.Comma(int64(a.TotalCoins))),
	}, "  ")

	sections := []string{
		theme.Title.Render("Your Statistics"),
		"",
		overview,
		"",
	}

	if a.TotalGamesPlayed == 0 {
		sections = append(sections, theme.Hint.Render("Play a game to see your breakdown."))
	} else {
		sections = append(sections,
			components.ArcadeCard(DifficultyBreakdown(a, cw-10), cw),
			components.ArcadeCard(OperationBreakdown(a, cw-10), cw),
		)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func tile(label, value string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(12).
		Align(lipgloss.Center).
		Render(
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(value) + "\n" +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(label),
		)
}

// DifficultyBreakdown renders one bar per difficulty, sized by share of games.
func DifficultyBreakdown(a aggstats.AggregateStats, width int) string {
	lines := []string{theme.Subtitle.Render("By difficulty")}
	for _, d := range problemgen.AllDifficulties() {
		lines = append(lines, bar(d.Label(), a.GamesPerDifficulty.Get(d), a.TotalGamesPlayed, width))
	}
	return strings.Join(lines, "\n")
}

// OperationBreakdown renders one bar per operation, sized by share of games.
func OperationBreakdown(a aggstats.AggregateStats, width int) string {
	lines := []string{theme.Subtitle.Render("By operation")}
	for _, op := range problemgen.AllOperations() {
		lines = append(lines, bar(op.DisplayName(), a.GamesPerOperation.Get(op), a.TotalGamesPlayed, width))
	}
	return strings.Join(lines, "\n")
}

func bar(label string, n, total, width int) string {
	var pct float64
	if total > 0 {
		pct = float64(n) / float64(total)
	}
	count := fmt.Sprintf(" %4d", n)
	p := components.NewProgressBar(fmt.Sprintf("%-14s", label), pct, false, width-len(count))
	p.Fill = theme.Coin
	return p.View() + lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
}

package play

import (
	"fmt"
	"strings"

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

// intervalStep is the interval change per key press, in milliseconds.
const intervalStep = 250

type field int

const (
	fieldDifficulty field = iota
	fieldOperation
	fieldCount
	fieldMode
	fieldInterval
	fieldStart
	fieldCountTotal
)

// SetupScreen lets the player choose game settings before starting.
type SetupScreen struct {
	engine   *session.Engine
	settings problemgen.Settings
	focus    field
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// NewSetup creates a setup screen prefilled with defaults.
func NewSetup(engine *session.Engine, defaults problemgen.Settings) *SetupScreen {
	return &SetupScreen{
		engine:   engine,
		settings: defaults.Clamp(),
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "Game Setup"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		hint(setupKeys.Up),
		hint(setupKeys.Left),
		hint(setupKeys.Start),
		{Key: "Esc", Description: "Back"},
	}
}

// Settings returns the currently selected settings.
func (s *SetupScreen) Settings() problemgen.Settings {
	return s.settings
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, setupKeys.Start):
		return s, s.start()
	case key.Matches(kmsg, setupKeys.Up):
		s.focus = (s.focus + fieldCountTotal - 1) % fieldCountTotal
		if s.focus == fieldInterval && !s.settings.IsAutomatic {
			s.focus--
		}
	case key.Matches(kmsg, setupKeys.Down):
		s.focus = (s.focus + 1) % fieldCountTotal
		if s.focus == fieldInterval && !s.settings.IsAutomatic {
			s.focus++
		}
	case key.Matches(kmsg, setupKeys.Left):
		s.change(-1)
	case key.Matches(kmsg, setupKeys.Right):
		if s.focus == fieldStart {
			return s, s.start()
		}
		s.change(1)
	}
	return s, nil
}

func (s *SetupScreen) change(delta int) {
	switch s.focus {
	case fieldDifficulty:
		s.settings.Difficulty = cycle(problemgen.AllDifficulties(), s.settings.Difficulty, delta)
	case fieldOperation:
		s.settings.Operation = cycle(problemgen.AllOperations(), s.settings.Operation, delta)
	case fieldCount:
		s.settings.NumberCount += delta
	case fieldMode:
		s.settings.IsAutomatic = !s.settings.IsAutomatic
	case fieldInterval:
		s.settings.TimeInterval += delta * intervalStep
	}
	s.settings = s.settings.Clamp()
}

func (s *SetupScreen) start() tea.Cmd {
	s.engine.StartGame(s.settings)
	game := NewGame(s.engine, s.settings)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: game}
	}
}

func cycle[T comparable](all []T, cur T, delta int) T {
	idx := 0
	for i, v := range all {
		if v == cur {
			idx = i
			break
		}
	}
	n := len(all)
	return all[((idx+delta)%n+n)%n]
}

func (s *SetupScreen) View(width, height int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(14)
	value := theme.Unselected
	focused := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)

	row := func(f field, name, val string) string {
		prefix := "  "
		v := value.Render(val)
		if s.focus == f {
			prefix = focused.Render("▸ ")
			v = focused.Render("‹ " + val + " ›")
		}
		return prefix + label.Render(name) + v
	}

	d := s.settings.Difficulty
	mode := "Manual"
	if s.settings.IsAutomatic {
		mode = "Automatic"
	}

	rows := []string{
		row(fieldDifficulty, "Difficulty", fmt.Sprintf("%s (%s)", d.DisplayName(), d.Range())),
		row(fieldOperation, "Operation", fmt.Sprintf("%s %s", s.settings.Operation.Symbol(), s.settings.Operation.DisplayName())),
		row(fieldCount, "Numbers", fmt.Sprintf("%d", s.settings.NumberCount)),
		row(fieldMode, "Reveal", mode),
	}
	if s.settings.IsAutomatic {
		rows = append(rows, row(fieldInterval, "Interval", fmt.Sprintf("%.2fs", float64(s.settings.TimeInterval)/1000)))
	}

	var sections []string
	sections = append(sections, theme.Title.Render("Choose your challenge"), "")
	sections = append(sections, strings.Join(rows, "\n"), "")

	if adjusted := problemgen.AdjustCount(d, s.settings.NumberCount); adjusted != s.settings.NumberCount {
		sections = append(sections, theme.Hint.Render(
			fmt.Sprintf("%s plays with %d numbers", d.Label(), adjusted)), "")
	}

	start := components.ButtonIdle
	if s.focus == fieldStart {
		start = components.ButtonFocused
	}
	sections = append(sections, components.ArcadeButton("START", start, 22))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/router"
	"github.com/abhisek/numberrush/internal/screen"
	"github.com/abhisek/numberrush/internal/screens/history"
	"github.com/abhisek/numberrush/internal/screens/play"
	statsscreen "github.com/abhisek/numberrush/internal/screens/stats"
	"github.com/abhisek/numberrush/internal/session"
	"github.com/abhisek/numberrush/internal/stats"
	"github.com/abhisek/numberrush/internal/store"
	"github.com/abhisek/numberrush/internal/ui/components"
	"github.com/abhisek/numberrush/internal/ui/layout"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	engine     *session.Engine
	menu       components.Menu
	menuLabels []string
	disabled   map[int]bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. games may be nil, which disables the
// recent games entry.
func New(engine *session.Engine, games store.GameRepo, defaults problemgen.Settings) *HomeScreen {
	menuLabels := []string{"PLAY", "STATISTICS", "RECENT GAMES", "QUIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: play.NewSetup(engine, defaults)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: statsscreen.New(engine)}
			}
		}},
		{Label: menuLabels[2], Disabled: games == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(games)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	disabled := make(map[int]bool)
	for i, item := range items {
		if item.Disabled {
			disabled[i] = true
		}
	}

	return &HomeScreen{
		engine:     engine,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		disabled:   disabled,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header, footer and frame gaps.
	compact := layout.IsCompactHeight(height+8) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)
	agg := h.engine.State().Stats

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(agg), cw))
	}
	sections = append(sections, renderStatsBar(agg, cw, compact))
	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menuLabels, h.menu.Selected, cw, h.disabled))
	} else {
		sections = append(sections, renderArcadeMenu(h.menuLabels, h.menu.Selected, cw, h.disabled))
	}

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// mascotFor picks the mascot mood from lifetime accuracy.
func mascotFor(a stats.AggregateStats) MascotVariant {
	switch {
	case a.TotalGamesPlayed >= 5 && a.Accuracy() >= 80:
		return MascotCelebrating
	case a.TotalGamesPlayed >= 5 && a.Accuracy() < 50:
		return MascotAlert
	default:
		return MascotIdle
	}
}

package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/router"
	"github.com/abhisek/numberrush/internal/screen"
	"github.com/abhisek/numberrush/internal/screens/home"
	"github.com/abhisek/numberrush/internal/screens/play"
	"github.com/abhisek/numberrush/internal/screens/welcome"
	"github.com/abhisek/numberrush/internal/session"
	"github.com/abhisek/numberrush/internal/store"
	"github.com/abhisek/numberrush/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Engine   *session.Engine
	Games    store.GameRepo
	Defaults problemgen.Settings

	// SkipSplash opens straight on the home screen.
	SkipSplash bool

	// StartPlaying opens the setup screen on top of home.
	StartPlaying bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	engine *session.Engine
	width  int
	height int
}

// newAppModel builds the initial screen stack from opts.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Engine, opts.Games, opts.Defaults)
	}

	var r *router.Router
	switch {
	case opts.StartPlaying:
		r = router.New(homeFactory())
		r.Push(play.NewSetup(opts.Engine, opts.Defaults))
	case opts.SkipSplash:
		r = router.New(homeFactory())
	default:
		r = router.New(welcome.New(homeFactory))
	}

	return AppModel{
		router: r,
		engine: opts.Engine,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.engine.State().Stats.TotalCoins, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	} else {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/ui/theme"
)

// MenuItem is one entry of a Menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of numbered entries. Entries are picked with the
// arrows and enter, or directly with their number. Disabled entries are
// shown dimmed and skipped.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// Update moves the selection and runs the chosen item's action.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		m.Selected = m.step(-1)
	case "down", "j":
		m.Selected = m.step(1)
	case "enter":
		return m, m.activate(m.Selected)
	default:
		n, err := strconv.Atoi(key)
		if err != nil || n < 1 || n > len(m.Items) || m.Items[n-1].Disabled {
			return m, nil
		}
		m.Selected = n - 1
		return m, m.activate(n - 1)
	}
	return m, nil
}

// step returns the next enabled index in direction dir, or the current one
// if there is none.
func (m Menu) step(dir int) int {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return m.Selected
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}

// View renders one numbered line per item.
func (m Menu) View() string {
	var (
		b        strings.Builder
		focused  = lipgloss.NewStyle().Foreground(theme.Coin).Bold(true)
		idle     = lipgloss.NewStyle().Foreground(theme.Text)
		disabled = lipgloss.NewStyle().Foreground(theme.TextDim)
	)
	for i, item := range m.Items {
		line := strconv.Itoa(i+1) + ". " + item.Label
		switch {
		case item.Disabled:
			b.WriteString(disabled.Render("    " + line))
		case i == m.Selected:
			b.WriteString(focused.Render("  " + buttonMarker + line))
		default:
			b.WriteString(idle.Render("    " + line))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/ui/theme"
)

const (
	minContentWidth = 24
	maxContentWidth = 56

	// cabinet border (2) + inner padding (4)
	cabinetChrome = 6
)

// ContentWidth returns the inner width shared by every card on a screen so
// the operand card, answer grid and score card line up.
func ContentWidth(frameWidth int) int {
	return max(minContentWidth, min(frameWidth-cabinetChrome, maxContentWidth))
}

// CabinetFrame wraps content in the double-border arcade cabinet, centred in
// width x height.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded card at content width cw.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ButtonState is how an arcade button is drawn.
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonFocused
	// ButtonLocked is shown while input is not accepted yet, e.g. answers
	// before the last number is revealed.
	ButtonLocked
)

// buttonMarker prefixes the focused button.
const buttonMarker = "◆ "

// ArcadeButton renders a bordered button. The focused button is filled with
// coin gold.
func ArcadeButton(label string, state ButtonState, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch state {
	case ButtonFocused:
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Coin).
			BorderForeground(theme.Coin).
			Render(buttonMarker + label)
	case ButtonLocked:
		return style.
			Foreground(theme.TextDim).
			BorderForeground(theme.BgCard).
			Render(label)
	default:
		return style.
			Foreground(theme.Text).
			BorderForeground(theme.Border).
			Render(label)
	}
}

package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/abhisek/numberrush/internal/stats"
	"github.com/abhisek/numberrush/internal/ui/theme"
)

const (
	arcadeTitleFull    = "N · U · M · B · E · R    R · U · S · H"
	arcadeTitleCompact = "NUMBER RUSH"
	arcadeTagline      = "7 + 3 × 2 − 5 = ?"
)

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	if compact {
		return center.Render(style.Render(arcadeTitleCompact))
	}
	return center.Render(style.Render(arcadeTitleFull) + "\n" + theme.Hint.Render(arcadeTagline))
}

// renderStatsBar renders lifetime totals in a bordered box matching content width.
func renderStatsBar(a stats.AggregateStats, cw int, compact bool) string {
	coinStyle := lipgloss.NewStyle().Foreground(theme.Coin).Bold(true)
	gamesStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	accStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	coins := humanize.Comma(int64(a.TotalCoins))
	var bar string
	if compact {
		bar = fmt.Sprintf("%s %s %s",
			coinStyle.Render("●"+coins),
			gamesStyle.Render(fmt.Sprintf("▶%d", a.TotalGamesPlayed)),
			accStyle.Render(fmt.Sprintf("✓%d%%", a.Accuracy())),
		)
	} else {
		bar = fmt.Sprintf("%s  %s  %s",
			coinStyle.Render("● "+coins+" COINS"),
			gamesStyle.Render(fmt.Sprintf("▶ %d GAMES", a.TotalGamesPlayed)),
			accStyle.Render(fmt.Sprintf("✓ %d%% ACCURACY", a.Accuracy())),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(bar)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ArcadeYellow).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	disabledBtn := normalBtn.Foreground(theme.TextDim)

	var buttons []string
	for i, label := range items {
		if disabled[i] {
			buttons = append(buttons, disabledBtn.Render(label))
		} else if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		if disabled[i] {
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + label)
		} else if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

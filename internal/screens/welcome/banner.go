package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/ui/theme"
)

const bannerArt = `
 ███╗   ██╗██╗   ██╗███╗   ███╗██████╗ ███████╗██████╗
 ████╗  ██║██║   ██║████╗ ████║██╔══██╗██╔════╝██╔══██╗
 ██╔██╗ ██║██║   ██║██╔████╔██║██████╔╝█████╗  ██████╔╝
 ██║╚██╗██║██║   ██║██║╚██╔╝██║██╔══██╗██╔══╝  ██╔══██╗
 ██║ ╚████║╚██████╔╝██║ ╚═╝ ██║██████╔╝███████╗██║  ██║
 ╚═╝  ╚═══╝ ╚═════╝ ╚═╝     ╚═╝╚═════╝ ╚══════╝╚═╝  ╚═╝
             ██████╗ ██╗   ██╗███████╗██╗  ██╗
             ██╔══██╗██║   ██║██╔════╝██║  ██║
             ██████╔╝██║   ██║███████╗███████║
             ██╔══██╗██║   ██║╚════██║██╔══██║
             ██║  ██║╚██████╔╝███████║██║  ██║
             ╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝`

const bannerCompact = "N U M B E R   R U S H"

// bannerMinWidth is the narrowest terminal that fits the block banner.
const bannerMinWidth = 58

// RenderBanner returns the title banner, falling back to spaced letters on
// narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

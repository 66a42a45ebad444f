package intro

import (
	"charm.land/lipgloss/v2"

	"github.com/8bitgaijin/Learniverse-sub001/internal/ui/theme"
)

const bannerArt = `
 ╦  ╔═╗╔═╗╦═╗╔╗╔╦╦  ╦╔═╗╦═╗╔═╗╔═╗
 ║  ║╣ ╠═╣╠╦╝║║║║╚╗╔╝║╣ ╠╦╝╚═╗║╣
 ╩═╝╚═╝╩ ╩╩╚═╝╚╝╩ ╚╝ ╚═╝╩╚═╚═╝╚═╝`

const bannerCompact = "L E A R N I V E R S E"

// RenderBanner returns the LEARNIVERSE banner styled in the primary
// color, with a compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

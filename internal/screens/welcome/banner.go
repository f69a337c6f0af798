package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradebook/internal/ui/theme"
)

const bannerArt = `
  ___  ___    _    ___   ___  ___   ___  ___  _  __
 / __|| _ \  /_\  |   \ | __|| _ ) / _ \/ _ \| |/ /
| (_ ||   / / _ \ | |) || _| | _ \| (_) |(_) | ' <
 \___||_|_\/_/ \_\|___/ |___||___/ \___/\___/|_|\_\`

const bannerCompact = "G R A D E B O O K"

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 56 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 56 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradebook/internal/ui/theme"
)

const titleCompact = "G R A D E B O O K"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderTitle(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render(titleCompact))
}

// renderStatsBar renders the roster summary in a bordered box matching content width.
func renderStatsBar(st stats, cw int) string {
	count := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	top := "-"
	if st.topID != "" {
		top = fmt.Sprintf("%s (%.2f)", st.topID, st.topGPA)
	}

	line := strings.Join([]string{
		count.Render(fmt.Sprintf("%d", st.students)) + dim.Render(" students"),
		count.Render(fmt.Sprintf("%d", st.courses)) + dim.Render(" courses"),
		dim.Render("top ") + count.Render(top),
	}, dim.Render("  ·  "))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// renderPanel stacks the sections and centres them in the content area.
func renderPanel(sections []string, width, height int) string {
	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

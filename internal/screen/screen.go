package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gradebook/internal/ui/layout"
)

// Screen is one page of the gradebook UI: the splash, the home menu, a form
// or a report. The router keeps screens on a stack and only the top one
// receives messages.
type Screen interface {
	// Init runs when the router pushes the screen or swaps it in.
	Init() tea.Cmd

	// Update handles a message. A screen may return itself or a successor.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body between the header and the footer.
	View(width, height int) string

	// Title is shown in the header. The splash screen returns "".
	Title() string
}

// KeyHintProvider is implemented by screens whose footer differs from the
// default back and quit hints, such as forms and scrollable reports.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

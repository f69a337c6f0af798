package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradebook/internal/router"
	"github.com/abhisek/gradebook/internal/screen"
	"github.com/abhisek/gradebook/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 500 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

const bookArt = `   ______ ______
 _/      Y      \_
// ~~ ~~ | ~~ ~  \\
// ~ ~ ~~ | ~~~ ~~ \\
//________.|.________\\
'----------'-'----------'`

type tickMsg time.Time

// WelcomeScreen shows a short splash before handing over to the home screen.
// Any key skips it; once the animation finishes it continues by itself.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed += tickInterval
		if w.elapsed >= totalDur {
			w.elapsed = totalDur
			return w, w.transition()
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(bookArt),
	}

	if w.elapsed >= bannerAt {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().
				Foreground(theme.Text).
				Bold(true).
				Render("Students, courses and grades in one place"),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

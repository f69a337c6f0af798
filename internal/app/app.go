package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/abhisek/gradebook/internal/gradebook"
	"github.com/abhisek/gradebook/internal/router"
	"github.com/abhisek/gradebook/internal/screen"
	"github.com/abhisek/gradebook/internal/screens/home"
	"github.com/abhisek/gradebook/internal/screens/welcome"
	"github.com/abhisek/gradebook/internal/ui/layout"
)

// Options holds the dependencies of the interactive program.
type Options struct {
	Roster *gradebook.Roster
	Logger log.Logger

	// ReadmePath is the document shown by the introduction item.
	ReadmePath string

	// SkipSplash starts directly on the home screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	roster *gradebook.Roster
	logger log.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the splash screen, or at
// home when the splash is skipped.
func newAppModel(ctx context.Context, opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	homeFactory := func() screen.Screen {
		return home.New(ctx, opts.Roster, opts.ReadmePath)
	}

	var initial screen.Screen
	if opts.SkipSplash {
		initial = homeFactory()
	} else {
		initial = welcome.New(homeFactory)
	}

	return AppModel{
		router: router.New(initial),
		roster: opts.Roster,
		logger: log.With(logger, "component", "tui"),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case router.PushScreenMsg:
		level.Debug(m.logger).Log("msg", "open screen", "screen", msg.Screen.Title())
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if frame := m.frame(); frame != "" {
		v.SetContent(frame)
	}
	return v
}

// frame renders header, active screen and footer for the current size.
func (m AppModel) frame() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if p, ok := active.(screen.KeyHintProvider); ok {
			hints = p.KeyHints()
		}
	}

	var students, courses int
	if m.roster != nil {
		students = len(m.roster.Students())
		courses = len(m.roster.Courses())
	}
	header := layout.RenderHeader(title, students, courses, m.width)

	if hints == nil {
		if m.router.Depth() > 1 {
			hints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			hints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "0-9", Description: "Choose"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}
	footer := layout.RenderFooter(hints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits. The roster
// is not closed here; the caller owns it.
func Run(ctx context.Context, opts Options) error {
	if opts.Roster == nil {
		return fmt.Errorf("app: roster is required")
	}
	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// Package report provides a read-only, scrollable screen for listings such
// as the student list, GPA ranking, search results and transcripts.
package report

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradebook/internal/router"
	"github.com/abhisek/gradebook/internal/screen"
	"github.com/abhisek/gradebook/internal/ui/components"
	"github.com/abhisek/gradebook/internal/ui/layout"
	"github.com/abhisek/gradebook/internal/ui/theme"
)

// LoadFunc produces the report body. It runs as a tea.Cmd when the screen
// is first shown. width is the content width available at that time.
type LoadFunc func(width int) (string, error)

type loadedMsg struct {
	body string
	err  error
}

// ReportScreen renders the output of a LoadFunc.
type ReportScreen struct {
	title  string
	empty  string
	load   LoadFunc
	scroll components.ScrollView
	loaded bool
	errMsg string
	height int
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a report screen. empty is shown when the body is blank.
func New(title, empty string, load LoadFunc) *ReportScreen {
	return &ReportScreen{
		title: title,
		empty: empty,
		load:  load,
	}
}

// Static creates a report screen over an already rendered body.
func Static(title, body string) *ReportScreen {
	return New(title, "", func(int) (string, error) { return body, nil })
}

func (s *ReportScreen) Init() tea.Cmd {
	load := s.load
	return func() tea.Msg {
		body, err := load(layout.MinWidth - 4)
		return loadedMsg{body: body, err: err}
	}
}

func (s *ReportScreen) Title() string {
	return s.title
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "PgUp/PgDn", Description: "Page"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded = true
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.scroll.SetContent(msg.body)
		if strings.TrimSpace(msg.body) == "" {
			s.scroll.Lines = nil
		}
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "q" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.scroll = s.scroll.Update(msg, s.height)
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	s.height = height - 2
	if s.height < 1 {
		s.height = 1
	}

	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading...")
	}
	if len(s.scroll.Lines) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  " + s.empty)
	}

	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		PaddingLeft(2).
		Render(s.scroll.View(s.height))

	if s.scroll.CanScroll(s.height) {
		body += "\n" + theme.Hint.Render(fmt.Sprintf("  lines %d-%d of %d",
			s.scroll.Offset+1, min(s.scroll.Offset+s.height, len(s.scroll.Lines)), len(s.scroll.Lines)))
	}
	return "\n" + body
}

// Body returns the loaded report text.
func (s *ReportScreen) Body() string {
	return strings.Join(s.scroll.Lines, "\n")
}

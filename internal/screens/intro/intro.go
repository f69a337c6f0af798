// Package intro renders the introduction document as formatted markdown.
package intro

import (
	_ "embed"
	"fmt"
	"os"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/abhisek/gradebook/internal/screen"
	"github.com/abhisek/gradebook/internal/ui/components"
	"github.com/abhisek/gradebook/internal/ui/layout"
	"github.com/abhisek/gradebook/internal/ui/theme"
)

//go:embed intro.md
var defaultIntro string

type docLoadedMsg struct {
	markdown string
	err      error
}

// IntroScreen shows a markdown document. A user supplied README replaces the
// built-in text when one is found.
type IntroScreen struct {
	path     string
	markdown string
	loaded   bool
	errMsg   string

	renderedWidth int
	scroll        components.ScrollView
	height        int
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates an intro screen reading path. An empty path, or one that does
// not exist, falls back to the built-in introduction.
func New(path string) *IntroScreen {
	return &IntroScreen{path: path}
}

func (s *IntroScreen) Init() tea.Cmd {
	path := s.path
	return func() tea.Msg {
		md, err := LoadDocument(path)
		return docLoadedMsg{markdown: md, err: err}
	}
}

// LoadDocument returns the README at path, or the built-in introduction when
// path is empty or missing.
func LoadDocument(path string) (string, error) {
	if path == "" {
		return defaultIntro, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultIntro, nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Render formats markdown for a terminal of the given width.
func Render(markdown string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func (s *IntroScreen) Title() string {
	return "Introduction"
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

var scrollKeys = key.NewBinding(key.WithKeys("up", "down", "k", "j", "pgup", "pgdown", "home", "end", "space"))

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case docLoadedMsg:
		s.loaded = true
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.markdown = msg.markdown
		s.renderedWidth = 0
		return s, nil

	case tea.KeyMsg:
		if key.Matches(msg, scrollKeys) {
			s.scroll = s.scroll.Update(msg, s.height)
		}
	}
	return s, nil
}

func (s *IntroScreen) View(width, height int) string {
	s.height = height
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

	if s.renderedWidth != width {
		out, err := Render(s.markdown, width-4)
		if err != nil {
			// Fall back to the raw markdown.
			out = s.markdown
		}
		s.scroll.SetContent(out)
		s.renderedWidth = width
	}
	return s.scroll.View(height)
}

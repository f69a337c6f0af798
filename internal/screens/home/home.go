package home

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradebook/internal/gradebook"
	"github.com/abhisek/gradebook/internal/router"
	"github.com/abhisek/gradebook/internal/screen"
	"github.com/abhisek/gradebook/internal/ui/components"
)

type stats struct {
	students int
	courses  int
	topID    string
	topGPA   float64
}

// HomeScreen is the numbered main menu.
type HomeScreen struct {
	roster *gradebook.Roster
	menu   components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. readmePath is shown by the introduction item.
func New(ctx context.Context, roster *gradebook.Roster, readmePath string) *HomeScreen {
	a := &actions{ctx: ctx, roster: roster}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			s := build()
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	items := []components.MenuItem{
		{Key: "0", Label: "Read introduction", Action: push(func() screen.Screen { return a.intro(readmePath) })},
		{Key: "1", Label: "Create student", Action: push(a.createStudent)},
		{Key: "2", Label: "View students", Action: push(a.viewStudents)},
		{Key: "3", Label: "Edit student", Action: push(a.editStudent)},
		{Key: "4", Label: "Create course", Action: push(a.createCourse)},
		{Key: "5", Label: "Enter grades", Action: push(a.enterGrades)},
		{Key: "6", Label: "GPA ranking", Action: push(a.ranking)},
		{Key: "7", Label: "Search by GPA", Action: push(a.search)},
		{Key: "8", Label: "Transcripts", Action: push(a.transcripts)},
		{Key: "9", Label: "Save and exit", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		roster: roster,
		menu:   components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := contentWidth(width)

	menu := lipgloss.NewStyle().
		Width(cw).
		Render(h.menu.View())

	sections := []string{renderTitle(cw)}
	if height >= 18 {
		sections = append(sections, renderStatsBar(h.stats(), cw))
	}
	sections = append(sections, menu)

	return renderPanel(sections, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) stats() stats {
	ranked := h.roster.RankByGPA()
	st := stats{
		students: len(ranked),
		courses:  len(h.roster.Courses()),
	}
	if len(ranked) > 0 && ranked[0].GPA > 0 {
		st.topID = ranked[0].ID
		st.topGPA = ranked[0].GPA
	}
	return st
}

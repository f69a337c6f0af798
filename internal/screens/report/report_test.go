package report

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gradebook/internal/router"
)

func load(s *ReportScreen) {
	s.Update(s.Init()())
}

func TestReport_LoadsBody(t *testing.T) {
	s := Static("Students", "alice\nbob")
	if !strings.Contains(s.View(80, 20), "Loading") {
		t.Error("expected loading message before load completes")
	}

	load(s)
	view := s.View(80, 20)
	if !strings.Contains(view, "alice") || !strings.Contains(view, "bob") {
		t.Errorf("expected body in view, got %q", view)
	}
	if s.Body() != "alice\nbob" {
		t.Errorf("unexpected body %q", s.Body())
	}
}

func TestReport_EmptyMessage(t *testing.T) {
	s := New("Students", "No students yet.", func(int) (string, error) { return "", nil })
	load(s)
	if !strings.Contains(s.View(80, 20), "No students yet.") {
		t.Error("expected empty message")
	}
}

func TestReport_Error(t *testing.T) {
	s := New("Search", "", func(int) (string, error) { return "", errors.New("boom") })
	load(s)
	if !strings.Contains(s.View(80, 20), "Error: boom") {
		t.Error("expected error in view")
	}
}

func TestReport_Scrolls(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "row"
	}
	s := Static("Long", strings.Join(lines, "\n"))
	load(s)
	s.View(80, 12)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.scroll.Offset != 1 {
		t.Errorf("expected offset 1, got %d", s.scroll.Offset)
	}
	if !strings.Contains(s.View(80, 12), "lines 2-11 of 50") {
		t.Errorf("expected position hint, got %q", s.View(80, 12))
	}
}

func TestReport_QuitPops(t *testing.T) {
	s := Static("x", "y")
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

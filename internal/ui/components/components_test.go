package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

type pickedMsg struct{ n int }

func testMenu(picked *int) Menu {
	item := func(key string, n int) MenuItem {
		return MenuItem{
			Key:   key,
			Label: "item " + key,
			Action: func() tea.Cmd {
				*picked = n
				return func() tea.Msg { return pickedMsg{n} }
			},
		}
	}
	return NewMenu([]MenuItem{item("0", 0), item("1", 1), item("2", 2)})
}

func TestMenu_ArrowNavigation(t *testing.T) {
	picked := -1
	m := testMenu(&picked)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Fatalf("expected selection 2, got %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("expected selection to stay at last item, got %d", m.Selected)
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command from enter")
	}
	if picked != 2 {
		t.Errorf("expected item 2 activated, got %d", picked)
	}
}

func TestMenu_ShortcutKey(t *testing.T) {
	picked := -1
	m := testMenu(&picked)

	m, cmd := m.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	if cmd == nil {
		t.Fatal("expected command from shortcut")
	}
	if picked != 1 || m.Selected != 1 {
		t.Errorf("expected item 1 activated and selected, got picked=%d selected=%d", picked, m.Selected)
	}
}

func TestMenu_DisabledItemSkipped(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "on"},
	})
	if m.Selected != 1 {
		t.Errorf("expected first enabled item selected, got %d", m.Selected)
	}
}

func TestMenu_ViewShowsKeys(t *testing.T) {
	picked := -1
	v := testMenu(&picked).View()
	if !strings.Contains(v, "0. item 0") || !strings.Contains(v, "2. item 2") {
		t.Errorf("menu view missing numbered labels: %q", v)
	}
}

func TestAcceptsNumeric(t *testing.T) {
	tests := []struct {
		c       byte
		current string
		want    bool
	}{
		{'4', "", true},
		{'.', "2", true},
		{'.', "2.5", false},
		{'a', "", false},
		{'-', "", false},
	}
	for _, tt := range tests {
		if got := acceptsNumeric(tt.c, tt.current); got != tt.want {
			t.Errorf("acceptsNumeric(%q, %q) = %v, want %v", tt.c, tt.current, got, tt.want)
		}
	}
}

func TestTextInput_NumericValue(t *testing.T) {
	ti := NewTextInput("grade", true, 8)
	ti.Model.SetValue(" 3.5 ")
	v, err := ti.NumericValue()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 3.5 {
		t.Errorf("expected 3.5, got %v", v)
	}
}

func TestGPABar(t *testing.T) {
	bar := NewGPABar(2.5, 20)
	if bar.Percent != 0.5 {
		t.Errorf("expected 0.5 fill, got %v", bar.Percent)
	}
	if bar.View() == "" {
		t.Error("expected non-empty bar")
	}
}

func TestScrollView_ClampsOffset(t *testing.T) {
	s := NewScrollView([]string{"a", "b", "c", "d", "e"})

	s = s.Update(tea.KeyPressMsg{Code: tea.KeyUp}, 3)
	if s.Offset != 0 {
		t.Errorf("expected offset 0 at top, got %d", s.Offset)
	}

	for i := 0; i < 10; i++ {
		s = s.Update(tea.KeyPressMsg{Code: tea.KeyDown}, 3)
	}
	if s.Offset != 2 {
		t.Errorf("expected offset clamped to 2, got %d", s.Offset)
	}
	if got := s.View(3); got != "c\nd\ne" {
		t.Errorf("unexpected window %q", got)
	}
}

func TestScrollView_SetContent(t *testing.T) {
	var s ScrollView
	s.SetContent("one\ntwo\n")
	if len(s.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(s.Lines))
	}
	if s.CanScroll(2) {
		t.Error("two lines fit in height 2")
	}
	if !s.CanScroll(1) {
		t.Error("two lines overflow height 1")
	}
}

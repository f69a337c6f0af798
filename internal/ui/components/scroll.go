package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// ScrollView shows a window of pre-rendered lines.
type ScrollView struct {
	Lines  []string
	Offset int
}

// NewScrollView creates a scroll view over lines.
func NewScrollView(lines []string) ScrollView {
	return ScrollView{Lines: lines}
}

// SetContent replaces the lines, keeping the offset in range.
func (s *ScrollView) SetContent(content string) {
	s.Lines = strings.Split(strings.TrimRight(content, "\n"), "\n")
	if s.Offset >= len(s.Lines) {
		s.Offset = 0
	}
}

// Update scrolls on arrow, page and home/end keys. height is the visible
// line count used for paging and clamping.
func (s ScrollView) Update(msg tea.Msg, height int) ScrollView {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s
	}

	page := height - 1
	if page < 1 {
		page = 1
	}

	switch kmsg.String() {
	case "up", "k":
		s.Offset--
	case "down", "j":
		s.Offset++
	case "pgup", "b":
		s.Offset -= page
	case "pgdown", "f", "space":
		s.Offset += page
	case "home", "g":
		s.Offset = 0
	case "end", "G":
		s.Offset = len(s.Lines)
	}
	s.clamp(height)
	return s
}

func (s *ScrollView) clamp(height int) {
	maxOffset := len(s.Lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.Offset > maxOffset {
		s.Offset = maxOffset
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
}

// View renders at most height lines starting at the current offset.
func (s ScrollView) View(height int) string {
	if height <= 0 || len(s.Lines) == 0 {
		return ""
	}
	s.clamp(height)
	end := s.Offset + height
	if end > len(s.Lines) {
		end = len(s.Lines)
	}
	return strings.Join(s.Lines[s.Offset:end], "\n")
}

// CanScroll reports whether the content is taller than height.
func (s ScrollView) CanScroll(height int) bool {
	return len(s.Lines) > height
}

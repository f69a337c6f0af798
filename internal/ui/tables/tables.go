// Package tables renders roster listings. The output is used both by the
// menu screens and by the command line.
package tables

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/gradebook/internal/gradebook"
	"github.com/abhisek/gradebook/internal/ui/components"
	"github.com/abhisek/gradebook/internal/ui/theme"
)

const gpaBarWidth = 12

var (
	headerStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// Students lists students with their course count, credits and GPA.
func Students(students []gradebook.Student) string {
	if len(students) == 0 {
		return ""
	}
	t := newTable("Email", "Name", "Courses", "Credits", "GPA")
	for _, s := range students {
		t.Row(s.ID, s.Name, strconv.Itoa(len(s.Outcomes)), formatCredits(s.Credits()), FormatGPA(s.GPA))
	}
	return t.String()
}

// Ranking lists students in the given order with their position. When bars
// is set each row carries a GPA bar.
func Ranking(ranked []gradebook.Student, bars bool) string {
	if len(ranked) == 0 {
		return ""
	}
	headers := []string{"#", "Email", "Name", "GPA"}
	if bars {
		headers = append(headers, "")
	}
	t := newTable(headers...)
	for i, s := range ranked {
		row := []string{strconv.Itoa(i + 1), s.ID, s.Name, FormatGPA(s.GPA)}
		if bars {
			row = append(row, components.NewGPABar(s.GPA, gpaBarWidth).View())
		}
		t.Row(row...)
	}
	return t.String()
}

// Courses lists courses with their term and full credit value.
func Courses(courses []gradebook.Course) string {
	if len(courses) == 0 {
		return ""
	}
	t := newTable("Course", "Term", "Credits")
	for _, c := range courses {
		t.Row(c.ID, c.Term, formatCredits(c.Credits))
	}
	return t.String()
}

// Transcripts renders transcripts separated by blank lines.
func Transcripts(ts []gradebook.Transcript) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = strings.TrimRight(t.String(), "\n")
	}
	return strings.Join(parts, "\n\n")
}

// FormatGPA renders a GPA with two decimals.
func FormatGPA(gpa float64) string {
	return fmt.Sprintf("%.2f", gpa)
}

func formatCredits(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

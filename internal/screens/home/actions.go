package home

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/gradebook/internal/gradebook"
	"github.com/abhisek/gradebook/internal/screen"
	"github.com/abhisek/gradebook/internal/screens/form"
	"github.com/abhisek/gradebook/internal/screens/intro"
	"github.com/abhisek/gradebook/internal/screens/report"
	"github.com/abhisek/gradebook/internal/ui/tables"
)

// actions builds the screen behind each menu item.
type actions struct {
	ctx    context.Context
	roster *gradebook.Roster
}

// userError wraps err so forms show a readable sentence.
func userError(err error) error {
	return errors.New(gradebook.Describe(err))
}

func parseNumber(label, value string, optional bool) (float64, error) {
	if value == "" && optional {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", label)
	}
	return f, nil
}

func (a *actions) intro(readmePath string) screen.Screen {
	return intro.New(readmePath)
}

func (a *actions) createStudent() screen.Screen {
	return form.New("Create student", "", []form.Field{
		{Label: "Email", Placeholder: "name@school.edu"},
		{Label: "Name", Placeholder: "Full name"},
	}, func(v []string) (form.Result, error) {
		s, err := a.roster.AddStudent(a.ctx, v[0], v[1])
		if err != nil {
			return form.Result{}, userError(err)
		}
		return form.Result{Message: fmt.Sprintf("Student %s (%s) added.", s.ID, s.Name)}, nil
	})
}

func (a *actions) viewStudents() screen.Screen {
	return report.New("Students", "No students yet.", func(int) (string, error) {
		return tables.Students(a.roster.Students()), nil
	})
}

func (a *actions) editStudent() screen.Screen {
	return form.New("Edit student", "Only the name can be changed.", []form.Field{
		{Label: "Email", Placeholder: "name@school.edu"},
		{Label: "New name", Placeholder: "Full name"},
	}, func(v []string) (form.Result, error) {
		old, ok := a.roster.FindStudent(v[0])
		if !ok {
			return form.Result{}, userError(&gradebook.Error{Op: "edit student", Kind: gradebook.ErrNotFound, Key: v[0]})
		}
		if err := a.roster.EditStudentName(a.ctx, v[0], v[1]); err != nil {
			return form.Result{}, userError(err)
		}
		if strings.TrimSpace(v[1]) == "" {
			return form.Result{Message: fmt.Sprintf("Name of %s unchanged (%q).", v[0], old.Name)}, nil
		}
		return form.Result{Message: fmt.Sprintf("Renamed %s from %q to %q.", v[0], old.Name, v[1])}, nil
	})
}

func (a *actions) createCourse() screen.Screen {
	full := strconv.FormatFloat(a.roster.FullCredits(), 'f', -1, 64)
	return form.New("Create course", "", []form.Field{
		{Label: "Course", Placeholder: "CS101"},
		{Label: "Term", Placeholder: "Fall 2024"},
		{Label: "Credits", Placeholder: full, Numeric: true, MaxWidth: 6},
	}, func(v []string) (form.Result, error) {
		credits, err := parseNumber("Credits", v[2], true)
		if err != nil {
			return form.Result{}, err
		}
		c, err := a.roster.AddCourse(a.ctx, v[0], v[1], credits)
		if err != nil {
			return form.Result{}, userError(err)
		}
		return form.Result{Message: fmt.Sprintf("Course %s (%s, %s credits) added.",
			c.ID, c.Term, strconv.FormatFloat(c.Credits, 'f', -1, 64))}, nil
	})
}

func (a *actions) enterGrades() screen.Screen {
	return form.New("Enter grades",
		"Credits earned is 0 for a failed course, or the course's full credits for a pass.",
		[]form.Field{
			{Label: "Email", Placeholder: "name@school.edu", Keep: true},
			{Label: "Course", Placeholder: "CS101"},
			{Label: "Grade", Placeholder: "1-5", Numeric: true, MaxWidth: 3},
			{Label: "Credits earned", Placeholder: "0 or full", Numeric: true, MaxWidth: 6},
		}, func(v []string) (form.Result, error) {
			grade, err := parseNumber("Grade", v[2], false)
			if err != nil {
				return form.Result{}, err
			}
			credits, err := parseNumber("Credits earned", v[3], false)
			if err != nil {
				return form.Result{}, err
			}
			s, err := a.roster.RecordGrade(a.ctx, v[0], v[1], grade, credits)
			if err != nil {
				return form.Result{}, userError(err)
			}
			return form.Result{Message: fmt.Sprintf("Recorded %s for %s. GPA is now %s.",
				v[1], s.ID, tables.FormatGPA(s.GPA))}, nil
		})
}

func (a *actions) ranking() screen.Screen {
	return report.New("GPA ranking", "No students yet.", func(int) (string, error) {
		return tables.Ranking(a.roster.RankByGPA(), true), nil
	})
}

func (a *actions) search() screen.Screen {
	return form.New("Search by GPA", "Both bounds are inclusive and must lie between 1 and 5.", []form.Field{
		{Label: "Minimum GPA", Placeholder: "1", Numeric: true, MaxWidth: 5},
		{Label: "Maximum GPA", Placeholder: "5", Numeric: true, MaxWidth: 5},
	}, func(v []string) (form.Result, error) {
		lo, err := parseNumber("Minimum GPA", v[0], false)
		if err != nil {
			return form.Result{}, err
		}
		hi, err := parseNumber("Maximum GPA", v[1], false)
		if err != nil {
			return form.Result{}, err
		}
		matched, err := a.roster.SearchByGPA(lo, hi)
		if err != nil {
			return form.Result{}, userError(err)
		}
		title := fmt.Sprintf("GPA %s – %s", tables.FormatGPA(lo), tables.FormatGPA(hi))
		empty := "No students in that range."
		return form.Result{Next: report.New(title, empty, func(int) (string, error) {
			return tables.Students(matched), nil
		})}, nil
	})
}

func (a *actions) transcripts() screen.Screen {
	return form.New("Transcripts", "Leave the email blank to print every transcript.", []form.Field{
		{Label: "Email", Placeholder: "all students"},
	}, func(v []string) (form.Result, error) {
		if v[0] == "" {
			all := a.roster.AllTranscripts()
			return form.Result{Next: report.New("All transcripts", "No students yet.", func(int) (string, error) {
				return tables.Transcripts(all), nil
			})}, nil
		}
		t, err := a.roster.GenerateTranscript(v[0])
		if err != nil {
			return form.Result{}, userError(err)
		}
		return form.Result{Next: report.Static("Transcript", t.String())}, nil
	})
}

// Package form implements a multi-field input screen whose submission runs
// asynchronously and reports its result inline.
package form

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradebook/internal/router"
	"github.com/abhisek/gradebook/internal/screen"
	"github.com/abhisek/gradebook/internal/ui/components"
	"github.com/abhisek/gradebook/internal/ui/layout"
	"github.com/abhisek/gradebook/internal/ui/theme"
)

// Field describes one input of a form.
type Field struct {
	Label       string
	Placeholder string
	Numeric     bool
	MaxWidth    int

	// Keep retains the value after a successful submit.
	Keep bool
}

// Result is what a successful submit produces. If Next is set the form
// pushes it instead of showing Message.
type Result struct {
	Message string
	Next    screen.Screen
}

// SubmitFunc receives the field values in declaration order.
type SubmitFunc func(values []string) (Result, error)

type submittedMsg struct {
	result Result
	err    error
}

// FormScreen is a sequence of labelled text inputs.
type FormScreen struct {
	title   string
	intro   string
	fields  []Field
	inputs  []components.TextInput
	focus   int
	submit  SubmitFunc
	pending bool
	message string
	failed  bool
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates a form. intro is an optional line shown above the inputs.
func New(title, intro string, fields []Field, submit SubmitFunc) *FormScreen {
	inputs := make([]components.TextInput, len(fields))
	for i, f := range fields {
		width := f.MaxWidth
		if width == 0 {
			width = 64
		}
		inputs[i] = components.NewTextInput(f.Placeholder, f.Numeric, width)
		if i > 0 {
			inputs[i].Blur()
		}
	}
	return &FormScreen{
		title:  title,
		intro:  intro,
		fields: fields,
		inputs: inputs,
		submit: submit,
	}
}

func (f *FormScreen) Init() tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	return f.inputs[0].Init()
}

func (f *FormScreen) Title() string {
	return f.title
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next/Submit"},
		{Key: "Tab", Description: "Next field"},
		{Key: "Esc", Description: "Back"},
	}
}

// Values returns the current trimmed input values.
func (f *FormScreen) Values() []string {
	values := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		values[i] = in.Value()
	}
	return values
}

// Message returns the last result or error text and whether it was an error.
func (f *FormScreen) Message() (string, bool) {
	return f.message, f.failed
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		f.pending = false
		if msg.err != nil {
			f.message = msg.err.Error()
			f.failed = true
			f.inputs[f.focus].Submit(false)
			return f, nil
		}
		f.failed = false
		if msg.result.Next != nil {
			f.message = ""
			next := msg.result.Next
			return f, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
		f.message = msg.result.Message
		return f, f.reset()

	case tea.KeyMsg:
		if f.pending {
			return f, nil
		}
		switch msg.String() {
		case "tab", "down":
			return f, f.setFocus(f.focus + 1)
		case "shift+tab", "up":
			return f, f.setFocus(f.focus - 1)
		case "enter":
			if f.focus < len(f.inputs)-1 {
				return f, f.setFocus(f.focus + 1)
			}
			return f, f.runSubmit()
		}
	}

	if len(f.inputs) == 0 {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *FormScreen) setFocus(i int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	if i < 0 {
		i = len(f.inputs) - 1
	}
	if i >= len(f.inputs) {
		i = 0
	}
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

func (f *FormScreen) runSubmit() tea.Cmd {
	f.pending = true
	values := f.Values()
	submit := f.submit
	return func() tea.Msg {
		res, err := submit(values)
		return submittedMsg{result: res, err: err}
	}
}

// reset clears the fields not marked Keep and focuses the first input.
func (f *FormScreen) reset() tea.Cmd {
	for i := range f.inputs {
		if f.fields[i].Keep {
			continue
		}
		f.inputs[i].Reset()
	}
	return f.setFocus(0)
}

func (f *FormScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	if f.intro != "" {
		b.WriteString("  " + theme.Hint.Render(f.intro) + "\n\n")
	}

	labelWidth := 0
	for _, field := range f.fields {
		if w := lipgloss.Width(field.Label); w > labelWidth {
			labelWidth = w
		}
	}

	for i, field := range f.fields {
		style := theme.Unselected
		if i == f.focus {
			style = theme.Selected
		}
		label := style.Width(labelWidth + 2).Render(field.Label + ":")
		b.WriteString("  " + label + " " + f.inputs[i].View() + "\n\n")
	}

	switch {
	case f.pending:
		b.WriteString("  " + theme.Hint.Render("Saving...") + "\n")
	case f.message != "" && f.failed:
		b.WriteString("  " + theme.ErrorText.Render("✗ "+f.message) + "\n")
	case f.message != "":
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(
			theme.SuccessText.Render("✓ ")+theme.Body.Render(f.message)) + "\n")
	}

	return b.String()
}

package gradebook

import (
	"fmt"
	"strings"
)

// TranscriptLine is one outcome as it appears on a transcript.
type TranscriptLine struct {
	CourseID      string
	Term          string // empty when the course is not on the roster
	Grade         float64
	CreditsEarned float64
}

// Transcript is a read-only report of one student's record.
type Transcript struct {
	StudentID    string
	Name         string
	Lines        []TranscriptLine
	TotalCredits float64
	GPA          float64
}

// GenerateTranscript builds the transcript of one student.
func (r *Roster) GenerateTranscript(id string) (Transcript, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.studentIdx[id]
	if !ok {
		return Transcript{}, newError("generate transcript", ErrNotFound, id)
	}
	return r.transcriptLocked(s), nil
}

// AllTranscripts builds a transcript for every student in insertion order.
func (r *Roster) AllTranscripts() []Transcript {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Transcript, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, r.transcriptLocked(s))
	}
	return out
}

func (r *Roster) transcriptLocked(s *Student) Transcript {
	t := Transcript{
		StudentID:    s.ID,
		Name:         s.Name,
		Lines:        make([]TranscriptLine, 0, len(s.Outcomes)),
		TotalCredits: s.Credits(),
		GPA:          s.GPA,
	}
	for _, o := range s.Outcomes {
		line := TranscriptLine{
			CourseID:      o.CourseID,
			Grade:         o.Grade,
			CreditsEarned: o.CreditsEarned,
		}
		if c, ok := r.courseIdx[o.CourseID]; ok {
			line.Term = c.Term
		}
		t.Lines = append(t.Lines, line)
	}
	return t
}

// String renders the transcript as plain text.
func (t Transcript) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Transcript for %s (%s):\n", t.Name, t.StudentID)
	if len(t.Lines) == 0 {
		b.WriteString("  No courses registered.\n")
	}
	for _, l := range t.Lines {
		fmt.Fprintf(&b, "  Course: %s, Grade: %s, Credits Earned: %s",
			l.CourseID, formatNumber(l.Grade), formatNumber(l.CreditsEarned))
		if l.Term != "" {
			fmt.Fprintf(&b, " (%s)", l.Term)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "GPA: %.2f\n", t.GPA)
	return b.String()
}

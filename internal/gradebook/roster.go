package gradebook

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Options configures a Roster.
type Options struct {
	// Persister receives the full snapshot after every mutation.
	// A nil Persister keeps the roster in memory only.
	Persister Persister

	// Logger receives operational logs. Defaults to a no-op logger.
	Logger log.Logger

	// FullCredits is the credit value given to courses created without one.
	FullCredits float64
}

// Roster owns all students and courses for a session. Every mutating
// operation recomputes derived state and saves the full snapshot before
// returning.
type Roster struct {
	mu sync.Mutex

	students   []*Student
	studentIdx map[string]*Student
	courses    []*Course
	courseIdx  map[string]*Course

	persister   Persister
	logger      log.Logger
	fullCredits float64
}

// New creates an empty roster. Nothing is loaded; use Open for that.
func New(opts Options) *Roster {
	if opts.Logger == nil {
		opts.Logger = log.NewNopLogger()
	}
	if !(opts.FullCredits > 0) || math.IsInf(opts.FullCredits, 0) {
		opts.FullCredits = DefaultFullCredits
	}
	return &Roster{
		studentIdx:  make(map[string]*Student),
		courseIdx:   make(map[string]*Course),
		persister:   opts.Persister,
		logger:      log.With(opts.Logger, "component", "roster"),
		fullCredits: opts.FullCredits,
	}
}

// Open creates a roster and populates it from opts.Persister. If the
// persister has nothing stored yet the roster starts empty. GPA is
// recomputed for every loaded student instead of trusting the stored value.
func Open(ctx context.Context, opts Options) (*Roster, error) {
	r := New(opts)
	if r.persister == nil {
		return r, nil
	}

	snap, err := r.persister.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	if snap == nil {
		level.Info(r.logger).Log("msg", "no stored roster, starting empty")
		return r, nil
	}

	for _, c := range snap.Courses {
		if _, ok := r.courseIdx[c.ID]; ok {
			return nil, newError("load roster", ErrDuplicateKey, c.ID)
		}
		course := c
		if course.Credits <= 0 {
			course.Credits = r.fullCredits
		}
		r.courses = append(r.courses, &course)
		r.courseIdx[course.ID] = &course
	}
	for _, s := range snap.Students {
		if _, ok := r.studentIdx[s.ID]; ok {
			return nil, newError("load roster", ErrDuplicateKey, s.ID)
		}
		st := s.clone()
		st.Recalculate()
		r.students = append(r.students, &st)
		r.studentIdx[st.ID] = &st
	}

	level.Info(r.logger).Log("msg", "roster loaded",
		"students", len(r.students), "courses", len(r.courses))
	return r, nil
}

// Close saves the roster one last time and releases the persister.
func (r *Roster) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.persister == nil {
		return nil
	}
	if err := r.save(ctx); err != nil {
		r.persister.Close()
		return err
	}
	return r.persister.Close()
}

// FullCredits returns the default credit value of a passed course.
func (r *Roster) FullCredits() float64 {
	return r.fullCredits
}

// AddStudent registers a new student with no outcomes.
func (r *Roster) AddStudent(ctx context.Context, id, name string) (*Student, error) {
	id = strings.TrimSpace(id)
	if err := ValidateEmail(id); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.studentIdx[id]; ok {
		return nil, newError("add student", ErrDuplicateKey, id)
	}

	s := &Student{ID: id, Name: strings.TrimSpace(name)}
	r.students = append(r.students, s)
	r.studentIdx[id] = s
	level.Debug(r.logger).Log("msg", "student added", "student", id)

	if err := r.save(ctx); err != nil {
		return nil, err
	}
	out := s.clone()
	return &out, nil
}

// AddCourse registers a new course. Course IDs are unique; a repeated ID is
// rejected. Non-positive credits fall back to the roster's full-credit value.
func (r *Roster) AddCourse(ctx context.Context, id, term string, credits float64) (*Course, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, newError("add course", ErrInvalidFormat, id)
	}
	if err := ValidateFinite("credits", credits); err != nil {
		return nil, err
	}
	if credits <= 0 {
		credits = r.fullCredits
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.courseIdx[id]; ok {
		return nil, newError("add course", ErrDuplicateKey, id)
	}

	c := &Course{ID: id, Term: strings.TrimSpace(term), Credits: credits}
	r.courses = append(r.courses, c)
	r.courseIdx[id] = c
	level.Debug(r.logger).Log("msg", "course added", "course", id)

	if err := r.save(ctx); err != nil {
		return nil, err
	}
	out := *c
	return &out, nil
}

// EditStudentName replaces a student's display name. A blank name keeps the
// current one. Outcomes and GPA are left untouched.
func (r *Roster) EditStudentName(ctx context.Context, id, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.studentIdx[id]
	if !ok {
		return newError("edit student", ErrNotFound, id)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	s.Name = name
	level.Debug(r.logger).Log("msg", "student renamed", "student", id)

	return r.save(ctx)
}

// RegisterOutcome appends a graded course to a student's record and
// recomputes their GPA. Registering the same course twice adds a second
// entry. Grade and credits are not checked against the scale here, only
// for being finite.
func (r *Roster) RegisterOutcome(ctx context.Context, studentID, courseID string, grade, credits float64) (*Student, error) {
	if err := ValidateFinite("grade", grade); err != nil {
		return nil, err
	}
	if err := ValidateFinite("credits", credits); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.studentIdx[studentID]
	if !ok {
		return nil, newError("register outcome", ErrNotFound, studentID)
	}
	if _, ok := r.courseIdx[courseID]; !ok {
		return nil, newError("register outcome", ErrNotFound, courseID)
	}

	s.Outcomes = append(s.Outcomes, Outcome{
		CourseID:      courseID,
		Grade:         grade,
		CreditsEarned: credits,
	})
	s.Recalculate()
	level.Debug(r.logger).Log("msg", "outcome registered",
		"student", studentID, "course", courseID, "gpa", fmt.Sprintf("%.2f", s.GPA))

	if err := r.save(ctx); err != nil {
		return nil, err
	}
	out := s.clone()
	return &out, nil
}

// FindStudent looks up a student by ID.
func (r *Roster) FindStudent(id string) (*Student, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.studentIdx[id]
	if !ok {
		return nil, false
	}
	out := s.clone()
	return &out, true
}

// FindCourse looks up a course by ID.
func (r *Roster) FindCourse(id string) (*Course, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.courseIdx[id]
	if !ok {
		return nil, false
	}
	out := *c
	return &out, true
}

// Students returns every student in insertion order.
func (r *Roster) Students() []Student {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.studentsLocked()
}

// Courses returns every course in insertion order.
func (r *Roster) Courses() []Course {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Course, len(r.courses))
	for i, c := range r.courses {
		out[i] = *c
	}
	return out
}

// Snapshot returns a copy of the full roster state.
func (r *Roster) Snapshot() *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Roster) studentsLocked() []Student {
	out := make([]Student, len(r.students))
	for i, s := range r.students {
		out[i] = s.clone()
	}
	return out
}

func (r *Roster) snapshotLocked() *Snapshot {
	snap := &Snapshot{
		Students: r.studentsLocked(),
		Courses:  make([]Course, len(r.courses)),
	}
	for i, c := range r.courses {
		snap.Courses[i] = *c
	}
	return snap
}

// save writes the full roster. The caller must hold r.mu.
func (r *Roster) save(ctx context.Context) error {
	if r.persister == nil {
		return nil
	}
	if err := r.persister.Save(ctx, r.snapshotLocked()); err != nil {
		level.Error(r.logger).Log("msg", "save failed", "err", err)
		return fmt.Errorf("save roster: %w", err)
	}
	level.Debug(r.logger).Log("msg", "roster saved",
		"students", len(r.students), "courses", len(r.courses))
	return nil
}

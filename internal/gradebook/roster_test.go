package gradebook

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleScenario(t *testing.T) {
	r, _ := newTestRoster(t)
	ctx := context.Background()

	_, err := r.AddStudent(ctx, "a@b.com", "Alice")
	require.NoError(t, err)
	_, err = r.AddCourse(ctx, "CS101", "Fall 2024", 25)
	require.NoError(t, err)
	_, err = r.AddCourse(ctx, "CS102", "Fall 2024", 25)
	require.NoError(t, err)

	s, err := r.RegisterOutcome(ctx, "a@b.com", "CS101", 4, 25)
	require.NoError(t, err)
	assert.Equal(t, 4.0, s.GPA)

	s, err = r.RegisterOutcome(ctx, "a@b.com", "CS102", 2, 25)
	require.NoError(t, err)
	assert.Equal(t, 3.0, s.GPA)

	found, ok := r.FindStudent("a@b.com")
	require.True(t, ok)
	assert.Equal(t, 3.0, found.GPA)
	assert.Len(t, found.Outcomes, 2)
}

func TestAddStudent(t *testing.T) {
	r, p := newTestRoster(t)
	ctx := context.Background()

	s, err := r.AddStudent(ctx, " a@b.com ", " Alice ")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", s.ID)
	assert.Equal(t, "Alice", s.Name)
	assert.Empty(t, s.Outcomes)
	assert.Equal(t, 0.0, s.GPA)
	assert.Equal(t, 1, p.saves)
	require.Len(t, p.snap.Students, 1)
}

func TestAddStudent_InvalidEmail(t *testing.T) {
	r, p := newTestRoster(t)

	for _, id := range []string{"", "alice", "a@b", "@b.com", "a b@c.com"} {
		_, err := r.AddStudent(context.Background(), id, "Alice")
		assert.ErrorIs(t, err, ErrInvalidFormat, "id %q", id)
	}
	assert.Empty(t, r.Students())
	assert.Equal(t, 0, p.saves)

	_, err := r.AddStudent(context.Background(), "alice", "Alice")
	var gbErr *Error
	require.ErrorAs(t, err, &gbErr)
	assert.Equal(t, "validate email", gbErr.Op)
	assert.Equal(t, "alice", gbErr.Key)
	assert.True(t, IsValidation(err))
}

func TestAddStudent_DuplicateLeavesExistingUntouched(t *testing.T) {
	r, p := newTestRoster(t)
	ctx := context.Background()

	_, err := r.AddStudent(ctx, "a@b.com", "Alice")
	require.NoError(t, err)
	_, err = r.AddCourse(ctx, "CS101", "Fall 2024", 25)
	require.NoError(t, err)
	_, err = r.RegisterOutcome(ctx, "a@b.com", "CS101", 5, 25)
	require.NoError(t, err)
	savesBefore := p.saves

	_, err = r.AddStudent(ctx, "a@b.com", "Mallory")
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))
	assert.Equal(t, savesBefore, p.saves)

	s, ok := r.FindStudent("a@b.com")
	require.True(t, ok)
	assert.Equal(t, "Alice", s.Name)
	assert.Equal(t, 5.0, s.GPA)
	assert.Len(t, s.Outcomes, 1)
	assert.Len(t, r.Students(), 1)
}

func TestAddCourse(t *testing.T) {
	r, _ := newTestRoster(t)
	ctx := context.Background()

	c, err := r.AddCourse(ctx, "Web Infrastructure", "September 2024", 0)
	require.NoError(t, err)
	assert.Equal(t, float64(DefaultFullCredits), c.Credits)

	_, err = r.AddCourse(ctx, "Web Infrastructure", "January 2025", 25)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	_, err = r.AddCourse(ctx, "  ", "January 2025", 25)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	courses := r.Courses()
	require.Len(t, courses, 1)
	assert.Equal(t, "September 2024", courses[0].Term)
}

func TestAddCourse_CustomFullCredits(t *testing.T) {
	r := New(Options{FullCredits: 10})
	c, err := r.AddCourse(context.Background(), "CS101", "Fall", 0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, c.Credits)
	assert.Equal(t, 10.0, r.FullCredits())
}

func TestAddCourse_NonFiniteCreditsRejected(t *testing.T) {
	r, p := newTestRoster(t)
	ctx := context.Background()

	for _, c := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := r.AddCourse(ctx, "CS101", "Fall", c)
		assert.ErrorIs(t, err, ErrInvalidFormat, "credits %v", c)
	}
	assert.Empty(t, r.Courses())
	assert.Equal(t, 0, p.saves)

	// The roster still saves normally afterwards.
	_, err := r.AddCourse(ctx, "CS101", "Fall", 0)
	require.NoError(t, err)
	_, err = r.AddStudent(ctx, "a@b.com", "Alice")
	require.NoError(t, err)
	require.NoError(t, r.Close(ctx))
}

func TestNew_NonFiniteFullCreditsFallsBack(t *testing.T) {
	for _, c := range []float64{math.NaN(), math.Inf(1)} {
		r := New(Options{FullCredits: c})
		assert.Equal(t, float64(DefaultFullCredits), r.FullCredits())
	}
}

func TestRegisterOutcome_NonFiniteRejected(t *testing.T) {
	r, _ := newTestRoster(t)
	ctx := context.Background()
	seedStudent(t, r, "a@b.com")

	_, err := r.RegisterOutcome(ctx, "a@b.com", "SEED", math.NaN(), 25)
	assert.ErrorIs(t, err, ErrInvalidFormat)
	_, err = r.RegisterOutcome(ctx, "a@b.com", "SEED", 4, math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidFormat)

	s, _ := r.FindStudent("a@b.com")
	assert.Empty(t, s.Outcomes)
}

func TestEditStudentName_BlankKeepsCurrent(t *testing.T) {
	r, p := newTestRoster(t)
	ctx := context.Background()
	seedStudent(t, r, "a@b.com")
	require.NoError(t, r.EditStudentName(ctx, "a@b.com", "Alice"))
	saves := p.saves

	require.NoError(t, r.EditStudentName(ctx, "a@b.com", "   "))
	s, _ := r.FindStudent("a@b.com")
	assert.Equal(t, "Alice", s.Name)
	assert.Equal(t, saves, p.saves)
}

func TestEditStudentName(t *testing.T) {
	r, p := newTestRoster(t)
	ctx := context.Background()
	seedStudent(t, r, "a@b.com", 4)

	require.NoError(t, r.EditStudentName(ctx, "a@b.com", "Alice Liddell"))
	s, _ := r.FindStudent("a@b.com")
	assert.Equal(t, "Alice Liddell", s.Name)
	assert.Equal(t, 4.0, s.GPA)
	assert.Len(t, s.Outcomes, 1)
	assert.Equal(t, "Alice Liddell", p.snap.Students[0].Name)

	err := r.EditStudentName(ctx, "nobody@b.com", "X")
	assert.True(t, IsNotFound(err))
}

func TestRegisterOutcome_NotFound(t *testing.T) {
	r, _ := newTestRoster(t)
	ctx := context.Background()
	_, err := r.AddStudent(ctx, "a@b.com", "Alice")
	require.NoError(t, err)

	_, err = r.RegisterOutcome(ctx, "nobody@b.com", "CS101", 4, 25)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.RegisterOutcome(ctx, "a@b.com", "CS999", 4, 25)
	assert.ErrorIs(t, err, ErrNotFound)

	s, _ := r.FindStudent("a@b.com")
	assert.Empty(t, s.Outcomes)
}

func TestRegisterOutcome_DuplicateCourseAppends(t *testing.T) {
	r, _ := newTestRoster(t)
	ctx := context.Background()
	seedStudent(t, r, "a@b.com")
	_, err := r.AddCourse(ctx, "CS101", "Fall", 25)
	require.NoError(t, err)

	_, err = r.RegisterOutcome(ctx, "a@b.com", "CS101", 2, 25)
	require.NoError(t, err)
	s, err := r.RegisterOutcome(ctx, "a@b.com", "CS101", 4, 25)
	require.NoError(t, err)

	assert.Len(t, s.Outcomes, 2)
	assert.Equal(t, 3.0, s.GPA)
}

func TestMutationsSaveEveryTime(t *testing.T) {
	r, p := newTestRoster(t)
	ctx := context.Background()

	_, err := r.AddStudent(ctx, "a@b.com", "Alice")
	require.NoError(t, err)
	_, err = r.AddCourse(ctx, "CS101", "Fall", 25)
	require.NoError(t, err)
	_, err = r.RegisterOutcome(ctx, "a@b.com", "CS101", 3, 25)
	require.NoError(t, err)
	require.NoError(t, r.EditStudentName(ctx, "a@b.com", "Al"))
	assert.Equal(t, 4, p.saves)

	// Queries never save.
	r.RankByGPA()
	_, err = r.SearchByGPA(1, 5)
	require.NoError(t, err)
	_, err = r.GenerateTranscript("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, 4, p.saves)
}

func TestSaveFailureIsReturned(t *testing.T) {
	r, p := newTestRoster(t)
	p.failErr = errDiskFull

	_, err := r.AddStudent(context.Background(), "a@b.com", "Alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, errDiskFull)
	assert.False(t, IsValidation(err))
}

func TestReturnedStudentIsACopy(t *testing.T) {
	r, _ := newTestRoster(t)
	seedStudent(t, r, "a@b.com", 4)

	s, _ := r.FindStudent("a@b.com")
	s.Name = "changed"
	s.Outcomes[0].Grade = 1

	again, _ := r.FindStudent("a@b.com")
	assert.Equal(t, "a@b.com", again.Name)
	assert.Equal(t, 4.0, again.Outcomes[0].Grade)
}

func TestOpen_RecomputesGPA(t *testing.T) {
	p := &memPersister{snap: &Snapshot{
		Students: []Student{{
			ID:       "a@b.com",
			Name:     "Alice",
			Outcomes: []Outcome{{"CS101", 4, 25}, {"CS102", 2, 25}},
			GPA:      1.23, // stale
		}},
		Courses: []Course{{ID: "CS101", Term: "Fall"}},
	}}

	r, err := Open(context.Background(), Options{Persister: p})
	require.NoError(t, err)

	s, ok := r.FindStudent("a@b.com")
	require.True(t, ok)
	assert.Equal(t, 3.0, s.GPA)

	// CS102 is not a known course but loaded outcomes are trusted.
	assert.Len(t, s.Outcomes, 2)

	c, ok := r.FindCourse("CS101")
	require.True(t, ok)
	assert.Equal(t, float64(DefaultFullCredits), c.Credits)
}

func TestOpen_RejectsDuplicateIDs(t *testing.T) {
	p := &memPersister{snap: &Snapshot{
		Students: []Student{{ID: "a@b.com"}, {ID: "a@b.com"}},
	}}
	_, err := Open(context.Background(), Options{Persister: p})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestClose_SavesAndCloses(t *testing.T) {
	r, p := newTestRoster(t)
	require.NoError(t, r.Close(context.Background()))
	assert.Equal(t, 1, p.saves)
	assert.True(t, p.closed)
}

func TestFind_Missing(t *testing.T) {
	r := New(Options{})
	_, ok := r.FindStudent("x@y.com")
	assert.False(t, ok)
	_, ok = r.FindCourse("CS101")
	assert.False(t, ok)
}

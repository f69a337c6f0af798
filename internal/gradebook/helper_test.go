package gradebook

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// memPersister is an in-memory Persister that records every save.
type memPersister struct {
	snap    *Snapshot
	saves   int
	failErr error
	closed  bool
}

func (m *memPersister) Load(context.Context) (*Snapshot, error) {
	if m.snap == nil {
		return nil, nil
	}
	cp := *m.snap
	return &cp, nil
}

func (m *memPersister) Save(_ context.Context, snap *Snapshot) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.saves++
	m.snap = snap
	return nil
}

func (m *memPersister) Close() error {
	m.closed = true
	return nil
}

var errDiskFull = errors.New("disk full")

func newTestRoster(t *testing.T) (*Roster, *memPersister) {
	t.Helper()
	p := &memPersister{}
	r, err := Open(context.Background(), Options{Persister: p})
	require.NoError(t, err)
	return r, p
}

// seedStudent adds a student and a set of already-passed outcomes.
func seedStudent(t *testing.T, r *Roster, id string, grades ...float64) {
	t.Helper()
	ctx := context.Background()
	_, err := r.AddStudent(ctx, id, id)
	require.NoError(t, err)
	for _, g := range grades {
		if _, ok := r.FindCourse("SEED"); !ok {
			_, err := r.AddCourse(ctx, "SEED", "seed term", 0)
			require.NoError(t, err)
		}
		_, err := r.RegisterOutcome(ctx, id, "SEED", g, DefaultFullCredits)
		require.NoError(t, err)
	}
}

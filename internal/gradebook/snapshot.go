package gradebook

import "context"

// Snapshot is the full roster state handed to and from a Persister.
// Students and courses are in insertion order.
type Snapshot struct {
	Students []Student
	Courses  []Course
}

// Persister stores whole roster snapshots.
type Persister interface {
	// Load returns the stored snapshot, or (nil, nil) if nothing was saved yet.
	Load(ctx context.Context) (*Snapshot, error)

	// Save replaces any previously stored snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Close releases the underlying storage.
	Close() error
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/abhisek/gradebook/internal/gradebook"
)

var _ gradebook.Persister = (*JSONStore)(nil)

// JSONStore persists the roster as two JSON documents, students.json and
// courses.json, inside a directory. Each Save rewrites both files in full.
type JSONStore struct {
	dir string
}

// studentRecord is the on-disk shape of a student.
type studentRecord struct {
	Email   string              `json:"email"`
	Name    string              `json:"name"`
	Courses []gradebook.Outcome `json:"courses"`
	GPA     float64             `json:"gpa"`
}

// courseRecord is the on-disk shape of a course.
type courseRecord struct {
	Name      string  `json:"name"`
	Trimester string  `json:"trimester"`
	Credits   float64 `json:"credits,omitempty"`
}

// OpenJSON returns a JSONStore rooted at dir, creating dir if needed.
func OpenJSON(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &JSONStore{dir: dir}, nil
}

// Close is a no-op; files are not held open between saves.
func (s *JSONStore) Close() error {
	return nil
}

// Load reads both documents. If neither exists it returns (nil, nil).
func (s *JSONStore) Load(ctx context.Context) (*gradebook.Snapshot, error) {
	var students []studentRecord
	foundStudents, err := s.readDocument(StudentsFile, studentsSchema, &students)
	if err != nil {
		return nil, err
	}

	var courses []courseRecord
	foundCourses, err := s.readDocument(CoursesFile, coursesSchema, &courses)
	if err != nil {
		return nil, err
	}

	if !foundStudents && !foundCourses {
		return nil, nil
	}

	snap := &gradebook.Snapshot{
		Students: make([]gradebook.Student, 0, len(students)),
		Courses:  make([]gradebook.Course, 0, len(courses)),
	}
	for _, r := range students {
		snap.Students = append(snap.Students, gradebook.Student{
			ID:       r.Email,
			Name:     r.Name,
			Outcomes: r.Courses,
			GPA:      r.GPA,
		})
	}
	for _, r := range courses {
		snap.Courses = append(snap.Courses, gradebook.Course{
			ID:      r.Name,
			Term:    r.Trimester,
			Credits: r.Credits,
		})
	}
	return snap, nil
}

// Save writes students.json then courses.json. Each file is replaced
// atomically, but the pair is not: a crash between the two renames leaves
// a new students file next to an old courses file.
func (s *JSONStore) Save(ctx context.Context, snap *gradebook.Snapshot) error {
	students := make([]studentRecord, 0, len(snap.Students))
	for _, st := range snap.Students {
		outcomes := st.Outcomes
		if outcomes == nil {
			outcomes = []gradebook.Outcome{}
		}
		students = append(students, studentRecord{
			Email:   st.ID,
			Name:    st.Name,
			Courses: outcomes,
			GPA:     st.GPA,
		})
	}

	courses := make([]courseRecord, 0, len(snap.Courses))
	for _, c := range snap.Courses {
		courses = append(courses, courseRecord{
			Name:      c.ID,
			Trimester: c.Term,
			Credits:   c.Credits,
		})
	}

	if err := s.writeDocument(StudentsFile, students); err != nil {
		return err
	}
	return s.writeDocument(CoursesFile, courses)
}

// readDocument decodes name into v after schema validation. It reports
// false when the file does not exist.
func (s *JSONStore) readDocument(name, schemaDef string, v any) (bool, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", name, err)
	}

	if err := validateDocument(name, schemaDef, raw); err != nil {
		return false, fmt.Errorf("validate %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

// writeDocument encodes v and replaces name with it via a synced temp file
// and rename.
func (s *JSONStore) writeDocument(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return writeFileAtomic(filepath.Join(s.dir, name), append(data, '\n'))
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abhisek/gradebook/internal/gradebook"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

var _ gradebook.Persister = (*SQLiteStore)(nil)

// SQLiteStore persists the roster in a SQLite database. Every Save
// rewrites all rows inside one transaction.
type SQLiteStore struct {
	db *sql.DB
}

var tables = []string{
	`CREATE TABLE IF NOT EXISTS courses (
		position INTEGER PRIMARY KEY,
		id       TEXT NOT NULL UNIQUE,
		term     TEXT NOT NULL,
		credits  REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		position INTEGER PRIMARY KEY,
		id       TEXT NOT NULL UNIQUE,
		name     TEXT NOT NULL,
		gpa      REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS outcomes (
		student_id     TEXT NOT NULL,
		position       INTEGER NOT NULL,
		course_id      TEXT NOT NULL,
		grade          REAL NOT NULL,
		credits_earned REAL NOT NULL,
		PRIMARY KEY (student_id, position)
	)`,
}

// OpenSQLite opens the SQLite database at dsn, applies recommended pragmas
// and creates the tables if needed.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	for _, stmt := range tables {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	return &SQLiteStore{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads every row back in insertion order. An empty database yields
// (nil, nil).
func (s *SQLiteStore) Load(ctx context.Context) (*gradebook.Snapshot, error) {
	courses, err := s.loadCourses(ctx)
	if err != nil {
		return nil, err
	}
	students, err := s.loadStudents(ctx)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 && len(courses) == 0 {
		return nil, nil
	}
	if err := s.loadOutcomes(ctx, students); err != nil {
		return nil, err
	}
	return &gradebook.Snapshot{Students: students, Courses: courses}, nil
}

func (s *SQLiteStore) loadCourses(ctx context.Context) ([]gradebook.Course, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, term, credits FROM courses ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	var courses []gradebook.Course
	for rows.Next() {
		var c gradebook.Course
		if err := rows.Scan(&c.ID, &c.Term, &c.Credits); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read courses: %w", err)
	}
	return courses, nil
}

func (s *SQLiteStore) loadStudents(ctx context.Context) ([]gradebook.Student, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, gpa FROM students ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	defer rows.Close()

	var students []gradebook.Student
	for rows.Next() {
		var st gradebook.Student
		if err := rows.Scan(&st.ID, &st.Name, &st.GPA); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read students: %w", err)
	}
	return students, nil
}

// loadOutcomes attaches outcome rows to students. Rows belonging to an
// unknown student are skipped.
func (s *SQLiteStore) loadOutcomes(ctx context.Context, students []gradebook.Student) error {
	index := make(map[string]int, len(students))
	for i, st := range students {
		index[st.ID] = i
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT student_id, course_id, grade, credits_earned FROM outcomes ORDER BY student_id, position`)
	if err != nil {
		return fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var studentID string
		var o gradebook.Outcome
		if err := rows.Scan(&studentID, &o.CourseID, &o.Grade, &o.CreditsEarned); err != nil {
			return fmt.Errorf("scan outcome: %w", err)
		}
		if i, ok := index[studentID]; ok {
			students[i].Outcomes = append(students[i].Outcomes, o)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read outcomes: %w", err)
	}
	return nil
}

// Save replaces the stored roster with snap.
func (s *SQLiteStore) Save(ctx context.Context, snap *gradebook.Snapshot) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, table := range []string{"outcomes", "students", "courses"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, c := range snap.Courses {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO courses (position, id, term, credits) VALUES (?, ?, ?, ?)`,
			i, c.ID, c.Term, c.Credits); err != nil {
			return fmt.Errorf("insert course %q: %w", c.ID, err)
		}
	}

	for i, st := range snap.Students {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO students (position, id, name, gpa) VALUES (?, ?, ?, ?)`,
			i, st.ID, st.Name, st.GPA); err != nil {
			return fmt.Errorf("insert student %q: %w", st.ID, err)
		}
		for j, o := range st.Outcomes {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO outcomes (student_id, position, course_id, grade, credits_earned) VALUES (?, ?, ?, ?, ?)`,
				st.ID, j, o.CourseID, o.Grade, o.CreditsEarned); err != nil {
				return fmt.Errorf("insert outcome for %q: %w", st.ID, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

package gradebook

import (
	"context"
	"errors"
)

// RecordGrade is RegisterOutcome behind boundary validation: the grade must
// be on the scale and the credits earned must be 0 or the course's full
// credit value.
func (r *Roster) RecordGrade(ctx context.Context, studentID, courseID string, grade, credits float64) (*Student, error) {
	if err := ValidateGrade(grade); err != nil {
		return nil, err
	}

	course, ok := r.FindCourse(courseID)
	if !ok {
		return nil, newError("record grade", ErrNotFound, courseID)
	}
	if _, ok := r.FindStudent(studentID); !ok {
		return nil, newError("record grade", ErrNotFound, studentID)
	}
	if err := ValidateCredits(credits, course.Credits); err != nil {
		return nil, err
	}

	return r.RegisterOutcome(ctx, studentID, courseID, grade, credits)
}

// Describe turns an error into a sentence suitable for showing to a user.
// Errors that are not roster errors are returned as-is.
func Describe(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}

	switch e.Kind {
	case ErrDuplicateKey:
		return e.Key + " already exists."
	case ErrNotFound:
		return e.Key + " was not found."
	case ErrInvalidFormat:
		if e.Err != nil {
			return "Invalid value " + e.Key + ": " + e.Err.Error() + "."
		}
		if e.Key == "" {
			return "A value is required."
		}
		return "Invalid value " + e.Key + "."
	case ErrInvalidRange:
		if e.Err != nil {
			return "Invalid range " + e.Key + ": " + e.Err.Error() + "."
		}
		return "Invalid range " + e.Key + "."
	}
	return err.Error()
}

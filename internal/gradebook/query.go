package gradebook

import "sort"

// RankByGPA returns every student ordered by GPA, highest first. Students
// with equal GPA keep their insertion order. The roster itself is not
// reordered.
func (r *Roster) RankByGPA() []Student {
	r.mu.Lock()
	ranked := r.studentsLocked()
	r.mu.Unlock()

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].GPA > ranked[j].GPA
	})
	return ranked
}

// SearchByGPA returns the students whose GPA lies in [min, max], in
// insertion order. Bounds outside the grading scale, or min > max, are
// rejected with ErrInvalidRange.
func (r *Roster) SearchByGPA(min, max float64) ([]Student, error) {
	if err := ValidateGPARange(min, max); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []Student
	for _, s := range r.students {
		if s.GPA >= min && s.GPA <= max {
			matched = append(matched, s.clone())
		}
	}
	return matched, nil
}

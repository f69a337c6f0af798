package gradebook

// Student is a roster entry keyed by an email-shaped identifier.
type Student struct {
	ID       string
	Name     string
	Outcomes []Outcome
	// GPA caches CalculateGPA(Outcomes). Refresh it with Recalculate.
	GPA float64
}

// Recalculate refreshes the cached GPA from the outcome list.
func (s *Student) Recalculate() {
	s.GPA = CalculateGPA(s.Outcomes)
}

// Credits returns the total credits earned.
func (s *Student) Credits() float64 {
	return TotalCredits(s.Outcomes)
}

// clone returns a deep copy so callers cannot mutate roster state.
func (s *Student) clone() Student {
	c := *s
	c.Outcomes = append([]Outcome(nil), s.Outcomes...)
	return c
}

package gradebook

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Outcome is one graded course registration on a student's record.
type Outcome struct {
	CourseID      string  `json:"course_id"`
	Grade         float64 `json:"grade"`
	CreditsEarned float64 `json:"credits_earned"`
}

// Points returns grade weighted by credits earned.
func (o Outcome) Points() float64 {
	return o.Grade * o.CreditsEarned
}

// UnmarshalJSON accepts both the tagged record form and the legacy
// positional form ["CS101", 4, 25] written by older data files.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var tuple []json.RawMessage
		if err := json.Unmarshal(data, &tuple); err != nil {
			return err
		}
		if len(tuple) != 3 {
			return fmt.Errorf("outcome tuple: want 3 elements, got %d", len(tuple))
		}
		if err := json.Unmarshal(tuple[0], &o.CourseID); err != nil {
			return fmt.Errorf("outcome course: %w", err)
		}
		if err := json.Unmarshal(tuple[1], &o.Grade); err != nil {
			return fmt.Errorf("outcome grade: %w", err)
		}
		if err := json.Unmarshal(tuple[2], &o.CreditsEarned); err != nil {
			return fmt.Errorf("outcome credits: %w", err)
		}
		return nil
	}

	type plain Outcome
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*o = Outcome(p)
	return nil
}

package gradebook

// CalculateGPA returns the credit-weighted average grade over outcomes,
// or 0 when no credits have been earned. Inputs are taken as given.
func CalculateGPA(outcomes []Outcome) float64 {
	var points, credits float64
	for _, o := range outcomes {
		points += o.Points()
		credits += o.CreditsEarned
	}
	if credits == 0 {
		return 0.0
	}
	return points / credits
}

// TotalCredits sums credits earned over outcomes.
func TotalCredits(outcomes []Outcome) float64 {
	var total float64
	for _, o := range outcomes {
		total += o.CreditsEarned
	}
	return total
}

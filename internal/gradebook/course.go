package gradebook

// DefaultFullCredits is the credit value of a passed course when none is configured.
const DefaultFullCredits = 25

// Course is an offered course keyed by its code or name.
type Course struct {
	ID   string
	Term string // trimester label, e.g. "September 2024"
	// Credits is the number of credits attempted; a pass earns all of them.
	Credits float64
}

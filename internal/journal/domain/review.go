package domain

// Review is the verdict produced for a piece of submitted text.
type Review struct {
	Passed   bool
	Score    float64
	Feedback map[string][]string // section -> remarks
}

package domain

import "time"

// SubmissionStatus is the lifecycle state of a paper. Only "submitted"
// exists today.
type SubmissionStatus string

const StatusSubmitted SubmissionStatus = "submitted"

// Submission is a paper owned by exactly one account. ID is unique within
// that account only.
type Submission struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	Authors     []string         `json:"authors"`
	Abstract    string           `json:"abstract"`
	SubmittedAt time.Time        `json:"submitted_at"`
	Status      SubmissionStatus `json:"status"`
}

func (s Submission) Clone() Submission {
	s.Authors = append([]string{}, s.Authors...)
	return s
}

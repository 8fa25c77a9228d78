package journalsdk

import "time"

// ============================================================================
// Requests
// ============================================================================

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Name     string `json:"name,omitempty" validate:"max=200"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SubmitPaperRequest is the body of POST /api/submit-paper. Fields are
// free-form and none are required.
type SubmitPaperRequest struct {
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`
	Abstract string   `json:"abstract"`
}

// ReviewRequest is the body of POST /api/gpt-review.
type ReviewRequest struct {
	Content string `json:"content"`
}

// ============================================================================
// Responses
// ============================================================================

// UserSummary is the account part of an AuthResponse.
type UserSummary struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message     string      `json:"message"`
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresAt   time.Time   `json:"expires_at"`
	User        UserSummary `json:"user"`
}

// ProfileResponse is returned by GET /api/profile.
type ProfileResponse struct {
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	PapersCount int       `json:"papers_count"`
}

// Paper is a submission as seen over the API.
type Paper struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Authors     []string  `json:"authors"`
	Abstract    string    `json:"abstract"`
	SubmittedAt time.Time `json:"submitted_at"`
	Status      string    `json:"status"`
}

// SubmitPaperResponse is returned by POST /api/submit-paper.
type SubmitPaperResponse struct {
	Message string `json:"message"`
	Paper   Paper  `json:"paper"`
}

// ListPapersResponse is returned by GET /api/my-papers.
type ListPapersResponse struct {
	Papers []Paper `json:"papers"`
}

// ReviewResponse is returned by POST /api/gpt-review.
type ReviewResponse struct {
	Passed   bool                `json:"passed"`
	Score    float64             `json:"score"`
	Feedback map[string][]string `json:"feedback"`
}

// HealthResponse is returned by /health, /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message,omitempty"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of the service's dependencies.
type HealthChecks struct {
	Store string `json:"store"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is the machine-readable code (e.g. "invalid_credentials")
	Error string `json:"error"`

	// ErrorDescription is a human-readable message
	ErrorDescription string `json:"error_description"`

	// Details maps request fields to problems, for validation errors only
	Details map[string]string `json:"details,omitempty"`
}

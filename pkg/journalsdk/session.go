package journalsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Session is an authenticated view of the API for one account. Tokens are
// not refreshed; once the server answers ErrTokenExpired, log in again.
type Session struct {
	client      *Client
	accessToken string
}

// AccessToken returns the bearer token the session sends.
func (s *Session) AccessToken() string {
	return s.accessToken
}

// Profile fetches the caller's profile.
func (s *Session) Profile(ctx context.Context) (*ProfileResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/profile", nil, nil)
	if err != nil {
		return nil, err
	}

	var out ProfileResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitPaper records a new submission for the caller.
func (s *Session) SubmitPaper(ctx context.Context, req SubmitPaperRequest) (*Paper, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/submit-paper", bytes.NewReader(body), map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		return nil, err
	}

	var out SubmitPaperResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Paper, nil
}

// ListPapers returns the caller's submissions in submission order.
func (s *Session) ListPapers(ctx context.Context) ([]Paper, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/my-papers", nil, nil)
	if err != nil {
		return nil, err
	}

	var out ListPapersResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Papers, nil
}

// Review submits content to the automated reviewer. Nothing is stored.
func (s *Session) Review(ctx context.Context, content string) (*ReviewResponse, error) {
	body, err := json.Marshal(ReviewRequest{Content: content})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/gpt-review", bytes.NewReader(body), map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		return nil, err
	}

	var out ReviewResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

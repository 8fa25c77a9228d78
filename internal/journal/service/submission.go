package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/journal/internal/journal/domain"
	"github.com/aussiebroadwan/journal/internal/journal/store"
	"github.com/aussiebroadwan/journal/pkg/slogx"
)

type SubmissionService struct {
	Repo *store.Repository
	Now  func() time.Time
}

// Submit appends a paper to the account's submissions. The id is computed
// and saved in the same critical section, so concurrent submits for one
// account never share an id.
func (s *SubmissionService) Submit(ctx context.Context, email, title string, authors []string, abstract string) (domain.Submission, error) {
	var sub domain.Submission
	err := s.Repo.Update(ctx, func(accounts domain.Accounts) error {
		a, ok := accounts[email]
		if !ok {
			return ErrNotFound
		}
		sub = a.Append(title, authors, abstract, s.now()).Clone()
		return nil
	})
	if err != nil {
		return domain.Submission{}, err
	}

	slogx.FromContext(ctx).Info("paper submitted",
		slog.String("email", email),
		slog.Int("paper_id", sub.ID),
	)
	return sub, nil
}

// List returns the account's own submissions, oldest first.
func (s *SubmissionService) List(ctx context.Context, email string) ([]domain.Submission, error) {
	var papers []domain.Submission
	err := s.Repo.View(ctx, func(accounts domain.Accounts) error {
		a, ok := accounts[email]
		if !ok {
			return ErrNotFound
		}
		papers = make([]domain.Submission, len(a.Papers))
		for i, p := range a.Papers {
			papers[i] = p.Clone()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return papers, nil
}

func (s *SubmissionService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

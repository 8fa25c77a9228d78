package service

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/journal/internal/journal/domain"
)

// Reviewer scores a piece of manuscript text.
type Reviewer interface {
	Review(ctx context.Context, content string) (domain.Review, error)
}

// KeywordReviewer is a stand-in reviewer that passes any text mentioning one
// of Keywords. It holds no state.
type KeywordReviewer struct {
	Keywords []string
}

// DefaultReviewKeywords are matched case-insensitively.
var DefaultReviewKeywords = []string{"recognition", "golden ratio"}

func NewKeywordReviewer() KeywordReviewer {
	return KeywordReviewer{Keywords: DefaultReviewKeywords}
}

func (r KeywordReviewer) Review(_ context.Context, content string) (domain.Review, error) {
	text := strings.ToLower(content)

	for _, kw := range r.Keywords {
		if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
			return domain.Review{
				Passed: true,
				Score:  9.2,
				Feedback: map[string][]string{
					"strengths": {
						"Outstanding mathematical rigor",
						"Zero free parameters",
						"Clear methodology",
					},
					"suggestions": {
						"Consider additional examples",
					},
				},
			}, nil
		}
	}

	return domain.Review{
		Passed: false,
		Score:  6.5,
		Feedback: map[string][]string{
			"major_issues": {
				"Mathematical proofs need strengthening",
				"Insufficient literature review",
			},
			"minor_issues": {
				"Formatting consistency",
			},
		},
	}, nil
}

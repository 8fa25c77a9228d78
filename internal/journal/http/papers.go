package http

import (
	"net/http"

	"github.com/aussiebroadwan/journal/internal/journal/domain"
	"github.com/aussiebroadwan/journal/internal/journal/service"
	"github.com/aussiebroadwan/journal/pkg/httpx"
	"github.com/aussiebroadwan/journal/pkg/journalsdk"
)

type SubmitPaperHandler struct {
	SubmissionService *service.SubmissionService
}

// ServeHTTP godoc
//
//	@Summary		Submit paper
//	@Description	Record a new submission for the caller. Ids count up from 1 per account.
//	@Tags			Papers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		journalsdk.SubmitPaperRequest	true	"title, authors, abstract"
//	@Success		201		{object}	journalsdk.SubmitPaperResponse	"message, paper"
//	@Failure		400		{object}	journalsdk.ErrorResponse		"malformed body"
//	@Failure		401		{object}	journalsdk.ErrorResponse		"invalid or expired token"
//	@Failure		404		{object}	journalsdk.ErrorResponse		"account no longer exists"
//	@Failure		503		{object}	journalsdk.ErrorResponse		"storage unavailable"
//	@Router			/api/submit-paper [post].
func (h *SubmitPaperHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		writeAuthnError(w, r, service.ErrInvalidToken)
		return
	}

	var req journalsdk.SubmitPaperRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	sub, err := h.SubmissionService.Submit(ctx, identity, req.Title, req.Authors, req.Abstract)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, journalsdk.SubmitPaperResponse{
		Message: "Paper submitted successfully",
		Paper:   toPaper(sub),
	})
}

type ListPapersHandler struct {
	SubmissionService *service.SubmissionService
}

// ServeHTTP godoc
//
//	@Summary		List papers
//	@Description	Return the caller's submissions in submission order
//	@Tags			Papers
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	journalsdk.ListPapersResponse	"papers"
//	@Failure		401	{object}	journalsdk.ErrorResponse		"invalid or expired token"
//	@Failure		404	{object}	journalsdk.ErrorResponse		"account no longer exists"
//	@Failure		503	{object}	journalsdk.ErrorResponse		"storage unavailable"
//	@Router			/api/my-papers [get].
func (h *ListPapersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		writeAuthnError(w, r, service.ErrInvalidToken)
		return
	}

	subs, err := h.SubmissionService.List(ctx, identity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	papers := make([]journalsdk.Paper, 0, len(subs))
	for _, s := range subs {
		papers = append(papers, toPaper(s))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, journalsdk.ListPapersResponse{Papers: papers})
}

type ReviewHandler struct {
	Reviewer service.Reviewer
}

// ServeHTTP godoc
//
//	@Summary		Automated review
//	@Description	Score a draft. The result is not stored.
//	@Tags			Papers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		journalsdk.ReviewRequest	true	"content"
//	@Success		200		{object}	journalsdk.ReviewResponse	"passed, score, feedback"
//	@Failure		400		{object}	journalsdk.ErrorResponse	"malformed body"
//	@Failure		401		{object}	journalsdk.ErrorResponse	"invalid or expired token"
//	@Router			/api/gpt-review [post].
func (h *ReviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req journalsdk.ReviewRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	review, err := h.Reviewer.Review(r.Context(), req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, journalsdk.ReviewResponse{
		Passed:   review.Passed,
		Score:    review.Score,
		Feedback: review.Feedback,
	})
}

func toPaper(s domain.Submission) journalsdk.Paper {
	authors := s.Authors
	if authors == nil {
		authors = []string{}
	}
	return journalsdk.Paper{
		ID:          s.ID,
		Title:       s.Title,
		Authors:     authors,
		Abstract:    s.Abstract,
		SubmittedAt: s.SubmittedAt,
		Status:      string(s.Status),
	}
}

package subm

import (
	"context"
	"errors"

	"github.com/ninenine-news/backend/logger"
	"github.com/ninenine-news/backend/store"
)

type ReviewParams struct {
	Status   *store.Status
	Score    *int
	Feedback *string
}

// Review transitions a submission to approved, rejected or needs_revision.
// Status, score, feedback, reviewer id and review timestamp are set together
// in one store operation. Re-reviewing is allowed and overwrites the prior
// review metadata.
func (s *SubmSrvc) Review(ctx context.Context, caller Caller, submissionID int64, p ReviewParams) (*Submission, error) {
	if !CanReview(caller) {
		return nil, newErrAccessDenied()
	}

	if p.Status == nil || p.Score == nil {
		return nil, newErrStatusScoreRequired()
	}
	if !p.Status.ReviewStatus() {
		return nil, newErrInvalidStatus()
	}
	if *p.Score < 0 || *p.Score > 100 {
		return nil, newErrScoreOutOfRange()
	}

	feedback := ""
	if p.Feedback != nil {
		feedback = *p.Feedback
	}

	existing, err := s.store.SubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if existing == nil {
		return nil, newErrSubmissionNotFound()
	}

	reviewerID := caller.ID
	updated, err := s.store.UpdateSubmission(ctx, submissionID, store.SubmissionUpdate{
		Status:     p.Status,
		Score:      p.Score,
		Feedback:   &feedback,
		ReviewerID: &reviewerID,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, newErrSubmissionNotFound()
		}
		return nil, newErrInternalSE().SetDebug(err)
	}

	logger.FromContext(ctx).Info("submission reviewed",
		"id", updated.ID, "status", updated.Status,
		"score", *p.Score, "reviewer", reviewerID)

	view, err := s.enrich(ctx, updated)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

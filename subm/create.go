package subm

import (
	"context"
	"strings"

	"github.com/ninenine-news/backend/logger"
	"github.com/ninenine-news/backend/store"
)

type SubmitParams struct {
	Title   string
	Content string
}

// Submit creates a pending submission for the authenticated owner. All
// review fields start null; only a later review may set them.
func (s *SubmSrvc) Submit(ctx context.Context, ownerID int64, p SubmitParams) (*store.Submission, error) {
	if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.Content) == "" {
		return nil, newErrTitleContentRequired()
	}

	created, err := s.store.CreateSubmission(ctx, ownerID, p.Title, p.Content)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	logger.FromContext(ctx).Info("submission created",
		"id", created.ID, "owner", ownerID)

	return &created, nil
}

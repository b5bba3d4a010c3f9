package subm

import (
	"context"

	"github.com/ninenine-news/backend/store"
)

type Stats struct {
	TotalUsers          int
	TotalSubmissions    int
	PendingSubmissions  int
	ApprovedSubmissions int // submissions at or above the certification threshold
}

// Stats returns platform aggregates. Admin-only. Counts are read one query
// at a time; a write landing between them is acceptable for statistics.
func (s *SubmSrvc) Stats(ctx context.Context, caller Caller) (*Stats, error) {
	if !CanListAll(caller) {
		return nil, newErrAccessDenied()
	}

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	subms, err := s.store.ListSubmissions(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	pending, err := s.store.CountSubmissionsByStatus(ctx, store.StatusPending)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	approved, err := s.store.CountSubmissionsByMinScore(ctx, CertificationThreshold)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return &Stats{
		TotalUsers:          len(users),
		TotalSubmissions:    len(subms),
		PendingSubmissions:  pending,
		ApprovedSubmissions: approved,
	}, nil
}

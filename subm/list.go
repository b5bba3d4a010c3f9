package subm

import (
	"context"
	"sort"

	"github.com/ninenine-news/backend/store"
)

// ListMine returns the caller's own submissions, newest first. Scoped to the
// caller's id, so no further policy check applies.
func (s *SubmSrvc) ListMine(ctx context.Context, callerID int64) ([]Submission, error) {
	subms, err := s.store.SubmissionsByOwner(ctx, callerID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	return s.enrichAndSort(ctx, subms)
}

// ListAll returns every submission, newest first. Admin-only.
func (s *SubmSrvc) ListAll(ctx context.Context, caller Caller) ([]Submission, error) {
	if !CanListAll(caller) {
		return nil, newErrAccessDenied()
	}
	subms, err := s.store.ListSubmissions(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	return s.enrichAndSort(ctx, subms)
}

func (s *SubmSrvc) enrichAndSort(ctx context.Context, subms []store.Submission) ([]Submission, error) {
	views := make([]Submission, 0, len(subms))
	for _, subm := range subms {
		view, err := s.enrich(ctx, subm)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].SubmittedAt.After(views[j].SubmittedAt)
	})
	return views, nil
}

package subm

import (
	"context"
)

// Get returns one submission with display names. Owner-or-admin; everyone
// else gets access denied, including on records that do exist.
func (s *SubmSrvc) Get(ctx context.Context, caller Caller, id int64) (*Submission, error) {
	found, err := s.store.SubmissionByID(ctx, id)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if found == nil {
		return nil, newErrSubmissionNotFound()
	}

	if !CanReadSubmission(caller, *found) {
		return nil, newErrAccessDenied()
	}

	view, err := s.enrich(ctx, *found)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

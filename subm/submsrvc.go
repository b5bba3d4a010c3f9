package subm

import (
	"context"

	"github.com/ninenine-news/backend/store"
)

// SubmSrvc is the submission lifecycle: it owns which fields may change
// together and who may change them. All persistence goes through the record
// store, so both backends get identical behavior.
type SubmSrvc struct {
	store store.Store
}

func NewSubmSrvc(s store.Store) *SubmSrvc {
	return &SubmSrvc{store: s}
}

// Caller is the verified identity supplied by the auth collaborator. The
// service trusts it; token verification already happened upstream.
type Caller struct {
	ID    int64
	Admin bool
}

// Submission is the read-side shape: the stored record enriched with display
// names for presentation.
type Submission struct {
	store.Submission
	OwnerName    string
	OwnerEmail   string
	ReviewerName *string
}

// CertificationThreshold is the minimum score that makes a reviewed
// submission certification-eligible. Derived on read, never stored.
const CertificationThreshold = 70

func EligibleForCertification(score *int) bool {
	return score != nil && *score >= CertificationThreshold
}

// enrich resolves owner and reviewer display fields. A dangling reference
// renders as "Unknown" rather than failing the read.
func (s *SubmSrvc) enrich(ctx context.Context, subm store.Submission) (Submission, error) {
	view := Submission{Submission: subm, OwnerName: "Unknown", OwnerEmail: "Unknown"}

	owner, err := s.store.UserByID(ctx, subm.OwnerID)
	if err != nil {
		return Submission{}, newErrInternalSE().SetDebug(err)
	}
	if owner != nil {
		view.OwnerName = owner.Name
		view.OwnerEmail = owner.Email
	}

	if subm.ReviewerID != nil {
		reviewer, err := s.store.UserByID(ctx, *subm.ReviewerID)
		if err != nil {
			return Submission{}, newErrInternalSE().SetDebug(err)
		}
		if reviewer != nil {
			view.ReviewerName = &reviewer.Name
		}
	}

	return view, nil
}

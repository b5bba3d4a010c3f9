package subm

import "github.com/ninenine-news/backend/store"

// Access policy predicates over (caller, record). The route layer evaluates
// the same predicates before dispatch; the service re-evaluates them so the
// rules hold no matter who calls it.

// CanReadSubmission permits the owning account and any administrator.
func CanReadSubmission(c Caller, subm store.Submission) bool {
	return c.Admin || subm.OwnerID == c.ID
}

// CanReview permits administrators only.
func CanReview(c Caller) bool {
	return c.Admin
}

// CanListAll permits administrators only; it also gates the aggregate
// statistics.
func CanListAll(c Caller) bool {
	return c.Admin
}

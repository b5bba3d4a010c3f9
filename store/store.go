package store

import "context"

// Store is the record store contract. Both backends behave identically as
// observed through this interface; the service layer never knows which one
// it is talking to.
//
// Lookups return (nil, nil) when the record is absent. Mutations referencing
// a missing id return ErrNotFound. Adapter I/O failures wrap
// ErrStorageUnavailable.
type Store interface {
	CreateUser(ctx context.Context, email, passwordHash, name string, role Role) (User, error)
	UserByEmail(ctx context.Context, email string) (*User, error)
	UserByID(ctx context.Context, id int64) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, id int64, email, passwordHash, name string, role Role) (User, error)

	CreateSubmission(ctx context.Context, ownerID int64, title, content string) (Submission, error)
	SubmissionByID(ctx context.Context, id int64) (*Submission, error)
	SubmissionsByOwner(ctx context.Context, ownerID int64) ([]Submission, error)
	ListSubmissions(ctx context.Context) ([]Submission, error)
	UpdateSubmission(ctx context.Context, id int64, upd SubmissionUpdate) (Submission, error)

	CountSubmissionsByStatus(ctx context.Context, status Status) (int, error)
	CountSubmissionsByMinScore(ctx context.Context, threshold int) (int, error)
}

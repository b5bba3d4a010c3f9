package user

import (
	"context"
	"sort"

	"github.com/ninenine-news/backend/store"
)

// ListUsers returns every account, hashes stripped, newest first. Admin-only;
// the route layer gates it and the submission service re-checks for stats.
func (s *UserSrvc) ListUsers(ctx context.Context) ([]store.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

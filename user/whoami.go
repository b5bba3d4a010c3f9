package user

import (
	"context"

	"github.com/ninenine-news/backend/store"
)

// WhoAmI returns the account behind an authenticated caller id.
func (s *UserSrvc) WhoAmI(ctx context.Context, id int64) (*store.User, error) {
	found, err := s.store.UserByID(ctx, id)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if found == nil {
		return nil, newErrUserNotFound()
	}
	found.PasswordHash = ""
	return found, nil
}

package user

import (
	"context"

	"github.com/ninenine-news/backend/store"
	"golang.org/x/crypto/bcrypt"
)

// Login verifies the email/password pair. Unknown email and wrong password
// are indistinguishable to the caller.
func (s *UserSrvc) Login(ctx context.Context, email, password string) (*store.User, error) {
	if email == "" || password == "" {
		return nil, newErrMissingFields()
	}

	found, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if found == nil {
		return nil, newErrInvalidCredentials()
	}

	err = bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password))
	if err != nil {
		return nil, newErrInvalidCredentials()
	}

	found.PasswordHash = ""
	return found, nil
}

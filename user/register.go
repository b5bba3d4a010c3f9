package user

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/ninenine-news/backend/store"
	"golang.org/x/crypto/bcrypt"
)

type RegisterParams struct {
	Email    string
	Password string
	Name     string
}

// Register creates a member account. Emails are unique; the store's
// duplicate check is authoritative even though we pre-check here.
func (s *UserSrvc) Register(ctx context.Context, p RegisterParams) (*store.User, error) {
	if err := validateRegisterParams(p); err != nil {
		return nil, err
	}

	existing, err := s.store.UserByEmail(ctx, p.Email)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if existing != nil {
		return nil, newErrEmailExists()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	created, err := s.store.CreateUser(ctx, p.Email, string(hash), p.Name, store.RoleMember)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, newErrEmailExists()
		}
		return nil, newErrInternalSE().SetDebug(err)
	}

	created.PasswordHash = ""
	return &created, nil
}

func validateRegisterParams(p RegisterParams) error {
	if strings.TrimSpace(p.Email) == "" ||
		strings.TrimSpace(p.Password) == "" ||
		strings.TrimSpace(p.Name) == "" {
		return newErrMissingFields()
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return newErrEmailInvalid()
	}
	return nil
}

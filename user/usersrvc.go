package user

import (
	"github.com/ninenine-news/backend/store"
)

// UserSrvc owns account registration, login and lookup on top of the record
// store. Password hashes never leave this package.
type UserSrvc struct {
	store store.Store
}

func NewUserSrvc(s store.Store) *UserSrvc {
	return &UserSrvc{store: s}
}

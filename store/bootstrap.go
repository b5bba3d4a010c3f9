package store

import (
	"context"
	"fmt"

	"github.com/ninenine-news/backend/logger"
	"golang.org/x/crypto/bcrypt"
)

// Canonical administrator identity guaranteed to exist after Bootstrap.
const (
	CanonicalAdminEmail = "admin@99.ninenine"
	CanonicalAdminName  = "admin99"

	// DefaultAdminPassword is the documented first-run password. Deployments
	// are expected to change it after the first login.
	DefaultAdminPassword = "admin99*"

	// legacyAdminEmail identifies installations created before the rebrand;
	// their admin record is migrated in place to the canonical identity.
	legacyAdminEmail = "admin@byline.com"
)

// Bootstrap ensures the canonical administrator account exists. It runs once
// at process start and is idempotent: a second run after success performs no
// mutation.
func Bootstrap(ctx context.Context, s Store) error {
	log := logger.FromContext(ctx)

	users, err := s.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: list users: %w", err)
	}

	if len(users) == 0 {
		hash, err := hashDefaultPassword()
		if err != nil {
			return err
		}
		if _, err := s.CreateUser(ctx, CanonicalAdminEmail, hash, CanonicalAdminName, RoleAdministrator); err != nil {
			return fmt.Errorf("bootstrap: create admin: %w", err)
		}
		log.Info("default admin user created", "email", CanonicalAdminEmail)
		return nil
	}

	canonical, err := s.UserByEmail(ctx, CanonicalAdminEmail)
	if err != nil {
		return fmt.Errorf("bootstrap: find canonical admin: %w", err)
	}
	if canonical != nil {
		return nil
	}

	legacy, err := s.UserByEmail(ctx, legacyAdminEmail)
	if err != nil {
		return fmt.Errorf("bootstrap: find legacy admin: %w", err)
	}

	hash, err := hashDefaultPassword()
	if err != nil {
		return err
	}

	if legacy != nil {
		// One-time migration: keep the id so submissions linked to the old
		// admin stay linked.
		if _, err := s.UpdateUser(ctx, legacy.ID, CanonicalAdminEmail, hash, CanonicalAdminName, RoleAdministrator); err != nil {
			return fmt.Errorf("bootstrap: migrate legacy admin: %w", err)
		}
		log.Info("admin credentials migrated", "email", CanonicalAdminEmail)
		return nil
	}

	if _, err := s.CreateUser(ctx, CanonicalAdminEmail, hash, CanonicalAdminName, RoleAdministrator); err != nil {
		return fmt.Errorf("bootstrap: create admin: %w", err)
	}
	log.Info("admin user created", "email", CanonicalAdminEmail)
	return nil
}

func hashDefaultPassword() (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bootstrap: hash default password: %w", err)
	}
	return string(hash), nil
}

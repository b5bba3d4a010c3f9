package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/ninenine-news/backend/conf"
	"github.com/ninenine-news/backend/store"
	"github.com/ninenine-news/backend/store/filestore"
	"github.com/ninenine-news/backend/store/pgstore"
	"github.com/rs/zerolog/log"
)

// openStore selects the same backend the server would: Postgres when
// DATABASE_URL is set, the JSON snapshot file otherwise.
func openStore(ctx context.Context) (store.Store, func(), error) {
	_ = godotenv.Load()

	cfg, err := conf.Load()
	if err != nil {
		return nil, nil, err
	}

	if cfg.UsePostgres() {
		pg, err := pgstore.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Msg("connected to PostgreSQL")
		return pg, pg.Close, nil
	}

	log.Debug().Str("path", cfg.DataFile).Msg("using JSON file storage")
	return filestore.New(cfg.DataFile), func() {}, nil
}

// adminCaller resolves the canonical admin account so reviews done from the
// CLI carry a real reviewer id.
func adminCaller(ctx context.Context, s store.Store) (int64, error) {
	admin, err := s.UserByEmail(ctx, store.CanonicalAdminEmail)
	if err != nil {
		return 0, err
	}
	if admin == nil {
		if err := store.Bootstrap(ctx, s); err != nil {
			return 0, err
		}
		admin, err = s.UserByEmail(ctx, store.CanonicalAdminEmail)
		if err != nil {
			return 0, err
		}
	}
	return admin.ID, nil
}

// Package pgstore implements the record store on PostgreSQL via pgx. Ids are
// database-assigned sequences and every mutating operation is one statement,
// so concurrent writers are safe without explicit transactions.
package pgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ninenine-news/backend/store"
)

type PgStore struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

// Connect opens a pool and applies the schema.
func Connect(ctx context.Context, connStr string) (*PgStore, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("create pg pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, store.Unavailable(err)
	}
	pg := New(pool)
	if err := pg.InitSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pg, nil
}

func (p *PgStore) Close() {
	p.pool.Close()
}

// InitSchema creates the two tables when absent. Idempotent.
func (p *PgStore) InitSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL,
			is_admin INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS submissions (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'pending'
				CHECK (status IN ('pending', 'approved', 'rejected', 'needs_revision')),
			score INTEGER,
			feedback TEXT,
			submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			reviewed_by BIGINT REFERENCES users(id),
			reviewed_at TIMESTAMPTZ
		)`,
	}
	for _, stmt := range statements {
		if _, err := p.pool.Exec(ctx, stmt); err != nil {
			return store.Unavailable(fmt.Errorf("init schema: %w", err))
		}
	}
	return nil
}

const userColumns = "id, email, password, name, is_admin, created_at"

func (p *PgStore) CreateUser(ctx context.Context, email, passwordHash, name string, role store.Role) (store.User, error) {
	query := `
		INSERT INTO users (email, password, name, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns
	row := p.pool.QueryRow(ctx, query, email, passwordHash, name, adminFlag(role))
	user, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return store.User{}, store.ErrDuplicateEmail
		}
		return store.User{}, store.Unavailable(err)
	}
	return user, nil
}

func (p *PgStore) UserByEmail(ctx context.Context, email string) (*store.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(p.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, store.Unavailable(err)
	}
	return &user, nil
}

func (p *PgStore) UserByID(ctx context.Context, id int64) (*store.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, store.Unavailable(err)
	}
	return &user, nil
}

func (p *PgStore) ListUsers(ctx context.Context) ([]store.User, error) {
	query := `SELECT id, email, name, is_admin, created_at FROM users`
	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, store.Unavailable(err)
	}
	defer rows.Close()

	users := make([]store.User, 0)
	for rows.Next() {
		var user store.User
		var isAdmin int
		err := rows.Scan(&user.ID, &user.Email, &user.Name, &isAdmin, &user.CreatedAt)
		if err != nil {
			return nil, store.Unavailable(err)
		}
		user.Role = store.RoleFromAdminFlag(isAdmin != 0)
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, store.Unavailable(err)
	}
	return users, nil
}

func (p *PgStore) UpdateUser(ctx context.Context, id int64, email, passwordHash, name string, role store.Role) (store.User, error) {
	query := `
		UPDATE users
		SET email = $2, password = $3, name = $4, is_admin = $5
		WHERE id = $1
		RETURNING ` + userColumns
	row := p.pool.QueryRow(ctx, query, id, email, passwordHash, name, adminFlag(role))
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.User{}, store.ErrNotFound
		}
		if isUniqueViolation(err) {
			return store.User{}, store.ErrDuplicateEmail
		}
		return store.User{}, store.Unavailable(err)
	}
	return user, nil
}

const submColumns = "id, user_id, title, content, status, score, feedback, submitted_at, reviewed_by, reviewed_at"

func (p *PgStore) CreateSubmission(ctx context.Context, ownerID int64, title, content string) (store.Submission, error) {
	query := `
		INSERT INTO submissions (user_id, title, content, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + submColumns
	row := p.pool.QueryRow(ctx, query, ownerID, title, content, string(store.StatusPending))
	subm, err := scanSubmission(row)
	if err != nil {
		return store.Submission{}, store.Unavailable(err)
	}
	return subm, nil
}

func (p *PgStore) SubmissionByID(ctx context.Context, id int64) (*store.Submission, error) {
	query := `SELECT ` + submColumns + ` FROM submissions WHERE id = $1`
	subm, err := scanSubmission(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, store.Unavailable(err)
	}
	return &subm, nil
}

func (p *PgStore) SubmissionsByOwner(ctx context.Context, ownerID int64) ([]store.Submission, error) {
	query := `SELECT ` + submColumns + ` FROM submissions WHERE user_id = $1`
	return p.querySubmissions(ctx, query, ownerID)
}

func (p *PgStore) ListSubmissions(ctx context.Context) ([]store.Submission, error) {
	query := `SELECT ` + submColumns + ` FROM submissions`
	return p.querySubmissions(ctx, query)
}

// UpdateSubmission merges the supplied fields in a single statement. The
// review timestamp is stamped server-side whenever status changes, which is
// what makes a review atomic against concurrent readers.
func (p *PgStore) UpdateSubmission(ctx context.Context, id int64, upd store.SubmissionUpdate) (store.Submission, error) {
	query := `
		UPDATE submissions
		SET status      = COALESCE($2, status),
		    score       = COALESCE($3, score),
		    feedback    = COALESCE($4, feedback),
		    reviewed_by = COALESCE($5, reviewed_by),
		    reviewed_at = CASE WHEN $2::varchar IS NOT NULL THEN NOW() ELSE reviewed_at END
		WHERE id = $1
		RETURNING ` + submColumns

	var status *string
	if upd.Status != nil {
		s := string(*upd.Status)
		status = &s
	}
	row := p.pool.QueryRow(ctx, query, id, status, upd.Score, upd.Feedback, upd.ReviewerID)
	subm, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.Submission{}, store.ErrNotFound
		}
		return store.Submission{}, store.Unavailable(err)
	}
	return subm, nil
}

func (p *PgStore) CountSubmissionsByStatus(ctx context.Context, status store.Status) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM submissions WHERE status = $1`
	err := p.pool.QueryRow(ctx, query, string(status)).Scan(&count)
	if err != nil {
		return 0, store.Unavailable(err)
	}
	return count, nil
}

func (p *PgStore) CountSubmissionsByMinScore(ctx context.Context, threshold int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM submissions WHERE score >= $1`
	err := p.pool.QueryRow(ctx, query, threshold).Scan(&count)
	if err != nil {
		return 0, store.Unavailable(err)
	}
	return count, nil
}

func (p *PgStore) querySubmissions(ctx context.Context, query string, args ...any) ([]store.Submission, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, store.Unavailable(err)
	}
	defer rows.Close()

	subms := make([]store.Submission, 0)
	for rows.Next() {
		subm, err := scanSubmission(rows)
		if err != nil {
			return nil, store.Unavailable(err)
		}
		subms = append(subms, subm)
	}
	if err := rows.Err(); err != nil {
		return nil, store.Unavailable(err)
	}
	return subms, nil
}

func scanUser(row pgx.Row) (store.User, error) {
	var user store.User
	var isAdmin int
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&isAdmin,
		&user.CreatedAt,
	)
	if err != nil {
		return store.User{}, err
	}
	user.Role = store.RoleFromAdminFlag(isAdmin != 0)
	return user, nil
}

func scanSubmission(row pgx.Row) (store.Submission, error) {
	var subm store.Submission
	var status string
	err := row.Scan(
		&subm.ID,
		&subm.OwnerID,
		&subm.Title,
		&subm.Content,
		&status,
		&subm.Score,
		&subm.Feedback,
		&subm.SubmittedAt,
		&subm.ReviewerID,
		&subm.ReviewedAt,
	)
	if err != nil {
		return store.Submission{}, err
	}
	subm.Status = store.Status(status)
	return subm, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func adminFlag(role store.Role) int {
	if role.IsAdmin() {
		return 1
	}
	return 0
}

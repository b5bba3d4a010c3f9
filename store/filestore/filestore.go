// Package filestore persists the whole dataset as one JSON snapshot. Every
// read reloads the snapshot from disk and every mutation rewrites it, so the
// adapter survives process restarts but must never be shared between
// processes. Serializing every operation behind one mutex is a design
// invariant: two concurrent load-mutate-persist cycles would drop a writer.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ninenine-news/backend/store"
)

type FileStore struct {
	mu   sync.Mutex
	path string
}

func New(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) CreateUser(ctx context.Context, email, passwordHash, name string, role store.Role) (store.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	db, err := f.load()
	if err != nil {
		return store.User{}, err
	}
	for _, u := range db.Users {
		if u.Email == email {
			return store.User{}, store.ErrDuplicateEmail
		}
	}
	row := userRow{
		ID:        nextUserID(db.Users),
		Email:     email,
		Password:  passwordHash,
		Name:      name,
		IsAdmin:   adminFlag(role),
		CreatedAt: time.Now(),
	}
	db.Users = append(db.Users, row)
	if err := f.save(db); err != nil {
		return store.User{}, err
	}
	return row.toUser(), nil
}

func (f *FileStore) UserByEmail(ctx context.Context, email string) (*store.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	db, err := f.load()
	if err != nil {
		return nil, err
	}
	for _, u := range db.Users {
		if u.Email == email {
			user := u.toUser()
			return &user, nil
		}
	}
	return nil, nil
}

func (f *FileStore) UserByID(ctx context.Context, id int64) (*store.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	db, err := f.load()
	if err != nil {
		return nil, err
	}
	for _, u := range db.Users {
		if u.ID == id {
			user := u.toUser()
			return &user, nil
		}
	}
	return nil, nil
}

func (f *FileStore) ListUsers(ctx context.Context) ([]store.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	db, err := f.load()
	if err != nil {
		return nil, err
	}
	users := make([]store.User, 0, len(db.Users))
	for _, u := range db.Users {
		user := u.toUser()
		user.PasswordHash = ""
		users = append(users, user)
	}
	return users, nil
}

func (f *FileStore) UpdateUser(ctx context.Context, id int64, email, passwordHash, name string, role store.Role) (store.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	db, err := f.load()
	if err != nil {
		return store.User{}, err
	}
	for i := range db.Users {
		if db.Users[i].ID == id {
			db.Users[i].Email = email
			db.Users[i].Password = passwordHash
			db.Users[i].Name = name
			db.Users[i].IsAdmin = adminFlag(role)
			if err := f.save(db); err != nil {
				return store.User{}, err
			}
			return db.Users[i].toUser(), nil
		}
	}
	return store.User{}, store.ErrNotFound
}

func (f *FileStore) CreateSubmission(ctx context.Context, ownerID int64, title, content string) (store.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	db, err := f.load()
	if err != nil {
		return store.Submission{}, err
	}
	row := submissionRow{
		ID:          nextSubmissionID(db.Submissions),
		UserID:      ownerID,
		Title:       title,
		Content:     content,
		Status:      string(store.StatusPending),
		SubmittedAt: time.Now(),
	}
	db.Submissions = append(db.Submissions, row)
	if err := f.save(db); err != nil {
		return store.Submission{}, err
	}
	return row.toSubmission(), nil
}

func (f *FileStore) SubmissionByID(ctx context.Context, id int64) (*store.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	db, err := f.load()
	if err != nil {
		return nil, err
	}
	for _, s := range db.Submissions {
		if s.ID == id {
			subm := s.toSubmission()
			return &subm, nil
		}
	}
	return nil, nil
}

func (f *FileStore) SubmissionsByOwner(ctx context.Context, ownerID int64) ([]store.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	db, err := f.load()
	if err != nil {
		return nil, err
	}
	var subms []store.Submission
	for _, s := range db.Submissions {
		if s.UserID == ownerID {
			subms = append(subms, s.toSubmission())
		}
	}
	return subms, nil
}

func (f *FileStore) ListSubmissions(ctx context.Context) ([]store.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	db, err := f.load()
	if err != nil {
		return nil, err
	}
	subms := make([]store.Submission, 0, len(db.Submissions))
	for _, s := range db.Submissions {
		subms = append(subms, s.toSubmission())
	}
	return subms, nil
}

func (f *FileStore) UpdateSubmission(ctx context.Context, id int64, upd store.SubmissionUpdate) (store.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	db, err := f.load()
	if err != nil {
		return store.Submission{}, err
	}
	for i := range db.Submissions {
		if db.Submissions[i].ID == id {
			row := &db.Submissions[i]
			if upd.Status != nil {
				row.Status = string(*upd.Status)
				now := time.Now()
				row.ReviewedAt = &now
			}
			if upd.Score != nil {
				row.Score = upd.Score
			}
			if upd.Feedback != nil {
				row.Feedback = upd.Feedback
			}
			if upd.ReviewerID != nil {
				row.ReviewedBy = upd.ReviewerID
			}
			if err := f.save(db); err != nil {
				return store.Submission{}, err
			}
			return row.toSubmission(), nil
		}
	}
	return store.Submission{}, store.ErrNotFound
}

func (f *FileStore) CountSubmissionsByStatus(ctx context.Context, status store.Status) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	db, err := f.load()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, s := range db.Submissions {
		if s.Status == string(status) {
			count++
		}
	}
	return count, nil
}

func (f *FileStore) CountSubmissionsByMinScore(ctx context.Context, threshold int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	db, err := f.load()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, s := range db.Submissions {
		if s.Score != nil && *s.Score >= threshold {
			count++
		}
	}
	return count, nil
}

// load reads the snapshot from disk. A missing file is an empty dataset.
func (f *FileStore) load() (*document, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &document{}, nil
		}
		return nil, store.Unavailable(err)
	}
	var db document
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, store.Unavailable(err)
	}
	return &db, nil
}

// save rewrites the snapshot through a temp file so a crash mid-write never
// leaves a truncated document behind.
func (f *FileStore) save(db *document) error {
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return store.Unavailable(err)
	}
	tmp := f.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return store.Unavailable(err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return store.Unavailable(err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return store.Unavailable(err)
	}
	return nil
}

func nextUserID(users []userRow) int64 {
	var max int64
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

func nextSubmissionID(subms []submissionRow) int64 {
	var max int64
	for _, s := range subms {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}

func adminFlag(role store.Role) int {
	if role.IsAdmin() {
		return 1
	}
	return 0
}

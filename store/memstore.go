package store

import (
	"context"
	"sync"
	"time"
)

// MemStore keeps both collections in process memory. It backs the contract
// tests and any caller that wants a throwaway store.
type MemStore struct {
	mu    sync.RWMutex
	users []User
	subms []Submission
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) CreateUser(ctx context.Context, email, passwordHash, name string, role Role) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return User{}, ErrDuplicateEmail
		}
	}
	user := User{
		ID:           nextID(m.users, func(u User) int64 { return u.ID }),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	m.users = append(m.users, user)
	return user, nil
}

func (m *MemStore) UserByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (m *MemStore) UserByID(ctx context.Context, id int64) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (m *MemStore) ListUsers(ctx context.Context) ([]User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	users := make([]User, 0, len(m.users))
	for _, u := range m.users {
		u.PasswordHash = ""
		users = append(users, u)
	}
	return users, nil
}

func (m *MemStore) UpdateUser(ctx context.Context, id int64, email, passwordHash, name string, role Role) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].Email = email
			m.users[i].PasswordHash = passwordHash
			m.users[i].Name = name
			m.users[i].Role = role
			return m.users[i], nil
		}
	}
	return User{}, ErrNotFound
}

func (m *MemStore) CreateSubmission(ctx context.Context, ownerID int64, title, content string) (Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	subm := Submission{
		ID:          nextID(m.subms, func(s Submission) int64 { return s.ID }),
		OwnerID:     ownerID,
		Title:       title,
		Content:     content,
		Status:      StatusPending,
		SubmittedAt: time.Now(),
	}
	m.subms = append(m.subms, subm)
	return subm, nil
}

func (m *MemStore) SubmissionByID(ctx context.Context, id int64) (*Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.subms {
		if s.ID == id {
			s := s
			return &s, nil
		}
	}
	return nil, nil
}

func (m *MemStore) SubmissionsByOwner(ctx context.Context, ownerID int64) ([]Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var subms []Submission
	for _, s := range m.subms {
		if s.OwnerID == ownerID {
			subms = append(subms, s)
		}
	}
	return subms, nil
}

func (m *MemStore) ListSubmissions(ctx context.Context) ([]Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	subms := make([]Submission, len(m.subms))
	copy(subms, m.subms)
	return subms, nil
}

func (m *MemStore) UpdateSubmission(ctx context.Context, id int64, upd SubmissionUpdate) (Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.subms {
		if m.subms[i].ID == id {
			applyUpdate(&m.subms[i], upd)
			return m.subms[i], nil
		}
	}
	return Submission{}, ErrNotFound
}

func (m *MemStore) CountSubmissionsByStatus(ctx context.Context, status Status) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, s := range m.subms {
		if s.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *MemStore) CountSubmissionsByMinScore(ctx context.Context, threshold int) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, s := range m.subms {
		if s.Score != nil && *s.Score >= threshold {
			count++
		}
	}
	return count, nil
}

// nextID is max(id)+1 within the collection, 1 when empty. Safe only behind
// the store's own lock.
func nextID[T any](records []T, id func(T) int64) int64 {
	var max int64
	for _, r := range records {
		if id(r) > max {
			max = id(r)
		}
	}
	return max + 1
}

// applyUpdate merges upd into subm. Stamping ReviewedAt together with a
// status change is what keeps review metadata atomic across all backends.
func applyUpdate(subm *Submission, upd SubmissionUpdate) {
	if upd.Status != nil {
		subm.Status = *upd.Status
		now := time.Now()
		subm.ReviewedAt = &now
	}
	if upd.Score != nil {
		subm.Score = upd.Score
	}
	if upd.Feedback != nil {
		subm.Feedback = upd.Feedback
	}
	if upd.ReviewerID != nil {
		subm.ReviewerID = upd.ReviewerID
	}
}

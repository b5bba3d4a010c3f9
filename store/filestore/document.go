package filestore

import (
	"time"

	"github.com/ninenine-news/backend/store"
)

// document is the on-disk snapshot. Field names match the legacy
// database.json layout so existing data files load unchanged.
type document struct {
	Users       []userRow       `json:"users"`
	Submissions []submissionRow `json:"submissions"`
}

type userRow struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Name      string    `json:"name"`
	IsAdmin   int       `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

type submissionRow struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Status      string     `json:"status"`
	Score       *int       `json:"score"`
	Feedback    *string    `json:"feedback"`
	SubmittedAt time.Time  `json:"submittedAt"`
	ReviewedBy  *int64     `json:"reviewedBy"`
	ReviewedAt  *time.Time `json:"reviewedAt"`
}

func (u userRow) toUser() store.User {
	return store.User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.Password,
		Role:         store.RoleFromAdminFlag(u.IsAdmin != 0),
		CreatedAt:    u.CreatedAt,
	}
}

func (s submissionRow) toSubmission() store.Submission {
	return store.Submission{
		ID:          s.ID,
		OwnerID:     s.UserID,
		Title:       s.Title,
		Content:     s.Content,
		Status:      store.Status(s.Status),
		Score:       s.Score,
		Feedback:    s.Feedback,
		SubmittedAt: s.SubmittedAt,
		ReviewerID:  s.ReviewedBy,
		ReviewedAt:  s.ReviewedAt,
	}
}

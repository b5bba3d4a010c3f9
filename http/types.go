package http

import (
	"time"

	"github.com/ninenine-news/backend/store"
	"github.com/ninenine-news/backend/subm"
)

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

type Submission struct {
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

	UserName     string  `json:"userName,omitempty"`
	UserEmail    string  `json:"userEmail,omitempty"`
	ReviewerName *string `json:"reviewerName,omitempty"`

	CertificationEligible bool `json:"certificationEligible"`
}

func mapUser(u store.User) User {
	return User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		IsAdmin:   u.Role.IsAdmin(),
		CreatedAt: u.CreatedAt,
	}
}

func mapStoredSubm(s store.Submission) Submission {
	return Submission{
		ID:                    s.ID,
		UserID:                s.OwnerID,
		Title:                 s.Title,
		Content:               s.Content,
		Status:                string(s.Status),
		Score:                 s.Score,
		Feedback:              s.Feedback,
		SubmittedAt:           s.SubmittedAt,
		ReviewedBy:            s.ReviewerID,
		ReviewedAt:            s.ReviewedAt,
		CertificationEligible: subm.EligibleForCertification(s.Score),
	}
}

func mapSubm(view subm.Submission) Submission {
	mapped := mapStoredSubm(view.Submission)
	mapped.UserName = view.OwnerName
	mapped.UserEmail = view.OwnerEmail
	mapped.ReviewerName = view.ReviewerName
	return mapped
}

func mapSubms(views []subm.Submission) []Submission {
	mapped := make([]Submission, 0, len(views))
	for _, v := range views {
		mapped = append(mapped, mapSubm(v))
	}
	return mapped
}

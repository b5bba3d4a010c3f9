package store

import "time"

// Role is an account's authority level. The wire and snapshot formats render
// it as the legacy isAdmin flag; inside the process it is a two-value enum.
type Role string

const (
	RoleMember        Role = "member"
	RoleAdministrator Role = "administrator"
)

func (r Role) IsAdmin() bool {
	return r == RoleAdministrator
}

func RoleFromAdminFlag(isAdmin bool) Role {
	if isAdmin {
		return RoleAdministrator
	}
	return RoleMember
}

// Status is the submission lifecycle state.
type Status string

const (
	StatusPending       Status = "pending"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
	StatusNeedsRevision Status = "needs_revision"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusNeedsRevision:
		return true
	}
	return false
}

// ReviewStatus reports whether s is a status an admin may assign during
// review. A review never moves a submission back to pending.
func (s Status) ReviewStatus() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusNeedsRevision:
		return true
	}
	return false
}

type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string // stripped on list reads
	Role         Role
	CreatedAt    time.Time
}

type Submission struct {
	ID          int64
	OwnerID     int64
	Title       string
	Content     string
	Status      Status
	Score       *int
	Feedback    *string
	SubmittedAt time.Time
	ReviewerID  *int64
	ReviewedAt  *time.Time
}

// SubmissionUpdate carries the fields a review may merge into a submission.
// Nil fields are left untouched. When Status is set the adapter stamps
// ReviewedAt with the current time as part of the same operation.
type SubmissionUpdate struct {
	Status     *Status
	Score      *int
	Feedback   *string
	ReviewerID *int64
}

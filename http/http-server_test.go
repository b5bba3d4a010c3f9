package http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ninenine-news/backend/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submissionPayload struct {
	ID                    int64   `json:"id"`
	UserID                int64   `json:"userId"`
	Title                 string  `json:"title"`
	Content               string  `json:"content"`
	Status                string  `json:"status"`
	Score                 *int    `json:"score"`
	Feedback              *string `json:"feedback"`
	ReviewedBy            *int64  `json:"reviewedBy"`
	UserName              string  `json:"userName"`
	ReviewerName          *string `json:"reviewerName"`
	CertificationEligible bool    `json:"certificationEligible"`
}

func TestHealth(t *testing.T) {
	handler := newTestServer(t)

	code, env := doJSON(t, handler, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)
}

func TestRegisterLoginMe(t *testing.T) {
	handler := newTestServer(t)

	alice := registerUser(t, handler, "alice@example.com", "password123", "Alice")
	assert.NotEmpty(t, alice.Token)
	assert.Equal(t, "Alice", alice.User.Name)
	assert.False(t, alice.User.IsAdmin)

	again := loginUser(t, handler, "alice@example.com", "password123")
	assert.Equal(t, alice.User.ID, again.User.ID)

	code, env := doJSON(t, handler, http.MethodGet, "/api/auth/me", alice.Token, nil)
	require.Equal(t, http.StatusOK, code)
	var me struct {
		Email string `json:"email"`
	}
	decodeData(t, env, &me)
	assert.Equal(t, "alice@example.com", me.Email)
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	handler := newTestServer(t)

	registerUser(t, handler, "alice@example.com", "password123", "Alice")

	code, env := doJSON(t, handler, http.MethodPost, "/api/auth/register", "",
		map[string]string{"email": "alice@example.com", "password": "other", "name": "Alice 2"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "email_exists", env.ErrCode)
}

func TestLoginInvalidCredentials(t *testing.T) {
	handler := newTestServer(t)

	registerUser(t, handler, "alice@example.com", "password123", "Alice")

	code, env := doJSON(t, handler, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "alice@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "invalid_credentials", env.ErrCode)
}

func TestSubmissionsRequireAuth(t *testing.T) {
	handler := newTestServer(t)

	code, env := doJSON(t, handler, http.MethodPost, "/api/submissions", "",
		map[string]string{"title": "T", "content": "body"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "token_required", env.ErrCode)

	code, env = doJSON(t, handler, http.MethodGet, "/api/submissions", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "token_required", env.ErrCode)
}

// TestSubmissionReviewFlow walks the whole lifecycle: a member registers and
// submits, the bootstrapped admin reviews, the member reads the verdict, and
// a third account is shut out.
func TestSubmissionReviewFlow(t *testing.T) {
	handler := newTestServer(t)

	alice := registerUser(t, handler, "alice@example.com", "password123", "Alice")

	code, env := doJSON(t, handler, http.MethodPost, "/api/submissions", alice.Token,
		map[string]string{"title": "Field report", "content": "What I saw."})
	require.Equal(t, http.StatusCreated, code)

	var created submissionPayload
	decodeData(t, env, &created)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, alice.User.ID, created.UserID)
	assert.Nil(t, created.Score)
	assert.False(t, created.CertificationEligible)

	admin := loginUser(t, handler, store.CanonicalAdminEmail, store.DefaultAdminPassword)
	require.True(t, admin.User.IsAdmin)

	// a member may not review, not even their own
	code, env = doJSON(t, handler, http.MethodPut,
		fmt.Sprintf("/api/submissions/%d", created.ID), alice.Token,
		map[string]any{"status": "approved", "score": 100})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "admin_required", env.ErrCode)

	code, env = doJSON(t, handler, http.MethodPut,
		fmt.Sprintf("/api/submissions/%d", created.ID), admin.Token,
		map[string]any{"status": "approved", "score": 85, "feedback": "Good"})
	require.Equal(t, http.StatusOK, code)

	var reviewed submissionPayload
	decodeData(t, env, &reviewed)
	assert.Equal(t, "approved", reviewed.Status)
	require.NotNil(t, reviewed.Score)
	assert.Equal(t, 85, *reviewed.Score)
	require.NotNil(t, reviewed.Feedback)
	assert.Equal(t, "Good", *reviewed.Feedback)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, admin.User.ID, *reviewed.ReviewedBy)
	require.NotNil(t, reviewed.ReviewerName)
	assert.Equal(t, store.CanonicalAdminName, *reviewed.ReviewerName)
	assert.True(t, reviewed.CertificationEligible)

	// owner sees the verdict
	code, env = doJSON(t, handler, http.MethodGet,
		fmt.Sprintf("/api/submissions/%d", created.ID), alice.Token, nil)
	require.Equal(t, http.StatusOK, code)

	var seen submissionPayload
	decodeData(t, env, &seen)
	assert.Equal(t, "approved", seen.Status)
	assert.Equal(t, "Alice", seen.UserName)

	// an unrelated member does not
	mallory := registerUser(t, handler, "mallory@example.com", "password123", "Mallory")
	code, env = doJSON(t, handler, http.MethodGet,
		fmt.Sprintf("/api/submissions/%d", created.ID), mallory.Token, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "access_denied", env.ErrCode)
}

func TestListMySubmissionsScopedToOwner(t *testing.T) {
	handler := newTestServer(t)

	alice := registerUser(t, handler, "alice@example.com", "password123", "Alice")
	bob := registerUser(t, handler, "bob@example.com", "password123", "Bob")

	for _, title := range []string{"A1", "A2"} {
		code, _ := doJSON(t, handler, http.MethodPost, "/api/submissions", alice.Token,
			map[string]string{"title": title, "content": "body"})
		require.Equal(t, http.StatusCreated, code)
	}
	code, _ := doJSON(t, handler, http.MethodPost, "/api/submissions", bob.Token,
		map[string]string{"title": "B1", "content": "body"})
	require.Equal(t, http.StatusCreated, code)

	code, env := doJSON(t, handler, http.MethodGet, "/api/submissions", alice.Token, nil)
	require.Equal(t, http.StatusOK, code)

	var mine []submissionPayload
	decodeData(t, env, &mine)
	require.Len(t, mine, 2)
	for _, s := range mine {
		assert.Equal(t, alice.User.ID, s.UserID)
	}
}

func TestAdminEndpointsGated(t *testing.T) {
	handler := newTestServer(t)

	alice := registerUser(t, handler, "alice@example.com", "password123", "Alice")

	for _, path := range []string{"/api/admin/submissions", "/api/admin/users", "/api/admin/stats"} {
		code, env := doJSON(t, handler, http.MethodGet, path, alice.Token, nil)
		assert.Equal(t, http.StatusForbidden, code, path)
		assert.Equal(t, "admin_required", env.ErrCode, path)

		code, env = doJSON(t, handler, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, code, path)
		assert.Equal(t, "token_required", env.ErrCode, path)
	}
}

func TestAdminStats(t *testing.T) {
	handler := newTestServer(t)

	alice := registerUser(t, handler, "alice@example.com", "password123", "Alice")
	admin := loginUser(t, handler, store.CanonicalAdminEmail, store.DefaultAdminPassword)

	code, env := doJSON(t, handler, http.MethodPost, "/api/submissions", alice.Token,
		map[string]string{"title": "T1", "content": "body"})
	require.Equal(t, http.StatusCreated, code)
	var first submissionPayload
	decodeData(t, env, &first)

	code, _ = doJSON(t, handler, http.MethodPost, "/api/submissions", alice.Token,
		map[string]string{"title": "T2", "content": "body"})
	require.Equal(t, http.StatusCreated, code)

	code, _ = doJSON(t, handler, http.MethodPut,
		fmt.Sprintf("/api/submissions/%d", first.ID), admin.Token,
		map[string]any{"status": "approved", "score": 90})
	require.Equal(t, http.StatusOK, code)

	code, env = doJSON(t, handler, http.MethodGet, "/api/admin/stats", admin.Token, nil)
	require.Equal(t, http.StatusOK, code)

	var stats struct {
		TotalUsers          int `json:"totalUsers"`
		TotalSubmissions    int `json:"totalSubmissions"`
		PendingSubmissions  int `json:"pendingSubmissions"`
		ApprovedSubmissions int `json:"approvedSubmissions"`
	}
	decodeData(t, env, &stats)
	assert.Equal(t, 2, stats.TotalUsers) // alice + bootstrapped admin
	assert.Equal(t, 2, stats.TotalSubmissions)
	assert.Equal(t, 1, stats.PendingSubmissions)
	assert.Equal(t, 1, stats.ApprovedSubmissions)
}

func TestReviewValidationOverHttp(t *testing.T) {
	handler := newTestServer(t)

	alice := registerUser(t, handler, "alice@example.com", "password123", "Alice")
	admin := loginUser(t, handler, store.CanonicalAdminEmail, store.DefaultAdminPassword)

	code, env := doJSON(t, handler, http.MethodPost, "/api/submissions", alice.Token,
		map[string]string{"title": "T", "content": "body"})
	require.Equal(t, http.StatusCreated, code)
	var created submissionPayload
	decodeData(t, env, &created)

	path := fmt.Sprintf("/api/submissions/%d", created.ID)

	code, env = doJSON(t, handler, http.MethodPut, path, admin.Token,
		map[string]any{"score": 50})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "status_score_required", env.ErrCode)

	code, env = doJSON(t, handler, http.MethodPut, path, admin.Token,
		map[string]any{"status": "pending", "score": 50})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_status", env.ErrCode)

	code, env = doJSON(t, handler, http.MethodPut, path, admin.Token,
		map[string]any{"status": "approved", "score": 101})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "score_out_of_range", env.ErrCode)

	code, env = doJSON(t, handler, http.MethodPut, "/api/submissions/404", admin.Token,
		map[string]any{"status": "approved", "score": 50})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "submission_not_found", env.ErrCode)
}

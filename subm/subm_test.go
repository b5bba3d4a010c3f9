package subm_test

import (
	"context"
	"testing"

	"github.com/ninenine-news/backend/srvcerror"
	"github.com/ninenine-news/backend/store"
	"github.com/ninenine-news/backend/subm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	srvc  *subm.SubmSrvc
	store *store.MemStore
	alice store.User
	bob   store.User
	admin store.User
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	s := store.NewMemStore()

	alice, err := s.CreateUser(ctx, "alice@example.com", "hash", "Alice", store.RoleMember)
	require.NoError(t, err)
	bob, err := s.CreateUser(ctx, "bob@example.com", "hash", "Bob", store.RoleMember)
	require.NoError(t, err)
	admin, err := s.CreateUser(ctx, "admin@99.ninenine", "hash", "admin99", store.RoleAdministrator)
	require.NoError(t, err)

	return fixture{
		srvc:  subm.NewSubmSrvc(s),
		store: s,
		alice: alice,
		bob:   bob,
		admin: admin,
	}
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	return srvcErr.ErrorCode()
}

func TestSubmitCreatesPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.srvc.Submit(ctx, f.alice.ID, subm.SubmitParams{
		Title:   "T",
		Content: "a perfectly reasonable report body",
	})
	require.NoError(t, err)

	assert.Equal(t, store.StatusPending, created.Status)
	assert.Equal(t, f.alice.ID, created.OwnerID)
	assert.Nil(t, created.Score)
	assert.Nil(t, created.ReviewerID)
	assert.Nil(t, created.ReviewedAt)
}

func TestSubmitRequiresTitleAndContent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.srvc.Submit(ctx, f.alice.ID, subm.SubmitParams{Title: "", Content: "body"})
	assert.Equal(t, subm.ErrCodeTitleContentRequired, errorCode(t, err))

	_, err = f.srvc.Submit(ctx, f.alice.ID, subm.SubmitParams{Title: "T", Content: "   "})
	assert.Equal(t, subm.ErrCodeTitleContentRequired, errorCode(t, err))
}

func TestReviewSetsAllFieldsAtomically(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.srvc.Submit(ctx, f.alice.ID, subm.SubmitParams{Title: "T", Content: "body"})
	require.NoError(t, err)

	status := store.StatusApproved
	score := 85
	feedback := "Good"
	reviewed, err := f.srvc.Review(ctx,
		subm.Caller{ID: f.admin.ID, Admin: true},
		created.ID,
		subm.ReviewParams{Status: &status, Score: &score, Feedback: &feedback})
	require.NoError(t, err)

	assert.Equal(t, store.StatusApproved, reviewed.Status)
	require.NotNil(t, reviewed.Score)
	assert.Equal(t, 85, *reviewed.Score)
	require.NotNil(t, reviewed.Feedback)
	assert.Equal(t, "Good", *reviewed.Feedback)
	require.NotNil(t, reviewed.ReviewerID)
	assert.Equal(t, f.admin.ID, *reviewed.ReviewerID)
	require.NotNil(t, reviewed.ReviewedAt)
	require.NotNil(t, reviewed.ReviewerName)
	assert.Equal(t, "admin99", *reviewed.ReviewerName)

	// re-read matches exactly, never a mix of old and new
	again, err := f.srvc.Get(ctx, subm.Caller{ID: f.alice.ID}, created.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusApproved, again.Status)
	assert.Equal(t, 85, *again.Score)
	assert.Equal(t, "Good", *again.Feedback)
}

func TestReviewDefaultsFeedbackToEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.srvc.Submit(ctx, f.alice.ID, subm.SubmitParams{Title: "T", Content: "body"})
	require.NoError(t, err)

	status := store.StatusRejected
	score := 20
	reviewed, err := f.srvc.Review(ctx,
		subm.Caller{ID: f.admin.ID, Admin: true},
		created.ID,
		subm.ReviewParams{Status: &status, Score: &score})
	require.NoError(t, err)

	require.NotNil(t, reviewed.Feedback)
	assert.Empty(t, *reviewed.Feedback)
}

func TestReviewValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.srvc.Submit(ctx, f.alice.ID, subm.SubmitParams{Title: "T", Content: "body"})
	require.NoError(t, err)

	admin := subm.Caller{ID: f.admin.ID, Admin: true}
	score := 50
	status := store.StatusApproved

	_, err = f.srvc.Review(ctx, admin, created.ID, subm.ReviewParams{Score: &score})
	assert.Equal(t, subm.ErrCodeStatusScoreRequired, errorCode(t, err))

	_, err = f.srvc.Review(ctx, admin, created.ID, subm.ReviewParams{Status: &status})
	assert.Equal(t, subm.ErrCodeStatusScoreRequired, errorCode(t, err))

	bad := store.StatusPending
	_, err = f.srvc.Review(ctx, admin, created.ID, subm.ReviewParams{Status: &bad, Score: &score})
	assert.Equal(t, subm.ErrCodeInvalidStatus, errorCode(t, err))

	unknown := store.Status("archived")
	_, err = f.srvc.Review(ctx, admin, created.ID, subm.ReviewParams{Status: &unknown, Score: &score})
	assert.Equal(t, subm.ErrCodeInvalidStatus, errorCode(t, err))

	low := -1
	_, err = f.srvc.Review(ctx, admin, created.ID, subm.ReviewParams{Status: &status, Score: &low})
	assert.Equal(t, subm.ErrCodeScoreOutOfRange, errorCode(t, err))

	high := 101
	_, err = f.srvc.Review(ctx, admin, created.ID, subm.ReviewParams{Status: &status, Score: &high})
	assert.Equal(t, subm.ErrCodeScoreOutOfRange, errorCode(t, err))
}

func TestReviewRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.srvc.Submit(ctx, f.alice.ID, subm.SubmitParams{Title: "T", Content: "body"})
	require.NoError(t, err)

	status := store.StatusApproved
	score := 85
	_, err = f.srvc.Review(ctx,
		subm.Caller{ID: f.alice.ID},
		created.ID,
		subm.ReviewParams{Status: &status, Score: &score})
	assert.Equal(t, subm.ErrCodeAccessDenied, errorCode(t, err))
}

func TestReviewNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	status := store.StatusApproved
	score := 85
	_, err := f.srvc.Review(ctx,
		subm.Caller{ID: f.admin.ID, Admin: true},
		404,
		subm.ReviewParams{Status: &status, Score: &score})
	assert.Equal(t, subm.ErrCodeSubmissionNotFound, errorCode(t, err))
}

func TestReReviewOverwrites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.srvc.Submit(ctx, f.alice.ID, subm.SubmitParams{Title: "T", Content: "body"})
	require.NoError(t, err)

	admin := subm.Caller{ID: f.admin.ID, Admin: true}

	reject := store.StatusRejected
	lowScore := 30
	harsh := "not there yet"
	_, err = f.srvc.Review(ctx, admin, created.ID,
		subm.ReviewParams{Status: &reject, Score: &lowScore, Feedback: &harsh})
	require.NoError(t, err)

	approve := store.StatusApproved
	highScore := 92
	kind := "much improved"
	second, err := f.srvc.Review(ctx, admin, created.ID,
		subm.ReviewParams{Status: &approve, Score: &highScore, Feedback: &kind})
	require.NoError(t, err)

	assert.Equal(t, store.StatusApproved, second.Status)
	assert.Equal(t, 92, *second.Score)
	assert.Equal(t, "much improved", *second.Feedback)
}

func TestGetAccessPolicy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.srvc.Submit(ctx, f.alice.ID, subm.SubmitParams{Title: "T", Content: "body"})
	require.NoError(t, err)

	// owner reads
	asOwner, err := f.srvc.Get(ctx, subm.Caller{ID: f.alice.ID}, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", asOwner.OwnerName)
	assert.Equal(t, "alice@example.com", asOwner.OwnerEmail)

	// admin reads
	_, err = f.srvc.Get(ctx, subm.Caller{ID: f.admin.ID, Admin: true}, created.ID)
	require.NoError(t, err)

	// unrelated member is denied
	_, err = f.srvc.Get(ctx, subm.Caller{ID: f.bob.ID}, created.ID)
	assert.Equal(t, subm.ErrCodeAccessDenied, errorCode(t, err))
}

func TestListMineAndListAll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.srvc.Submit(ctx, f.alice.ID, subm.SubmitParams{Title: "A1", Content: "body"})
	require.NoError(t, err)
	_, err = f.srvc.Submit(ctx, f.bob.ID, subm.SubmitParams{Title: "B1", Content: "body"})
	require.NoError(t, err)
	_, err = f.srvc.Submit(ctx, f.alice.ID, subm.SubmitParams{Title: "A2", Content: "body"})
	require.NoError(t, err)

	mine, err := f.srvc.ListMine(ctx, f.alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, view := range mine {
		assert.Equal(t, f.alice.ID, view.OwnerID)
		assert.Equal(t, "Alice", view.OwnerName)
	}
	// newest first
	assert.False(t, mine[0].SubmittedAt.Before(mine[1].SubmittedAt))

	all, err := f.srvc.ListAll(ctx, subm.Caller{ID: f.admin.ID, Admin: true})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = f.srvc.ListAll(ctx, subm.Caller{ID: f.bob.ID})
	assert.Equal(t, subm.ErrCodeAccessDenied, errorCode(t, err))
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.srvc.Submit(ctx, f.alice.ID, subm.SubmitParams{Title: "A1", Content: "body"})
	require.NoError(t, err)
	_, err = f.srvc.Submit(ctx, f.bob.ID, subm.SubmitParams{Title: "B1", Content: "body"})
	require.NoError(t, err)

	admin := subm.Caller{ID: f.admin.ID, Admin: true}
	approve := store.StatusApproved
	score := 70
	_, err = f.srvc.Review(ctx, admin, first.ID,
		subm.ReviewParams{Status: &approve, Score: &score})
	require.NoError(t, err)

	stats, err := f.srvc.Stats(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalSubmissions)
	assert.Equal(t, 1, stats.PendingSubmissions)
	assert.Equal(t, 1, stats.ApprovedSubmissions)

	_, err = f.srvc.Stats(ctx, subm.Caller{ID: f.alice.ID})
	assert.Equal(t, subm.ErrCodeAccessDenied, errorCode(t, err))
}

func TestCertificationEligibility(t *testing.T) {
	low := 69
	threshold := 70

	assert.False(t, subm.EligibleForCertification(nil))
	assert.False(t, subm.EligibleForCertification(&low))
	assert.True(t, subm.EligibleForCertification(&threshold))
}

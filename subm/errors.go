package subm

import (
	"net/http"

	"github.com/ninenine-news/backend/srvcerror"
)

const ErrCodeTitleContentRequired = "title_content_required"

func newErrTitleContentRequired() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTitleContentRequired,
		"title and content are required",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeStatusScoreRequired = "status_score_required"

func newErrStatusScoreRequired() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeStatusScoreRequired,
		"status and score are required",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidStatus = "invalid_status"

func newErrInvalidStatus() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidStatus,
		"status must be approved, rejected, or needs_revision",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeScoreOutOfRange = "score_out_of_range"

func newErrScoreOutOfRange() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeScoreOutOfRange,
		"score must be between 0 and 100",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeSubmissionNotFound = "submission_not_found"

func newErrSubmissionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionNotFound,
		"submission not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeAccessDenied = "access_denied"

func newErrAccessDenied() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAccessDenied,
		"access denied",
	).SetHttpStatusCode(http.StatusForbidden)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}

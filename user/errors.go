package user

import (
	"net/http"

	"github.com/ninenine-news/backend/srvcerror"
)

const ErrCodeMissingFields = "missing_fields"

func newErrMissingFields() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMissingFields,
		"email, password, and name are required",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEmailInvalid = "email_invalid"

func newErrEmailInvalid() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailInvalid,
		"email address is not valid",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEmailAlreadyExists = "email_exists"

func newErrEmailExists() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailAlreadyExists,
		"user already exists",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeInvalidCredentials = "invalid_credentials"

func newErrInvalidCredentials() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidCredentials,
		"invalid credentials",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeUserNotFound = "user_not_found"

func newErrUserNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUserNotFound,
		"user not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}

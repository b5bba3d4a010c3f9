package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	ninehttp "github.com/ninenine-news/backend/http"
	"github.com/ninenine-news/backend/store"
	"github.com/ninenine-news/backend/subm"
	"github.com/ninenine-news/backend/user"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test_secret")

// envelope mirrors the response wrapper every endpoint uses.
type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	ErrCode string          `json:"code"`
	ErrMsg  string          `json:"message"`
}

type authPayload struct {
	Token string `json:"token"`
	User  struct {
		ID      int64  `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		IsAdmin bool   `json:"isAdmin"`
	} `json:"user"`
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	s := store.NewMemStore()
	require.NoError(t, store.Bootstrap(context.Background(), s))

	server := ninehttp.NewHttpServer(
		user.NewUserSrvc(s),
		subm.NewSubmSrvc(s),
		testJwtKey,
		[]string{"http://localhost:5173"},
	)
	return server.Router()
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env),
		"body: %s", rec.Body.String())
	return rec.Code, env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func registerUser(t *testing.T, handler http.Handler, email, password, name string) authPayload {
	t.Helper()

	code, env := doJSON(t, handler, http.MethodPost, "/api/auth/register", "",
		map[string]string{"email": email, "password": password, "name": name})
	require.Equal(t, http.StatusCreated, code)

	var payload authPayload
	decodeData(t, env, &payload)
	return payload
}

func loginUser(t *testing.T, handler http.Handler, email, password string) authPayload {
	t.Helper()

	code, env := doJSON(t, handler, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, code)

	var payload authPayload
	decodeData(t, env, &payload)
	return payload
}

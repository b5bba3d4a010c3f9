package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/ninenine-news/backend/httpjson"
	"github.com/ninenine-news/backend/user/auth"
)

func (httpserver *HttpServer) authLogin(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	type loginResponse struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	logger.Info("received login request", "email", request.Email)

	found, err := httpserver.userSrvc.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	token, err := auth.GenerateJWT(*found, httpserver.jwtKey)
	if err != nil {
		logger.Error("failed to generate JWT", "error", err)
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, loginResponse{
		Token: token,
		User:  mapUser(*found),
	})
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/ninenine-news/backend/httpjson"
	"github.com/ninenine-news/backend/user"
	"github.com/ninenine-news/backend/user/auth"
)

func (httpserver *HttpServer) authRegister(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type registerRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}

	type registerResponse struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created, err := httpserver.userSrvc.Register(r.Context(), user.RegisterParams{
		Email:    request.Email,
		Password: request.Password,
		Name:     request.Name,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	token, err := auth.GenerateJWT(*created, httpserver.jwtKey)
	if err != nil {
		logger.Error("failed to generate JWT", "error", err)
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteCreatedJson(w, registerResponse{
		Token: token,
		User:  mapUser(*created),
	})
}

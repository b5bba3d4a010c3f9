package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/ninenine-news/backend/httpjson"
)

func (httpserver *HttpServer) adminListSubmissions(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	claims := requireAdmin(w, r)
	if claims == nil {
		return
	}

	subms, err := httpserver.submSrvc.ListAll(r.Context(), callerOf(claims))
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapSubms(subms))
}

func (httpserver *HttpServer) adminListUsers(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	claims := requireAdmin(w, r)
	if claims == nil {
		return
	}

	users, err := httpserver.userSrvc.ListUsers(r.Context())
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	mapped := make([]User, 0, len(users))
	for _, u := range users {
		mapped = append(mapped, mapUser(u))
	}
	httpjson.WriteSuccessJson(w, mapped)
}

func (httpserver *HttpServer) adminStats(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	claims := requireAdmin(w, r)
	if claims == nil {
		return
	}

	type statsResponse struct {
		TotalUsers          int `json:"totalUsers"`
		TotalSubmissions    int `json:"totalSubmissions"`
		PendingSubmissions  int `json:"pendingSubmissions"`
		ApprovedSubmissions int `json:"approvedSubmissions"`
	}

	stats, err := httpserver.submSrvc.Stats(r.Context(), callerOf(claims))
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, statsResponse{
		TotalUsers:          stats.TotalUsers,
		TotalSubmissions:    stats.TotalSubmissions,
		PendingSubmissions:  stats.PendingSubmissions,
		ApprovedSubmissions: stats.ApprovedSubmissions,
	})
}

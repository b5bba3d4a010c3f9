package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/ninenine-news/backend/httpjson"
	"github.com/ninenine-news/backend/store"
	"github.com/ninenine-news/backend/subm"
)

func (httpserver *HttpServer) reviewSubmission(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	claims := requireAdmin(w, r)
	if claims == nil {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	type reviewRequest struct {
		Status   *string `json:"status"`
		Score    *int    `json:"score"`
		Feedback *string `json:"feedback"`
	}

	var request reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var status *store.Status
	if request.Status != nil {
		s := store.Status(*request.Status)
		status = &s
	}

	updated, err := httpserver.submSrvc.Review(r.Context(), callerOf(claims), id, subm.ReviewParams{
		Status:   status,
		Score:    request.Score,
		Feedback: request.Feedback,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapSubm(*updated))
}

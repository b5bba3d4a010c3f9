package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/ninenine-news/backend/httpjson"
	"github.com/ninenine-news/backend/subm"
)

func (httpserver *HttpServer) createSubmission(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	claims := requireAuth(w, r)
	if claims == nil {
		return
	}

	type createSubmissionRequest struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}

	var request createSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created, err := httpserver.submSrvc.Submit(r.Context(), claims.UserID, subm.SubmitParams{
		Title:   request.Title,
		Content: request.Content,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteCreatedJson(w, mapStoredSubm(*created))
}

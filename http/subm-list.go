package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/ninenine-news/backend/httpjson"
)

func (httpserver *HttpServer) listMySubmissions(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	claims := requireAuth(w, r)
	if claims == nil {
		return
	}

	subms, err := httpserver.submSrvc.ListMine(r.Context(), claims.UserID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapSubms(subms))
}

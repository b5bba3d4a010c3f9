package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/ninenine-news/backend/httpjson"
)

func (httpserver *HttpServer) authMe(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	claims := requireAuth(w, r)
	if claims == nil {
		return
	}

	found, err := httpserver.userSrvc.WhoAmI(r.Context(), claims.UserID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapUser(*found))
}

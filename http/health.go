package http

import (
	"net/http"

	"github.com/ninenine-news/backend/httpjson"
)

func (httpserver *HttpServer) health(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteSuccessJson(w, map[string]string{
		"message": "Server is running",
	})
}

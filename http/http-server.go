package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/ninenine-news/backend/logger"
	"github.com/ninenine-news/backend/subm"
	"github.com/ninenine-news/backend/user"
	"github.com/ninenine-news/backend/user/auth"
)

type HttpServer struct {
	userSrvc *user.UserSrvc
	submSrvc *subm.SubmSrvc
	jwtKey   []byte
	router   *chi.Mux
}

func NewHttpServer(
	userSrvc *user.UserSrvc,
	submSrvc *subm.SubmSrvc,
	jwtKey []byte,
	allowedOrigins []string,
) *HttpServer {
	router := chi.NewRouter()

	httpLogger := httplog.NewLogger("ninenine", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(httpLogger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))
	router.Use(requestLoggerIntoContext)

	server := &HttpServer{
		userSrvc: userSrvc,
		submSrvc: submSrvc,
		jwtKey:   jwtKey,
		router:   router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

func (httpserver *HttpServer) Router() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router

	r.Get("/api/health", httpserver.health)

	r.Post("/api/auth/register", httpserver.authRegister)
	r.Post("/api/auth/login", httpserver.authLogin)
	r.Get("/api/auth/me", httpserver.authMe)

	r.Post("/api/submissions", httpserver.createSubmission)
	r.Get("/api/submissions", httpserver.listMySubmissions)
	r.Get("/api/submissions/{id}", httpserver.getSubmission)
	r.Put("/api/submissions/{id}", httpserver.reviewSubmission)

	r.Get("/api/admin/submissions", httpserver.adminListSubmissions)
	r.Get("/api/admin/users", httpserver.adminListUsers)
	r.Get("/api/admin/stats", httpserver.adminStats)
}

// requestLoggerIntoContext makes the request-scoped slog logger visible to
// the service layer through the logger package.
func requestLoggerIntoContext(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		entry := httplog.LogEntry(r.Context())
		ctx := logger.WithLogger(r.Context(), entry)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(hfn)
}

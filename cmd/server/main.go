package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/ninenine-news/backend/conf"
	"github.com/ninenine-news/backend/http"
	"github.com/ninenine-news/backend/store"
	"github.com/ninenine-news/backend/store/filestore"
	"github.com/ninenine-news/backend/store/pgstore"
	"github.com/ninenine-news/backend/subm"
	"github.com/ninenine-news/backend/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	cfg, err := conf.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var recordStore store.Store
	if cfg.UsePostgres() {
		pg, err := pgstore.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to PostgreSQL", "error", err)
			os.Exit(1)
		}
		defer pg.Close()
		slog.Info("connected to PostgreSQL database")
		recordStore = pg
	} else {
		slog.Info("using JSON file storage", "path", cfg.DataFile)
		recordStore = filestore.New(cfg.DataFile)
	}

	if err := store.Bootstrap(ctx, recordStore); err != nil {
		slog.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}

	userSrvc := user.NewUserSrvc(recordStore)
	submSrvc := subm.NewSubmSrvc(recordStore)

	httpServer := http.NewHttpServer(
		userSrvc, submSrvc,
		[]byte(cfg.JwtSecret),
		cfg.AllowedOrigins(),
	)

	address := cfg.Addr()
	log.Printf("Starting server on %s", address)
	err = httpServer.Start(address)
	log.Printf("Server stopped with error: %v", err)
}
